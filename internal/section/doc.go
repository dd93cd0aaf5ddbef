// Package section builds the named table sections shown by the summary report.
//
// A section name is looked up in a small alias table: kind values such as
// "struct" map to section names ("structs"), and the per-kind type sections
// all alias the "types" section. Resolution is bounded by the table size, so
// a bad alias can never loop.
//
// Each section filters entities by kind, sorts them stably by a section
// specific key, and renders a tab separated table:
//
//	types:
//
//	kind	name	data	file
//	--------------------
//	typedef	Point	-	geom.h
//	--------------------
//	total: 1
package section
