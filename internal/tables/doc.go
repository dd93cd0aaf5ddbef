// Package tables reads and writes the tab separated data files shared by
// the analyzer and the checks.
//
// Every table starts with a header row. Blank lines and lines starting with
// "#" are ignored, and "-" stands for an empty cell.
package tables
