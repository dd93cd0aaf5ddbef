// Package model defines the analyzed-entity data model consumed by declscan.
//
// This package contains the following main types:
//   - Kind: The closed set of C construct kinds (typedef, struct, ..., statement)
//   - Entity: One analyzed construct with its file, parent scope and type status
//   - AnalyzedSet: The re-iterable, ordered result of one analysis
//
// Entities are produced by an external analyzer (see the source package) and
// are treated as read-only, except for the one-time filename rewrite done by
// AnalyzedSet.FixFilenames.
package model
