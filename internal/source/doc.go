// Package source loads analyzed entities produced by the external analyzer.
//
// Two input forms are supported:
//   - tab separated files with the columns listed in AnalyzedColumns
//   - SQLite databases with a "decls" table holding the same columns,
//     always opened read-only
//
// Load reads several inputs concurrently and concatenates them in argument
// order. The package also reads the ignored-variables list used by the
// "globals" check and writes the known-types table.
package source
