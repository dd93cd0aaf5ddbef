// Package checks provides the built-in checks registered by declscan.
//
// Each check implements check.Check:
//   - GlobalsCheck ("globals"): variables the analyzer marked unsupported
//   - KnownTypesCheck ("known-types"): type declarations left unresolved
//
// DefaultRegistry wires them into a check.Registry once at startup.
package checks
