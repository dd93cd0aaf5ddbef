// Package main provides the entry point for the declscan CLI.
//
// declscan checks and reports on the declarations found by a C analyzer:
// types, functions, variables and statements.
//
// Usage:
//
//	declscan check [--format FORMAT] [--checks NAME,...] FILE...
//	declscan analyze [--format FORMAT] FILE...
//
// See --help for all available options.
package main

// main is the entry point for declscan.
func main() {
	Execute()
}
