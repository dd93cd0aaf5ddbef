// Package log provides CLI-oriented logging built on top of the standard
// slog package.
//
// This package extends slog to provide:
//   - A MessageHandler that prints plain "message key=value" lines, the way a
//     command line tool reports progress on stderr
//   - A verbosity scale shared by the logger and the Printer
//   - A Printer for unstructured lines that should only appear at normal or
//     higher verbosity (dividers, notices)
//
// # Verbosity
//
// Verbosity is an integer, DefaultVerbosity (3) unless changed with -v/-q:
//
//	>= 4  debug
//	   3  info
//	   2  warnings
//	<= 1  errors only
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbosity)
//	slog.SetDefault(logger)
//
//	logger.Info("analyzing...", "files", 12)   // "analyzing... files=12"
//
//	printer := log.NewPrinter(os.Stdout, verbosity)
//	printer.Info("stopping after one failure")
package log
