package config

import (
	"errors"

	"github.com/nao1215/declscan/internal/report"
)

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with
// errors.Is.
var (
	// ErrNoInput is returned when no analyzed-entity input is given.
	ErrNoInput = errors.New("no input specified: provide at least one analyzed file")

	// ErrUnsupportedFormat is returned when the format is not one of the
	// report formats. It is the same value as report.ErrUnsupportedFormat.
	ErrUnsupportedFormat = report.ErrUnsupportedFormat

	// ErrConflictingReportFormats is returned when --markdown is combined
	// with --format.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --format and --markdown cannot be used together")

	// ErrSplitNeedsSummary is returned when --split-supported is combined
	// with a report other than the summary.
	ErrSplitNeedsSummary = errors.New("--split-supported only applies to the summary report")

	// ErrInvalidVerbosity is returned when the verbosity is negative.
	ErrInvalidVerbosity = errors.New("invalid verbosity: must be non-negative")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")
)
