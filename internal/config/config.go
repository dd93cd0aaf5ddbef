package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/declscan/internal/log"
	"github.com/nao1215/declscan/internal/report"
	"github.com/nao1215/declscan/internal/source"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "declscan"

	// DefaultVerbosity shows informational output but no debug records.
	DefaultVerbosity = log.DefaultVerbosity

	// DefaultConcurrency is the number of inputs read at the same time.
	DefaultConcurrency = source.DefaultConcurrency
)

// Config holds the options of a single check or analyze run.
// It is populated from the config file and CLI flags and passed through
// the application rather than kept in global state.
type Config struct {
	// Inputs are the analyzed-entity files to read.
	Inputs []string

	// Format is the report format name. Empty means no format.
	Format string

	// Markdown renders the analyze report as a Markdown document.
	// Mutually exclusive with Format.
	Markdown bool

	// SplitSupported lists supported and unsupported entities separately
	// in the summary report.
	SplitSupported bool

	// Checks are the names of the checks to run. Empty means all.
	Checks []string

	// RelRoot, when set, makes filenames relative to it.
	RelRoot string

	// FailFast stops checking after the first failure.
	FailFast bool

	// IgnoredFile is the ignored-variables table used by the globals check.
	IgnoredFile string

	// Verbosity controls how much is logged. See log.LevelForVerbosity.
	Verbosity int

	// Concurrency limits how many inputs are read at once.
	Concurrency int

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:   DefaultVerbosity,
		Concurrency: DefaultConcurrency,
	}
}

// XDGConfigDir returns the XDG config directory for declscan.
// On Linux: ~/.config/declscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ReportFormat returns the parsed report format.
func (c *Config) ReportFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}

// ApplyFile copies the values set in f into c.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if len(f.Checks) > 0 {
		c.Checks = append([]string(nil), f.Checks...)
	}
	if f.RelRoot != "" {
		c.RelRoot = f.RelRoot
	}
	if f.FailFast != nil {
		c.FailFast = *f.FailFast
	}
	if f.Ignored != "" {
		c.IgnoredFile = f.Ignored
	}
	if f.Verbosity != nil {
		c.Verbosity = *f.Verbosity
	}
	if f.Concurrency != nil {
		c.Concurrency = *f.Concurrency
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}
	if _, err := c.ReportFormat(); err != nil {
		return err
	}
	if c.Markdown && c.Format != "" {
		return ErrConflictingReportFormats
	}
	if c.SplitSupported && (c.Markdown || (c.Format != "" && c.Format != "summary")) {
		return ErrSplitNeedsSummary
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidVerbosity, c.Verbosity)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidConcurrency, c.Concurrency)
	}
	return nil
}
