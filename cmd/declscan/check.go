package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/declscan/internal/check"
	"github.com/nao1215/declscan/internal/checks"
	"github.com/nao1215/declscan/internal/config"
	"github.com/nao1215/declscan/internal/log"
	"github.com/nao1215/declscan/internal/model"
	"github.com/nao1215/declscan/internal/report"
	"github.com/nao1215/declscan/internal/source"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] FILE...",
		Short: "Fail if the analyzed declarations have any problems",
		Long: fmt.Sprintf(`Check runs named checks over the analyzed declarations and prints every
failure. The exit status is the number of failures.

Available checks: %s
Available formats: %s (default: log each failure)

Examples:
  # Run every check
  declscan check analyzed.tsv

  # Run one check and stop at the first failure
  declscan check --checks globals --fail-fast analyzed.tsv

  # One line per failure, filenames relative to the source tree
  declscan check --format brief --relroot /src/cpython analyzed.db`,
			strings.Join(checks.DefaultRegistry(checks.Options{}).Names(), ", "),
			strings.Join(report.FormatNames(), ", ")),
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	cmd.Flags().String("format", "",
		"Failure format: "+strings.Join(report.FormatNames(), ", "))
	cmd.Flags().StringSlice("checks", nil,
		"Checks to run, in order (default: all)")
	cmd.Flags().Bool("fail-fast", false,
		"Stop after the first failure")
	cmd.Flags().String("ignored", "",
		"Ignored-variables table used by the globals check")
	addInputFlags(cmd)

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	logger := newLogger(cmd, cfg)

	numFailed, err := runCheck(cmd, cfg, logger)
	if err != nil {
		return err
	}
	if numFailed > 0 {
		return &exitError{failures: numFailed}
	}
	return nil
}

// runCheck runs the configured checks and returns the number of failures.
// Check names and the format are validated before any input is read.
func runCheck(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (int, error) {
	format, err := cfg.ReportFormat()
	if err != nil {
		return 0, err
	}

	ignored, err := readIgnored(cfg.IgnoredFile)
	if err != nil {
		return 0, err
	}
	registry := checks.DefaultRegistry(checks.Options{Ignored: ignored})
	runner, err := check.NewRunnerFromRegistry(registry, cfg.Checks,
		check.WithFailFast(cfg.FailFast),
		check.WithLogger(logger),
	)
	if err != nil {
		return 0, fmt.Errorf("configuration error: %w", err)
	}

	out := cmd.OutOrStdout()
	handler, err := report.NewFailureHandler(format, out, logger, cfg.Verbosity)
	if err != nil {
		return 0, err
	}

	set, err := loadInputs(cmd.Context(), cfg, logger)
	if err != nil {
		return 0, err
	}
	if cfg.RelRoot != "" {
		if err := set.FixFilenames(cfg.RelRoot); err != nil {
			return 0, err
		}
	}

	logger.Info("checking...")
	reporter := report.NewFailureReporter(handler, log.NewPrinter(out, cfg.Verbosity), logger)
	return reporter.Report(runner.Run(set))
}

// readIgnored reads the ignored-variables table, if one is configured.
func readIgnored(path string) (map[model.DeclID]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open ignored list: %w", err)
	}
	defer f.Close()

	ignored, err := source.ReadIgnored(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read ignored list %s: %w", path, err)
	}
	return ignored, nil
}
