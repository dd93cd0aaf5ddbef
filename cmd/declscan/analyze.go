package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/declscan/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [flags] FILE...",
		Short: "Report on the analyzed declarations",
		Long: `Analyze renders a report of the analyzed declarations.

Formats:
  raw      one unambiguous line per declaration
  brief    one line per declaration, grouped by kind
  summary  a table per section (types, functions, variables, statements)
  full     a detailed block per declaration

Examples:
  # Summary tables (the default)
  declscan analyze analyzed.tsv

  # Supported and unsupported declarations listed separately
  declscan analyze --split-supported analyzed.tsv

  # Summary as a Markdown document
  declscan analyze --markdown --relroot /src/cpython analyzed.tsv`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().String("format", "",
		"Report format: "+strings.Join(report.FormatNames(), ", ")+" (default: summary)")
	cmd.Flags().Bool("markdown", false,
		"Write the summary as Markdown (mutually exclusive with --format)")
	cmd.Flags().Bool("split-supported", false,
		"List supported and unsupported types and variables separately in the summary")
	addInputFlags(cmd)

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	format, err := cfg.ReportFormat()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	set, err := loadInputs(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	if cfg.RelRoot != "" {
		if err := set.FixFilenames(cfg.RelRoot); err != nil {
			return err
		}
	}

	opts := report.RenderOptions{SplitSupported: cfg.SplitSupported}
	if cfg.Markdown {
		return report.NewMarkdownWriter(cmd.OutOrStdout()).Write(set, opts)
	}

	lines, err := report.Render(format, set, opts)
	if err != nil {
		return err
	}
	_, err = report.NewLineWriter(cmd.OutOrStdout()).Write(lines)
	return err
}
