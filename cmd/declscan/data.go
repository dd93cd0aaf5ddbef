package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/declscan/internal/model"
	"github.com/nao1215/declscan/internal/report"
	"github.com/nao1215/declscan/internal/source"
)

// errNoKnown is returned when data show is run without --known.
var errNoKnown = errors.New("missing --known: provide a known-types table")

// NewDataCmd creates the data command and its subcommands.
func NewDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Show or dump the known-types data",
		Long: `Data manages the known-types table: the resolved type declarations
that other tools load instead of analyzing the headers again.`,
	}

	cmd.AddCommand(newDataShowCmd())
	cmd.AddCommand(newDataDumpCmd())
	return cmd
}

func newDataShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show --known FILE",
		Short:   "Print a summary of a known-types table",
		Example: `  declscan data show --known Tools/c-analyzer/known.tsv`,
		Args:    cobra.NoArgs,
		RunE:    runDataShowCmd,
	}
	cmd.Flags().String("known", "", "Known-types table to show")
	cmd.Flags().String("relroot", "", "Show filenames relative to this directory")
	return cmd
}

func newDataDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [flags] FILE...",
		Short: "Write the type declarations of the inputs as a known-types table",
		Long: `Dump writes the type declarations of the inputs as a known-types table.
The table goes to the --known file, or to stdout without --known or with --show.`,
		Example: `  declscan data dump --relroot /src/cpython --known known.tsv analyzed.tsv`,
		Args:    cobra.ArbitraryArgs,
		RunE:    runDataDumpCmd,
	}
	cmd.Flags().String("known", "", "Known-types table to write")
	cmd.Flags().Bool("show", false, "Write to stdout even if --known is set")
	addInputFlags(cmd)
	return cmd
}

// runDataShowCmd prints the summary report of a known-types table.
func runDataShowCmd(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("known")
	if err != nil {
		return err
	}
	if path == "" {
		return errNoKnown
	}
	relroot, err := cmd.Flags().GetString("relroot")
	if err != nil {
		return err
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to open known-types table: %w", err)
	}
	defer f.Close()

	known, err := source.ReadKnown(f)
	if err != nil {
		return fmt.Errorf("failed to read known-types table %s: %w", path, err)
	}

	lines, err := report.Render(report.FormatSummary, model.NewAnalyzedSet(known...), report.RenderOptions{RelRoot: relroot})
	if err != nil {
		return err
	}
	_, err = report.NewLineWriter(cmd.OutOrStdout()).Write(lines)
	return err
}

// runDataDumpCmd writes the known-types table of the inputs.
func runDataDumpCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	known, err := cmd.Flags().GetString("known")
	if err != nil {
		return err
	}
	show, err := cmd.Flags().GetBool("show")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	logger := newLogger(cmd, cfg)

	set, err := loadInputs(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	if known == "" || show {
		return source.WriteKnown(cmd.OutOrStdout(), set, cfg.RelRoot)
	}
	return writeKnownFile(known, set, cfg.RelRoot)
}

// writeKnownFile writes the known-types table of set to path, replacing
// any existing file.
func writeKnownFile(path string, set *model.AnalyzedSet, relroot string) (err error) {
	f, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create known-types table: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close known-types table: %w", cerr)
		}
	}()

	if err := source.WriteKnown(f, set, relroot); err != nil {
		return fmt.Errorf("failed to write known-types table %s: %w", path, err)
	}
	return nil
}
