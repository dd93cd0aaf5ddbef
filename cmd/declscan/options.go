package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/declscan/internal/config"
	"github.com/nao1215/declscan/internal/log"
	"github.com/nao1215/declscan/internal/model"
	"github.com/nao1215/declscan/internal/source"
)

// addInputFlags adds the flags shared by commands that read analyzed inputs.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("relroot", "",
		"Show filenames relative to this directory")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of input files read at the same time")
}

// flagChanged reports whether the named flag exists and was set on the
// command line.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// buildConfig creates a Config from the config file and the command flags.
// Flags set on the command line take precedence over the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		f, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(f)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if flagChanged(cmd, "format") {
		if cfg.Format, err = cmd.Flags().GetString("format"); err != nil {
			return nil, err
		}
	}
	if flagChanged(cmd, "markdown") {
		if cfg.Markdown, err = cmd.Flags().GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if flagChanged(cmd, "split-supported") {
		if cfg.SplitSupported, err = cmd.Flags().GetBool("split-supported"); err != nil {
			return nil, err
		}
	}
	if flagChanged(cmd, "checks") {
		if cfg.Checks, err = cmd.Flags().GetStringSlice("checks"); err != nil {
			return nil, err
		}
	}
	if flagChanged(cmd, "relroot") {
		if cfg.RelRoot, err = cmd.Flags().GetString("relroot"); err != nil {
			return nil, err
		}
	}
	if flagChanged(cmd, "fail-fast") {
		if cfg.FailFast, err = cmd.Flags().GetBool("fail-fast"); err != nil {
			return nil, err
		}
	}
	if flagChanged(cmd, "ignored") {
		if cfg.IgnoredFile, err = cmd.Flags().GetString("ignored"); err != nil {
			return nil, err
		}
	}
	if flagChanged(cmd, "concurrency") {
		if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
			return nil, err
		}
	}

	verbose, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return nil, err
	}
	quiet, err := cmd.Flags().GetCount("quiet")
	if err != nil {
		return nil, err
	}
	cfg.Verbosity = max(0, cfg.Verbosity+verbose-quiet)

	cfg.Inputs = args
	return cfg, nil
}

// newLogger creates the logger for a command run.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return log.NewLogger(cmd.ErrOrStderr(), cfg.Verbosity)
}

// loadInputs reads every input of cfg into one analyzed set.
func loadInputs(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*model.AnalyzedSet, error) {
	logger.Info("analyzing...")
	return source.Load(ctx, cfg.Inputs, source.Options{
		Concurrency: cfg.Concurrency,
		Logger:      logger,
	})
}
