package main

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/declscan/internal/config"
)

//go:embed templates
var templates embed.FS

// errConfigExists is returned when init would overwrite a file without -f.
var errConfigExists = errors.New("configuration file already exists")

// configTemplate returns the commented template for path's format.
func configTemplate(path string) ([]byte, error) {
	name := "templates/declscan.yaml"
	if config.IsTOML(path) {
		name = "templates/declscan.toml"
	}
	return templates.ReadFile(name)
}

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented configuration file",
		Long: `Init writes a configuration file documenting every option.
All options are commented out, so the file changes nothing until edited.

The file is YAML unless the output path ends in ".toml" or --toml is given.

Examples:
  # Write .declscan.yaml in the current directory
  declscan init

  # Write .declscan.toml instead
  declscan init --toml

  # Write the user-wide configuration
  declscan init -o ~/.config/declscan/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Path of the file to write")
	cmd.Flags().Bool("toml", false,
		"Write "+config.DefaultTOMLConfigFile+" when --output is not given")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite an existing file")

	return cmd
}

// runInitCmd writes the configuration template.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	asTOML, err := cmd.Flags().GetBool("toml")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	if asTOML && !flagChanged(cmd, "output") {
		outputPath = config.DefaultTOMLConfigFile
	}

	if _, err := os.Stat(outputPath); err == nil && !force {
		return fmt.Errorf("%w: %s (use -f to overwrite)", errConfigExists, outputPath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", outputPath, err)
	}

	content, err := configTemplate(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputPath)
	return nil
}
