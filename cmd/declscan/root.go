package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// maxExitCode is the largest failure count reported through the exit status.
const maxExitCode = 255

var errorColor = color.New(color.FgRed, color.Bold)

// exitError carries the number of check failures to Execute.
type exitError struct {
	failures int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("%d failure(s) found", e.failures)
}

// code returns the process exit status for the failure count.
func (e *exitError) code() int {
	return min(e.failures, maxExitCode)
}

// NewRootCmd creates the root command for declscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "declscan",
		Short: "Check and report on analyzed C declarations",
		Long: `declscan reads the declarations found by a C analyzer (typedefs, structs,
unions, enums, functions, variables and statements) and either runs named
checks over them or renders a report.

Verbosity starts at 3. Each -v raises it by one and each -q lowers it.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().CountP("verbose", "v", "Increase verbosity (repeatable)")
	cmd.PersistentFlags().CountP("quiet", "q", "Decrease verbosity (repeatable)")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .declscan.yaml or the XDG config directory)")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewDataCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit status:
// the failure count for check, 1 for errors, 0 otherwise.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code()
	}
	errorColor.Fprintln(stderr, "Error:", err)
	return 1
}
