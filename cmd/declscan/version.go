package main

import (
	"fmt"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = ""
	commit  = ""
	date    = ""
)

const (
	develVersion = "(devel)"
	unknownValue = "unknown"
	shortHashLen = 7
)

var versionColor = color.New(color.FgGreen, color.Bold)

// buildInfo is the resolved version of the running binary.
type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

// readBuildInfo merges the ldflags values with what the Go toolchain
// recorded in the binary. Linker values win.
func readBuildInfo() buildInfo {
	info := buildInfo{Version: version, Commit: commit, Date: date}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.Date == "":
				info.Date = s.Value
			}
		}
	}

	if info.Version == "" {
		info.Version = develVersion
	}
	if len(info.Commit) > shortHashLen {
		info.Commit = info.Commit[:shortHashLen]
	}
	if info.Commit == "" {
		info.Commit = unknownValue
	}
	if info.Date == "" {
		info.Date = unknownValue
	}
	return info
}

// getVersion returns the version shown by --version.
func getVersion() string {
	return readBuildInfo().Version
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the declscan version with the commit and date it was built from.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return err
			}
			info := readBuildInfo()
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, info.Version)
				return nil
			}
			fmt.Fprintf(out, "declscan %s\n", versionColor.Sprint(info.Version))
			fmt.Fprintf(out, "  commit: %s\n", info.Commit)
			fmt.Fprintf(out, "  built:  %s\n", info.Date)
			return nil
		},
	}
	cmd.Flags().Bool("short", false, "Print only the version number")
	return cmd
}
