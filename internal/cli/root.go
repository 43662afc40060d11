// Package cli provides the Cobra command structure for rcview.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/rcview/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root rcview command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "rcview",
		Short: "Browse DRC and ERC violation reports",
		Long: `rcview is a terminal browser for design rule check (DRC) and electrical
rule check (ERC) violation reports.

It loads a violation report, groups findings that share a board marker,
and presents them as a navigable tree. Findings can be filtered by
severity, marked excluded, or deleted, and reports can be re-emitted as
plain text for sharing or CI logs.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newBrowseCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
