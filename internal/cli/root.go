// Package cli provides the Cobra command structure for kdocfmt.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/kdocfmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root kdocfmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "kdocfmt",
		Short: "A doc-comment formatter for Kotlin, Java, and Markdown",
		Long: `kdocfmt reflows KDoc and Javadoc comments and Markdown documents to the
line widths configured for each file.

Widths are resolved per file by cascading .editorconfig files found in
ancestor directories, so a repository, a module, and a single package can
each carry their own formatting rules.`,
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
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to baseline config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
