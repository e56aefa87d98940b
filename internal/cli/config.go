package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/kdocfmt/internal/baseline"
	"github.com/yaklabco/kdocfmt/internal/ui/pretty"
	"github.com/yaklabco/kdocfmt/pkg/editorconfig"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [path]",
		Short: "Show the effective options for a path",
		Long: `Show the formatting options in effect for a file or directory, after
cascading every governing .editorconfig and the baseline.

With no argument, the current directory is used.

Examples:
  kdocfmt config                 # Options for the current directory
  kdocfmt config src/Main.kt     # Options governing one file`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConfig,
	}
	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	base, err := baseline.Load(baseline.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return err
	}

	resolver := editorconfig.NewResolver(base.Baseline)

	// For a directory, resolve as if a Kotlin source lived directly in it.
	target := abs
	dir := abs
	if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
		target = filepath.Join(abs, "probe.kt")
	} else {
		dir = filepath.Dir(abs)
	}

	resolved, err := resolver.OptionsFor(target)
	if err != nil {
		return fmt.Errorf("resolve options: %w", err)
	}

	source := ""
	if res, err := resolver.Resolve(dir); err == nil && res.Found {
		source = res.Node.Path()
	}

	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))

	fmt.Fprint(os.Stdout, styles.FormatOptions(path, resolved, source))
	return nil
}
