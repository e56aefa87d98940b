package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/kdocfmt/internal/baseline"
	"github.com/yaklabco/kdocfmt/internal/logging"
	"github.com/yaklabco/kdocfmt/internal/ui/pretty"
	"github.com/yaklabco/kdocfmt/pkg/editorconfig"
	"github.com/yaklabco/kdocfmt/pkg/runner"
)

// ErrChangesNeeded signals that check mode found unformatted files. It
// carries no message for the user; it only selects the exit code.
var ErrChangesNeeded = errors.New("files would be reformatted")

type fmtFlags struct {
	write           bool
	check           bool
	jobs            int
	exclude         []string
	maxLineWidth    int
	maxCommentWidth int
	hangingIndent   int
	tabWidth        int
	collapse        bool
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Format doc comments and Markdown files",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&flags.check, "check", false,
		"report files that would change without writing (exit 1 if any)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().IntVar(&flags.maxLineWidth, "max-line-width", 0, "baseline maximum line width")
	cmd.Flags().IntVar(&flags.maxCommentWidth, "max-comment-width", 0,
		"baseline maximum Markdown comment width")
	cmd.Flags().IntVar(&flags.hangingIndent, "hanging-indent", 0, "baseline hanging indent")
	cmd.Flags().IntVar(&flags.tabWidth, "tab-width", 0, "baseline tab width")
	cmd.Flags().BoolVar(&flags.collapse, "collapse", false,
		"collapse doc comments that fit on a single line")

	return cmd
}

const fmtLongDescription = `Format KDoc/Javadoc comments in Kotlin and Java sources and paragraph
text in Markdown documents.

By default all .kt, .kts, .java, and .md files under the current directory
are checked. Specify paths to format specific files or directories.

Per-file widths come from .editorconfig files in ancestor directories;
flags set the baseline used where no .editorconfig overrides a field.

Examples:
  kdocfmt fmt                      # Report what would change
  kdocfmt fmt -w src/              # Rewrite files under src/
  kdocfmt fmt --check              # CI gate: exit 1 on unformatted files
  kdocfmt fmt --max-line-width 80  # Change the baseline width`

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	logger := logging.Default()

	if flags.write && flags.check {
		return fmt.Errorf("--write and --check are mutually exclusive")
	}

	base, err := loadBaseline(cmd, flags)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	mode := runner.ModeCheck
	if flags.write {
		mode = runner.ModeWrite
	}

	logger.Debug("baseline resolved",
		logging.FieldMaxLineWidth, base.Baseline.MaxLineWidth,
		logging.FieldMaxCommentWidth, base.Baseline.MaxCommentWidth,
		logging.FieldWrite, flags.write,
		logging.FieldJobs, flags.jobs,
	)
	if base.LoadedFrom != "" {
		logger.Debug("baseline loaded", logging.FieldConfig, base.LoadedFrom)
	}

	result, err := runner.Run(cmd.Context(), runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: flags.exclude,
		Mode:         mode,
		Jobs:         flags.jobs,
		Resolver:     editorconfig.NewResolver(base.Baseline),
	})
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))

	for _, outcome := range result.Files {
		switch outcome.Status {
		case runner.StatusChanged:
			fmt.Fprintln(os.Stdout, styles.FilePath.Render(outcome.Path))
		case runner.StatusWritten:
			logger.Info("reformatted", logging.FieldPath, outcome.Path)
		case runner.StatusSkipped:
			logger.Warn("skipped: modified during run", logging.FieldPath, outcome.Path)
		case runner.StatusErrored:
			logger.Error("failed", logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Error)
		}
	}

	fmt.Fprint(os.Stdout, styles.FormatSummaryOneLine(result.Stats, mode))

	switch ExitCodeFromResult(result, mode) {
	case ExitIOError:
		return fmt.Errorf("%d files failed", result.Stats.FilesErrored)
	case ExitChangesNeeded:
		return ErrChangesNeeded
	default:
		return nil
	}
}

// loadBaseline merges defaults, the project baseline file, environment
// variables, and the explicitly set flags.
func loadBaseline(cmd *cobra.Command, flags *fmtFlags) (*baseline.Result, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	overrides := baseline.Overrides{}
	if cmd.Flags().Changed("max-line-width") {
		overrides.MaxLineWidth = &flags.maxLineWidth
	}
	if cmd.Flags().Changed("max-comment-width") {
		overrides.MaxCommentWidth = &flags.maxCommentWidth
	}
	if cmd.Flags().Changed("hanging-indent") {
		overrides.HangingIndent = &flags.hangingIndent
	}
	if cmd.Flags().Changed("tab-width") {
		overrides.TabWidth = &flags.tabWidth
	}
	if cmd.Flags().Changed("collapse") {
		overrides.CollapseSingleLine = &flags.collapse
	}

	result, err := baseline.Load(baseline.LoadOptions{
		ExplicitPath: configPath,
		Flags:        overrides,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load baseline configuration"), err)
	}
	return result, nil
}
