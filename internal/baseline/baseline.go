// Package baseline resolves kdocfmt's process-wide baseline options: the
// defaults that apply wherever no .editorconfig overrides a field.
//
// Precedence, lowest to highest: built-in defaults, a .kdocfmt.yml project
// file found by upward search, KDOCFMT_* environment variables, CLI flags.
package baseline

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/kdocfmt/pkg/options"
)

// LoadOptions controls baseline resolution.
type LoadOptions struct {
	// WorkingDir is the directory the project-file search starts from.
	// Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is a baseline file given via --config. When set, the
	// upward search is skipped and the file must exist.
	ExplicitPath string

	// IgnoreProjectFile skips the .kdocfmt.yml search.
	IgnoreProjectFile bool

	// IgnoreEnv skips KDOCFMT_* environment variables.
	IgnoreEnv bool

	// Flags holds CLI flag overrides, applied last.
	Flags Overrides
}

// Overrides are optional per-field overrides; nil fields leave the merged
// value alone.
type Overrides struct {
	MaxLineWidth       *int
	MaxCommentWidth    *int
	HangingIndent      *int
	TabWidth           *int
	CollapseSingleLine *bool
}

// Result carries the resolved baseline and where it came from.
type Result struct {
	Baseline options.Resolved

	// LoadedFrom is the baseline file that was applied, if any.
	LoadedFrom string
}

// Load resolves the baseline by merging all sources.
func Load(opts LoadOptions) (*Result, error) {
	result := &Result{Baseline: options.Default()}

	path := opts.ExplicitPath
	if path == "" && !opts.IgnoreProjectFile {
		workDir := opts.WorkingDir
		if workDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("get working directory: %w", err)
			}
			workDir = wd
		}
		path = findProjectFile(workDir)
	}

	if path != "" {
		if err := applyFile(&result.Baseline, path); err != nil {
			return nil, err
		}
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		if err := applyEnv(&result.Baseline); err != nil {
			return nil, err
		}
	}

	applyOverrides(&result.Baseline, opts.Flags)

	result.Baseline = result.Baseline.Normalize()
	return result, nil
}

// fileConfig mirrors options.Resolved with optional fields so a partial
// baseline file only overrides what it names.
type fileConfig struct {
	MaxLineWidth       *int  `yaml:"max_line_width"`
	MaxCommentWidth    *int  `yaml:"max_comment_width"`
	HangingIndent      *int  `yaml:"hanging_indent"`
	TabWidth           *int  `yaml:"tab_width"`
	CollapseSingleLine *bool `yaml:"collapse_single_line"`
}

// applyFile merges a YAML baseline file into dst.
func applyFile(dst *options.Resolved, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read baseline file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	applyOverrides(dst, Overrides{
		MaxLineWidth:       cfg.MaxLineWidth,
		MaxCommentWidth:    cfg.MaxCommentWidth,
		HangingIndent:      cfg.HangingIndent,
		TabWidth:           cfg.TabWidth,
		CollapseSingleLine: cfg.CollapseSingleLine,
	})
	return nil
}

// applyOverrides merges non-nil override fields into dst.
func applyOverrides(dst *options.Resolved, o Overrides) {
	if o.MaxLineWidth != nil {
		dst.MaxLineWidth = *o.MaxLineWidth
	}
	if o.MaxCommentWidth != nil {
		dst.MaxCommentWidth = *o.MaxCommentWidth
	}
	if o.HangingIndent != nil {
		dst.HangingIndent = *o.HangingIndent
	}
	if o.TabWidth != nil {
		dst.TabWidth = *o.TabWidth
	}
	if o.CollapseSingleLine != nil {
		dst.CollapseSingleLine = *o.CollapseSingleLine
	}
}

// projectFileNames are the baseline file names searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectFileNames = []string{".kdocfmt.yml", ".kdocfmt.yaml"}

// vcsRootMarkers are directories that indicate a VCS root; the upward
// search stops there.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// findProjectFile searches upward from startDir for a baseline file,
// stopping at VCS roots, the home directory, or the filesystem root.
func findProjectFile(startDir string) string {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	dir := absDir
	for {
		for _, name := range projectFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}

		if isVCSRoot(dir) || (homeDir != "" && dir == homeDir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// isVCSRoot returns true if the directory contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
