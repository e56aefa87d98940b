// Package runner provides multi-file formatting orchestration.
package runner

import "github.com/yaklabco/kdocfmt/pkg/editorconfig"

// Mode selects what the runner does with reformatted content.
type Mode int

const (
	// ModeCheck reports files whose formatting differs without writing.
	ModeCheck Mode = iota

	// ModeWrite rewrites differing files in place.
	ModeWrite
)

// Options controls a formatting run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// If empty, the working directory is processed.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) the runner formats. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// matched against paths relative to WorkingDir.
	ExcludeGlobs []string

	// Mode selects check or write behavior.
	Mode Mode

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Resolver supplies per-file formatting options from the editorconfig
	// cascade. Required.
	Resolver *editorconfig.Resolver
}

// DefaultExtensions returns the file extensions kdocfmt formats.
func DefaultExtensions() []string {
	return []string{".kt", ".kts", ".java", ".md"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
