package cli

import "github.com/yaklabco/kdocfmt/pkg/runner"

// Exit codes for kdocfmt.
const (
	// ExitSuccess indicates all files were already formatted (or were
	// rewritten successfully in write mode).
	ExitSuccess = 0

	// ExitChangesNeeded indicates check mode found files that would be
	// reformatted.
	ExitChangesNeeded = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates baseline configuration errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code for a formatting run.
func ExitCodeFromResult(result *runner.Result, mode runner.Mode) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasErrors() {
		return ExitIOError
	}
	if mode == runner.ModeCheck && result.HasChanges() {
		return ExitChangesNeeded
	}
	return ExitSuccess
}
