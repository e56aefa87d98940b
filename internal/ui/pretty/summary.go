package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/kdocfmt/pkg/runner"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files reformatted, 12 unchanged".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, mode runner.Mode) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("no files to format") + "\n"
	}

	changed := stats.FilesChanged + stats.FilesWritten
	if changed == 0 && stats.FilesErrored == 0 {
		return s.Success.Render("All files formatted") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesDiscovered, fileWord(stats.FilesDiscovered))) + "\n"
	}

	var parts []string
	if changed > 0 {
		verb := "would be reformatted"
		if mode == runner.ModeWrite {
			verb = "reformatted"
		}
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s %s", changed, fileWord(changed), verb)))
	}
	if stats.FilesUnchanged > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d unchanged", stats.FilesUnchanged)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped (modified externally)", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

func fileWord(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
