package pretty

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/kdocfmt/pkg/options"
)

// FormatOptions renders the resolved options for a path as an aligned
// key/value listing. source names the governing .editorconfig, or is empty
// when only the baseline applied.
func (s *Styles) FormatOptions(path string, resolved options.Resolved, source string) string {
	var b strings.Builder

	b.WriteString(s.Title.Render("Effective options for ") + s.FilePath.Render(path))
	b.WriteString("\n")
	if source != "" {
		b.WriteString(s.Source.Render("governed by "+truncateLeft(source, TerminalWidth(os.Stdout)-len("governed by "))) + "\n")
	} else {
		b.WriteString(s.Source.Render("no .editorconfig found; baseline applies") + "\n")
	}
	b.WriteString("\n")

	rows := []struct {
		key   string
		value string
	}{
		{"max line width", strconv.Itoa(resolved.MaxLineWidth)},
		{"max comment width", strconv.Itoa(resolved.MaxCommentWidth)},
		{"hanging indent", strconv.Itoa(resolved.HangingIndent)},
		{"tab width", strconv.Itoa(resolved.TabWidth)},
		{"collapse single line", strconv.FormatBool(resolved.CollapseSingleLine)},
	}

	keyWidth := 0
	for _, row := range rows {
		if len(row.key) > keyWidth {
			keyWidth = len(row.key)
		}
	}

	for _, row := range rows {
		padded := fmt.Sprintf("%-*s", keyWidth, row.key)
		b.WriteString("  " + s.Key.Render(padded) + "  " + s.Value.Render(row.value) + "\n")
	}

	return b.String()
}

// truncateLeft shortens a path to fit in width cells, keeping the tail,
// which is the discriminating part of a file path.
func truncateLeft(path string, width int) string {
	if width < 4 || len(path) <= width {
		return path
	}
	return "..." + path[len(path)-(width-3):]
}
