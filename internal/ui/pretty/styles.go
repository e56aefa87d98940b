// Package pretty provides Lipgloss-based styled output for the kdocfmt CLI.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const defaultTermWidth = 80

// Styles contains the styled renderers for CLI output.
type Styles struct {
	Title    lipgloss.Style
	Key      lipgloss.Style
	Value    lipgloss.Style
	Source   lipgloss.Style
	FilePath lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Dim      lipgloss.Style
}

// NewStyles creates a new Styles for the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:    plain,
			Key:      plain,
			Value:    plain,
			Source:   plain,
			FilePath: plain,
			Success:  plain,
			Failure:  plain,
			Dim:      plain,
		}
	}

	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Value:    lipgloss.NewStyle(),
		Source:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		FilePath: lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth attempts to get the terminal width from the writer.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
