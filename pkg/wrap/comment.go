package wrap

import (
	"strings"

	"github.com/yaklabco/kdocfmt/pkg/options"
)

// Comment reformats one KDoc/Javadoc comment body to the resolved options.
//
// body is the raw comment text between "/**" and "*/", one element per line,
// with any leading " * " decoration still attached. indent is the leading
// whitespace of the line the comment starts on; wrapped output stays within
// opts.MaxLineWidth including that indent and the " * " decoration.
func Comment(body []string, indent string, opts options.Resolved) []string {
	content := stripDecoration(body)
	avail := opts.MaxLineWidth - indentWidth(indent, opts.TabWidth) - len(" * ")
	if avail < 1 {
		avail = 1
	}

	wrapped := reflow(content, avail, opts.HangingIndent)

	// A comment whose content fits on one line collapses to the compact
	// form when configured to do so.
	if opts.CollapseSingleLine && len(wrapped) == 1 {
		single := indent + "/** " + wrapped[0] + " */"
		if indentWidth(indent, opts.TabWidth)+TextWidth("/** "+wrapped[0]+" */") <= opts.MaxLineWidth {
			return []string{single}
		}
	}

	out := make([]string, 0, len(wrapped)+2)
	out = append(out, indent+"/**")
	for _, line := range wrapped {
		if line == "" {
			out = append(out, indent+" *")
		} else {
			out = append(out, indent+" * "+line)
		}
	}
	out = append(out, indent+" */")
	return out
}

// stripDecoration removes the comment delimiters and the leading "* "
// column from raw comment lines. Indentation after the decoration is
// preserved so indented code inside a comment stays verbatim.
func stripDecoration(body []string) []string {
	out := make([]string, 0, len(body))
	for _, line := range body {
		s := strings.TrimLeft(line, " \t")

		switch {
		case strings.HasPrefix(s, "/**"):
			s = strings.TrimPrefix(s, "/**")
			s = strings.TrimPrefix(s, " ")
		case strings.HasPrefix(s, "*") && !strings.HasPrefix(s, "*/"):
			s = strings.TrimPrefix(s, "*")
			s = strings.TrimPrefix(s, " ")
		}

		if idx := strings.LastIndex(s, "*/"); idx >= 0 && strings.TrimSpace(s[idx+2:]) == "" {
			s = s[:idx]
		}

		out = append(out, strings.TrimRight(s, " \t"))
	}

	// Drop blank frame lines produced by the /** and */ delimiters.
	for len(out) > 0 && strings.TrimSpace(out[0]) == "" {
		out = out[1:]
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return out
}
