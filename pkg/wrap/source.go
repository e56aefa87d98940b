package wrap

import (
	"path/filepath"
	"strings"

	"github.com/yaklabco/kdocfmt/pkg/options"
)

// Kind classifies the inputs kdocfmt knows how to format.
type Kind int

const (
	KindUnknown Kind = iota
	KindKotlin
	KindJava
	KindMarkdown
)

// DetectKind maps a file path to its format kind by extension.
func DetectKind(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kt", ".kts":
		return KindKotlin
	case ".java":
		return KindJava
	case ".md":
		return KindMarkdown
	default:
		return KindUnknown
	}
}

// File reformats src according to its kind: doc comments for Kotlin and
// Java sources, whole-document paragraphs for Markdown. Unknown kinds pass
// through unchanged.
func File(src string, kind Kind, opts options.Resolved) string {
	switch kind {
	case KindKotlin, KindJava:
		return Source(src, opts)
	case KindMarkdown:
		return Markdown(src, opts)
	default:
		return src
	}
}

// Markdown reflows a Markdown document to the resolved comment width.
func Markdown(src string, opts options.Resolved) string {
	lines := strings.Split(src, "\n")

	trailingNewline := false
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
		trailingNewline = true
	}

	out := reflow(lines, opts.EffectiveCommentWidth(), opts.HangingIndent)

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	return result
}

// Source rewrites every /** ... */ doc comment in a Kotlin or Java source
// file, leaving all other text untouched.
//
// Detection is lexical: a line whose first non-blank token opens a doc
// comment starts a block, which runs to the closing delimiter. Comment
// openers inside string literals are not recognized as such only when they
// do not start the line, which is where they occur in practice.
func Source(src string, opts options.Resolved) string {
	lines := strings.Split(src, "\n")
	var out []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if !strings.HasPrefix(trimmed, "/**") || isClosedElsewhere(trimmed) {
			out = append(out, line)
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		// Collect the comment block, including a single-line /** ... */.
		block := []string{line}
		end := i
		for !strings.Contains(lines[end], "*/") {
			end++
			if end >= len(lines) {
				// Unterminated comment: emit as-is.
				out = append(out, block...)
				i = end
				block = nil
				break
			}
			block = append(block, lines[end])
		}
		if block == nil {
			continue
		}

		out = append(out, Comment(block, indent, opts)...)
		i = end
	}

	return strings.Join(out, "\n")
}

// isClosedElsewhere reports whether a line that opens a doc comment also
// carries code after the closing delimiter, which kdocfmt leaves alone.
func isClosedElsewhere(trimmed string) bool {
	idx := strings.Index(trimmed, "*/")
	return idx >= 0 && strings.TrimSpace(trimmed[idx+2:]) != ""
}
