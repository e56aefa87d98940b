// Package wrap reflows documentation-comment text to the widths resolved by
// the editorconfig cascade. It wraps KDoc and Javadoc comment blocks in
// Kotlin and Java sources and paragraph text in Markdown documents.
package wrap

import "strings"

// fill greedily packs words into lines no wider than width. The first line
// is prefixed with firstPrefix, continuation lines with contPrefix; prefixes
// count against the width. A single word wider than the available space gets
// a line of its own rather than being split.
func fill(words []string, width int, firstPrefix, contPrefix string) []string {
	if len(words) == 0 {
		return nil
	}

	var (
		lines   []string
		current strings.Builder
		used    int
	)

	prefix := firstPrefix
	current.WriteString(prefix)
	used = TextWidth(prefix)
	lineEmpty := true

	flush := func() {
		lines = append(lines, strings.TrimRight(current.String(), " "))
		current.Reset()
		prefix = contPrefix
		current.WriteString(prefix)
		used = TextWidth(prefix)
		lineEmpty = true
	}

	for _, word := range words {
		w := TextWidth(word)
		if !lineEmpty && used+1+w > width {
			flush()
		}
		if !lineEmpty {
			current.WriteString(" ")
			used++
		}
		current.WriteString(word)
		used += w
		lineEmpty = false
	}

	if !lineEmpty {
		lines = append(lines, strings.TrimRight(current.String(), " "))
	}
	return lines
}

// words splits paragraph text on any whitespace run.
func words(text string) []string {
	return strings.Fields(text)
}
