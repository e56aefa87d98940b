package wrap

import (
	"strings"
)

// paragraph is one reflowable or verbatim unit of comment text.
type paragraph struct {
	// verbatim lines are emitted unchanged (code fences, indented code,
	// headings, tables).
	verbatim []string

	// words is the collapsed text of a flowable paragraph.
	words []string

	// hang is the extra indent applied to continuation lines, used for list
	// items and block tags.
	hang int

	// blankBefore records whether a blank line separated this paragraph
	// from the previous one.
	blankBefore bool
}

// reflow reformats plain comment content lines (no comment decoration) to
// the given width. Structure that must not be rewrapped survives verbatim.
func reflow(lines []string, width, hangingIndent int) []string {
	paras := splitParagraphs(lines, hangingIndent)

	var out []string
	for i, p := range paras {
		if i > 0 && p.blankBefore {
			out = append(out, "")
		}

		if p.verbatim != nil {
			out = append(out, p.verbatim...)
			continue
		}

		cont := strings.Repeat(" ", p.hang)
		out = append(out, fill(p.words, width, "", cont)...)
	}
	return out
}

// splitParagraphs groups content lines into flowable and verbatim units.
func splitParagraphs(lines []string, hangingIndent int) []paragraph {
	var (
		paras   []paragraph
		inFence bool
		blank   bool
	)
	current := -1 // index of the open flowable paragraph, -1 when none

	appendVerbatim := func(line string) {
		last := len(paras) - 1
		if last >= 0 && paras[last].verbatim != nil && current < 0 && !blank {
			paras[last].verbatim = append(paras[last].verbatim, line)
			return
		}
		paras = append(paras, paragraph{verbatim: []string{line}, blankBefore: blank})
		blank = false
		current = -1
	}

	startParagraph := func(text string, hang int) {
		paras = append(paras, paragraph{words: words(text), hang: hang, blankBefore: blank})
		current = len(paras) - 1
		blank = false
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inFence {
			appendVerbatim(line)
			if isFence(trimmed) {
				inFence = false
			}
			continue
		}

		switch {
		case trimmed == "":
			blank = true
			current = -1

		case isFence(trimmed):
			inFence = true
			appendVerbatim(line)

		case isVerbatimLine(line, trimmed):
			appendVerbatim(line)

		case isListItem(trimmed) || isBlockTag(trimmed):
			startParagraph(trimmed, hangingIndent)

		case current >= 0:
			paras[current].words = append(paras[current].words, words(trimmed)...)

		default:
			startParagraph(trimmed, 0)
		}
	}

	return paras
}

// isFence matches Markdown code fence delimiters.
func isFence(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// isVerbatimLine matches lines that must never be rewrapped: headings,
// tables, block quotes, HTML, and indented code.
func isVerbatimLine(line, trimmed string) bool {
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}
	switch {
	case strings.HasPrefix(trimmed, "#"),
		strings.HasPrefix(trimmed, "|"),
		strings.HasPrefix(trimmed, ">"),
		strings.HasPrefix(trimmed, "<"):
		return true
	}
	return false
}

// isListItem matches Markdown bullet and ordered-list markers.
func isListItem(trimmed string) bool {
	if len(trimmed) >= 2 {
		switch trimmed[0] {
		case '-', '*', '+':
			if trimmed[1] == ' ' {
				return true
			}
		}
	}

	// Ordered list: digits followed by ". " or ") ".
	i := 0
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(trimmed) && (trimmed[i] == '.' || trimmed[i] == ')') && trimmed[i+1] == ' ' {
		return true
	}
	return false
}

// isBlockTag matches KDoc/Javadoc block tags such as @param and @return.
func isBlockTag(trimmed string) bool {
	return strings.HasPrefix(trimmed, "@") && len(trimmed) > 1
}
