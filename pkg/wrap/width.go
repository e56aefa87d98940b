package wrap

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	runewidth "github.com/mattn/go-runewidth"
)

// cond is the shared width condition. kdocfmt measures for non-East-Asian
// locales; emoji are treated as neutral width.
//
//nolint:gochecknoglobals // Read-only width table.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true
	return c
}()

// TextWidth returns the monospace cell width of s. Widths are computed per
// grapheme cluster so combining marks and ZWJ sequences measure as their
// rendered width rather than their rune count.
func TextWidth(s string) int {
	width := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		width += cond.StringWidth(iter.Value())
	}
	return width
}

// indentWidth measures a line's leading whitespace, expanding tabs to the
// given tab width.
func indentWidth(line string, tabWidth int) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += tabWidth
		default:
			return width
		}
	}
	return width
}
