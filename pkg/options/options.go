// Package options defines the resolved formatting options for kdocfmt.
// These types are pure data structures with no dependency on the resolver
// or any config loader.
package options

// Default formatting widths. These match the values kdocfmt applies when no
// .editorconfig and no baseline override is present.
const (
	DefaultMaxLineWidth    = 100
	DefaultMaxCommentWidth = 72
	DefaultHangingIndent   = 4
	DefaultTabWidth        = 4
)

// Resolved is the concrete set of formatting options in effect for one file.
// Each field inherits independently through the editorconfig cascade.
type Resolved struct {
	// MaxLineWidth is the column limit for wrapped doc-comment lines in
	// Kotlin and Java sources.
	MaxLineWidth int `yaml:"max_line_width"`

	// MaxCommentWidth is the column limit for Markdown comment text. It is
	// only ever set by a section that explicitly names *.md; a bare [*]
	// section never supplies it.
	MaxCommentWidth int `yaml:"max_comment_width"`

	// HangingIndent is the indent applied to continuation lines of wrapped
	// block tags and list items.
	HangingIndent int `yaml:"hanging_indent"`

	// TabWidth is the width a tab character occupies when measuring lines.
	TabWidth int `yaml:"tab_width"`

	// CollapseSingleLine collapses a doc comment onto a single line when its
	// content fits. The editorconfig properties express the opposite
	// ("do not wrap single-line comments"), so parsed values are negated
	// before landing here.
	CollapseSingleLine bool `yaml:"collapse_single_line"`
}

// Default returns the baseline options used when nothing overrides them.
func Default() Resolved {
	return Resolved{
		MaxLineWidth:       DefaultMaxLineWidth,
		MaxCommentWidth:    DefaultMaxCommentWidth,
		HangingIndent:      DefaultHangingIndent,
		TabWidth:           DefaultTabWidth,
		CollapseSingleLine: false,
	}
}

// Clone returns an independently owned copy.
// Resolved has only value fields today, but every handoff goes through Clone
// so the cascade cache never aliases caller state.
func (r Resolved) Clone() Resolved {
	return r
}

// EffectiveCommentWidth returns the width Markdown text wraps to, falling
// back to MaxLineWidth when MaxCommentWidth is not positive.
func (r Resolved) EffectiveCommentWidth() int {
	if r.MaxCommentWidth > 0 {
		return r.MaxCommentWidth
	}
	return r.MaxLineWidth
}

// Normalize clamps nonsensical values back to defaults. Zero or negative
// widths would make the wrapper loop; the loaders call this after merging
// file, environment, and flag sources.
func (r Resolved) Normalize() Resolved {
	out := r
	if out.MaxLineWidth <= 0 {
		out.MaxLineWidth = DefaultMaxLineWidth
	}
	if out.MaxCommentWidth <= 0 {
		out.MaxCommentWidth = DefaultMaxCommentWidth
	}
	if out.HangingIndent < 0 {
		out.HangingIndent = DefaultHangingIndent
	}
	if out.TabWidth <= 0 {
		out.TabWidth = DefaultTabWidth
	}
	return out
}
