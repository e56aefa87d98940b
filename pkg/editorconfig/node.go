package editorconfig

import (
	"strconv"
	"strings"
	"sync"

	"github.com/yaklabco/kdocfmt/pkg/options"
)

// Node is one parsed .editorconfig file in a cascade chain. Nodes are
// immutable after construction; the only mutation is the one-shot options
// memo guarded by a sync.Once.
type Node struct {
	sourcePath string
	root       bool
	sections   []Section

	// parent is the next governing file up the tree. Always nil when root
	// is true: root is an absolute cascade boundary regardless of what
	// exists on disk above it.
	parent *Node

	once sync.Once
	memo options.Resolved
}

// newNode constructs a node, enforcing the root/parent invariant.
func newNode(sourcePath string, root bool, sections []Section, parent *Node) *Node {
	n := &Node{
		sourcePath: sourcePath,
		root:       root,
		sections:   sections,
	}
	if !root {
		n.parent = parent
	}
	return n
}

// Path returns the file this node was parsed from.
func (n *Node) Path() string { return n.sourcePath }

// Root reports whether this file declared root=true.
func (n *Node) Root() bool { return n.root }

// Parent returns the next governing node up the tree, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Sections returns the retained sections in file order.
func (n *Node) Sections() []Section { return n.sections }

// Lookup resolves the effective raw value of key for the given file-type
// glob, walking this node's sections and then its parent chain.
//
// A section is eligible when includeWildcard is true and its header is
// exactly "[*]", or when its header contains glob as a substring. Within one
// file the last eligible section defining the key wins. On a miss the lookup
// recurses into the parent, unless this node is root: a root node halts
// resolution unconditionally, even on a miss.
//
// includeWildcard is false for the Markdown comment-width lookup so that a
// bare [*] section can never supply a file-type-specific width.
func (n *Node) Lookup(key, glob string, includeWildcard bool) (string, bool) {
	var (
		value string
		found bool
	)

	for _, section := range n.sections {
		eligible := (includeWildcard && section.Header == "[*]") ||
			containsGlob(section.Header, glob)
		if !eligible {
			continue
		}
		if v, ok := section.Values[key]; ok {
			value = v
			found = true
		}
	}

	if found {
		return value, true
	}

	if !n.root && n.parent != nil {
		return n.parent.Lookup(key, glob, includeWildcard)
	}
	return "", false
}

// containsGlob is the substring eligibility test from the cascade rules.
func containsGlob(header, glob string) bool {
	return glob != "" && strings.Contains(header, glob)
}

// Options computes the concrete options in effect at this node, memoized.
//
// The base object is a copy of the parent's options, or of baseline at the
// top of the chain (root nodes and orphan nodes both start from baseline).
// Each field is then resolved independently: the literal value "unset"
// reverts the field to the baseline's value, a parse failure leaves the
// inherited value untouched, and a successful parse overwrites it.
//
// The memo assumes a stable baseline; the Resolver discards all nodes when
// its baseline is replaced.
func (n *Node) Options(baseline options.Resolved) options.Resolved {
	n.once.Do(func() {
		n.memo = n.computeOptions(baseline)
	})
	return n.memo.Clone()
}

func (n *Node) computeOptions(baseline options.Resolved) options.Resolved {
	var out options.Resolved
	if n.root || n.parent == nil {
		out = baseline.Clone()
	} else {
		out = n.parent.Options(baseline)
	}

	n.applyInt(KeyMaxLineLength, "*.kt", true, &out.MaxLineWidth, baseline.MaxLineWidth)
	n.applyInt(KeyMaxLineLength, "*.md", false, &out.MaxCommentWidth, baseline.MaxCommentWidth)
	n.applyInt(KeyIndentSize, "*.kt", true, &out.HangingIndent, baseline.HangingIndent)
	n.applyInt(KeyTabWidth, "*.kt", true, &out.TabWidth, baseline.TabWidth)
	n.applyCollapse(&out, baseline)

	return out
}

// applyInt resolves one integer-valued property into field.
func (n *Node) applyInt(key, glob string, includeWildcard bool, field *int, baselineValue int) {
	raw, ok := n.Lookup(key, glob, includeWildcard)
	if !ok {
		return
	}
	if raw == UnsetValue {
		*field = baselineValue
		return
	}
	if v, err := strconv.Atoi(raw); err == nil {
		*field = v
	}
}

// applyCollapse resolves the single-line collapse flag. Three keys are
// consulted in priority order and the first one present wins. The source
// properties express "do not wrap if one line", while the stored field means
// "collapse if one line", so the parsed boolean is negated.
func (n *Node) applyCollapse(out *options.Resolved, baseline options.Resolved) {
	lookups := []struct {
		key  string
		glob string
	}{
		{KeyCollapseTool, "*.kt"},
		{KeyCollapseKotlin, "*.kt"},
		{KeyCollapseJava, "*.java"},
	}

	for _, l := range lookups {
		raw, ok := n.Lookup(l.key, l.glob, true)
		if !ok {
			continue
		}
		if raw == UnsetValue {
			out.CollapseSingleLine = baseline.CollapseSingleLine
			return
		}
		if b, err := parseBool(raw); err == nil {
			out.CollapseSingleLine = !b
		}
		return
	}
}
