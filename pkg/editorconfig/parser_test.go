package editorconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a .editorconfig with the given content into dir.
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse_SectionsRetainedInFileOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `
root = true

[*]
max_line_length = 120

[*.kt]
max_line_length = 100
indent_size = 8
`)

	node, err := Parse(path, nil)
	require.NoError(t, err)

	assert.True(t, node.Root())
	require.Len(t, node.Sections(), 2)
	assert.Equal(t, "[*]", node.Sections()[0].Header)
	assert.Equal(t, "[*.kt]", node.Sections()[1].Header)
	assert.Equal(t, "100", node.Sections()[1].Values["max_line_length"])
	assert.Equal(t, "8", node.Sections()[1].Values["indent_size"])
}

func TestParse_BraceExpansion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `
[{*.kt,*.kts}]
max_line_length = 90
`)

	node, err := Parse(path, nil)
	require.NoError(t, err)

	require.Len(t, node.Sections(), 1)
	assert.Equal(t, "[{*.kt,*.kts}]", node.Sections()[0].Header)

	// The literal header text carries eligibility for both globs.
	v, ok := node.Lookup(KeyMaxLineLength, "*.kts", true)
	require.True(t, ok)
	assert.Equal(t, "90", v)
}

func TestParse_UnrecognizedSectionDropsItsKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `
[*.py]
max_line_length = 79

[*.kt]
max_line_length = 100
`)

	node, err := Parse(path, nil)
	require.NoError(t, err)

	require.Len(t, node.Sections(), 1)
	assert.Equal(t, "[*.kt]", node.Sections()[0].Header)
}

func TestParse_LenientOnMalformedContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `
# comment
; also a comment
this line is garbage
max_line_length = 100
[*.kt
[*.kt]
not_a_recognized_key = 5
MAX_LINE_LENGTH = 80
tab_width = not-a-number
`)

	node, err := Parse(path, nil)
	require.NoError(t, err)
	assert.False(t, node.Root())

	// The orphan property before any section is dropped; the malformed
	// header line is skipped; keys are lowercased before matching.
	require.Len(t, node.Sections(), 1)
	assert.Equal(t, "80", node.Sections()[0].Values["max_line_length"])
	assert.Equal(t, "not-a-number", node.Sections()[0].Values["tab_width"])
	assert.NotContains(t, node.Sections()[0].Values, "not_a_recognized_key")
}

func TestParse_RootFlag(t *testing.T) {
	t.Parallel()

	t.Run("case-insensitive value", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeConfig(t, dir, "root = TRUE\n")

		node, err := Parse(path, nil)
		require.NoError(t, err)
		assert.True(t, node.Root())
	})

	t.Run("invalid value ignored", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeConfig(t, dir, "root = yes\n")

		node, err := Parse(path, nil)
		require.NoError(t, err)
		assert.False(t, node.Root())
	})

	t.Run("root inside a section is not a root flag", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeConfig(t, dir, "[*.kt]\nroot = true\n")

		node, err := Parse(path, nil)
		require.NoError(t, err)
		assert.False(t, node.Root())
	})

	t.Run("root under a discarded section is dropped", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeConfig(t, dir, "[*.py]\nroot = true\n")

		node, err := Parse(path, nil)
		require.NoError(t, err)
		assert.False(t, node.Root())
	})
}

func TestParse_RootNodeNeverKeepsParent(t *testing.T) {
	t.Parallel()

	parentDir := t.TempDir()
	parentPath := writeConfig(t, parentDir, "[*]\nmax_line_length = 120\n")
	parent, err := Parse(parentPath, nil)
	require.NoError(t, err)

	childDir := t.TempDir()
	childPath := writeConfig(t, childDir, "root = true\n[*.kt]\nmax_line_length = 100\n")
	child, err := Parse(childPath, parent)
	require.NoError(t, err)

	assert.True(t, child.Root())
	assert.Nil(t, child.Parent())
}

func TestParse_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), ConfigFileName), nil)
	assert.Error(t, err)
}
