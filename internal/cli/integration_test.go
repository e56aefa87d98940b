package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/kdocfmt/internal/cli"
)

// unformattedKotlin has a KDoc comment that overflows 40 columns once the
// directory's .editorconfig applies.
const unformattedKotlin = `package demo

/**
 * This sentence is deliberately much too long to survive a forty column wrap.
 */
fun demo() = Unit
`

const narrowEditorconfig = "root = true\n\n[*.kt]\nmax_line_length = 40\n"

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func buildInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

func TestIntegration_FmtCheckReportsChanges(t *testing.T) {
	tmpDir := t.TempDir()
	writeFixture(t, tmpDir, ".editorconfig", narrowEditorconfig)
	ktFile := writeFixture(t, tmpDir, "Demo.kt", unformattedKotlin)

	cmd := cli.NewRootCommand(buildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "--check", "--color", "never", ktFile})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrChangesNeeded))
}

func TestIntegration_FmtWriteRewritesFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFixture(t, tmpDir, ".editorconfig", narrowEditorconfig)
	ktFile := writeFixture(t, tmpDir, "Demo.kt", unformattedKotlin)

	cmd := cli.NewRootCommand(buildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "-w", "--color", "never", ktFile})

	require.NoError(t, cmd.Execute())

	formatted, err := os.ReadFile(ktFile)
	require.NoError(t, err)
	assert.NotEqual(t, unformattedKotlin, string(formatted))

	for _, line := range strings.Split(string(formatted), "\n") {
		assert.LessOrEqual(t, len(line), 40, "line overflows: %q", line)
	}

	// A second check run over the rewritten file must be clean.
	cmd = cli.NewRootCommand(buildInfo())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "--check", "--color", "never", ktFile})
	require.NoError(t, cmd.Execute())
}

func TestIntegration_FmtAlreadyFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	ktFile := writeFixture(t, tmpDir, "Tidy.kt",
		"package demo\n\n/**\n * Short.\n */\nfun demo() = Unit\n")

	cmd := cli.NewRootCommand(buildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "--check", "--color", "never", ktFile})

	require.NoError(t, cmd.Execute())
}

func TestIntegration_FmtWriteAndCheckMutuallyExclusive(t *testing.T) {
	cmd := cli.NewRootCommand(buildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "-w", "--check"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestIntegration_FmtBaselineFlagOverridesWidth(t *testing.T) {
	tmpDir := t.TempDir()
	// No .editorconfig: the baseline flag alone governs the width. At the
	// default 100 columns this comment is already fine, at 40 it is not.
	ktFile := writeFixture(t, tmpDir, "Demo.kt", unformattedKotlin)

	cmd := cli.NewRootCommand(buildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"fmt", "--check", "--max-line-width", "40", "--color", "never", ktFile})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrChangesNeeded))
}

func TestIntegration_ConfigCommandShowsOptions(t *testing.T) {
	tmpDir := t.TempDir()
	writeFixture(t, tmpDir, ".editorconfig", narrowEditorconfig)

	cmd := cli.NewRootCommand(buildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"config", "--color", "never", filepath.Join(tmpDir, "Demo.kt")})

	require.NoError(t, cmd.Execute())
}
