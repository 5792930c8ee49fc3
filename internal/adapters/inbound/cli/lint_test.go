package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/inbound/cli"
)

const fixtureDir = "../../../../testdata/polyglot/sample"

func TestLintCommand_DefaultTUI(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"lint", fixtureDir, "--no-history"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "bricklint")
	assert.Contains(t, buf.String(), "fetchData")
	assert.Contains(t, buf.String(), "naming/function-naming")
	assert.Contains(t, buf.String(), "1 problem")
}

func TestLintCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"lint", fixtureDir, "--json", "--no-history"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"total_files": 3`)
	assert.Contains(t, buf.String(), `"total_warnings": 1`)
	assert.Contains(t, buf.String(), `"rule_id": "naming/function-naming"`)
}

func TestLintCommand_NonRecursive(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"lint", fixtureDir, "--json", "--no-history", "--recursive=false"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"total_files": 2`)
	assert.NotContains(t, buf.String(), "util.js")
}

func TestLintCommand_IgnorePattern(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"lint", fixtureDir, "--json", "--no-history", "--ignore", "app.py"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"total_files": 2`)
	assert.NotContains(t, buf.String(), "fetchData")
}

func TestLintCommand_PresetStrictFails(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"lint", fixtureDir, "--preset", "strict", "--no-history"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 error(s)")
}

func TestLintCommand_UnknownPreset(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"lint", fixtureDir, "--preset", "nope", "--no-history"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestLintCommand_CIFailsOnWarnings(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"lint", fixtureDir, "--ci", "--no-history"})
	assert.Error(t, cmd.Execute())
}

func TestLintCommand_MaxWarnings(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"lint", fixtureDir, "--max-warnings", "0", "--no-history"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceed")

	cmd = cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"lint", fixtureDir, "--max-warnings", "5", "--no-history"})
	assert.NoError(t, cmd.Execute())
}

func TestLintCommand_RecordsHistory(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "app.py")
	require.NoError(t, os.WriteFile(src, []byte("def fetchData():\n    return 1\n"), 0644))

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"lint", tmpDir})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(tmpDir, ".bricklint", "history.json"))
	assert.FileExists(t, filepath.Join(tmpDir, ".bricklint", "last_report.json"))
}
