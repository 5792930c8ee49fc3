package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/inbound/cli"
)

func TestInspectCommand_DefaultTUI(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"inspect", filepath.Join(fixtureDir, "app.py")})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "python")
	assert.Contains(t, buf.String(), "fetchData")
	assert.Contains(t, buf.String(), "Lines")
}

func TestInspectCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"inspect", filepath.Join(fixtureDir, "app.py"), "--json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"language": "python"`)
	assert.Contains(t, buf.String(), `"kind": "function"`)
	assert.Contains(t, buf.String(), `"name": "fetchData"`)
}

func TestInspectCommand_MissingFile(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"inspect", filepath.Join(fixtureDir, "missing.py")})
	assert.Error(t, cmd.Execute())
}

func TestInspectCommand_UnsupportedFile(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"inspect", filepath.Join(fixtureDir, "README.md")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser")
}
