package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "bricklint-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "bricklint")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/bricklint")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath() string {
	abs, _ := filepath.Abs("../../testdata/polyglot/sample")
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Lint Tests ---

func TestE2E_Lint(t *testing.T) {
	out, code := run(t, "lint", fixturePath(), "--no-history")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "fetchData")
	assert.Contains(t, out, "naming/function-naming")
}

func TestE2E_LintJSON(t *testing.T) {
	out, code := run(t, "lint", fixturePath(), "--json", "--no-history")
	assert.Equal(t, 0, code)

	var report domain.LintReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.TotalFiles())
	assert.Equal(t, 1, report.TotalWarnings())
	assert.Equal(t, 0, report.TotalErrors())
}

func TestE2E_LintStrictFails(t *testing.T) {
	out, code := run(t, "lint", fixturePath(), "--preset", "strict", "--no-history")
	assert.Equal(t, 1, code, "strict preset should fail on the camelCase function")
	assert.Contains(t, out, "error(s)")
}

func TestE2E_LintCI(t *testing.T) {
	_, code := run(t, "lint", fixturePath(), "--ci", "--no-history")
	assert.Equal(t, 1, code, "should exit 1 on any violation in CI mode")
}

func TestE2E_LintRecordsHistory(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.py"), []byte("def fetchData():\n    return 1\n"), 0644))

	_, code := run(t, "lint", tmpDir)
	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(tmpDir, ".bricklint", "history.json"))

	out, code := run(t, "history", tmpDir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "1 recorded run")
}

// --- Config Tests ---

func TestE2E_InitAndValidate(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.py"), []byte("def run():\n    return 1\n"), 0644))

	out, code := run(t, "init", tmpDir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Created")

	out, code = run(t, "validate", filepath.Join(tmpDir, ".bricklintrc.yaml"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "config is valid")
}

// --- Listing Tests ---

func TestE2E_Rules(t *testing.T) {
	out, code := run(t, "rules")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "complexity/max-complexity")
	assert.Contains(t, out, "naming/class-naming")
}

func TestE2E_Inspect(t *testing.T) {
	out, code := run(t, "inspect", filepath.Join(fixturePath(), "app.py"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "fetchData")
}

// --- Version Test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "bricklint")
}
