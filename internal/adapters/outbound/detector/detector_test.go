package detector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/detector"
)

func seed(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))
	}
}

func TestDetect_MarkerFiles(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "go.mod", "main.go")

	assert.Equal(t, []string{"go"}, detector.New().Detect(dir))
}

func TestDetect_MixedProjectCanonicalOrder(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "tsconfig.json", "requirements.txt", "cmd/main.go")

	langs := detector.New().Detect(dir)
	assert.Equal(t, []string{"go", "python", "typescript"}, langs)
}

func TestDetect_ExtensionsWithoutManifests(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, filepath.Join("scripts", "deploy.py"), filepath.Join("web", "app.jsx"))

	assert.Equal(t, []string{"python", "javascript"}, detector.New().Detect(dir))
}

func TestDetect_IgnoresDependencyDirs(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, filepath.Join("node_modules", "lib", "index.js"), "README.md")

	assert.Empty(t, detector.New().Detect(dir))
}

func TestDetect_MissingRoot(t *testing.T) {
	assert.Empty(t, detector.New().Detect(filepath.Join(t.TempDir(), "gone")))
}
