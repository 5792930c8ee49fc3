package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/gitinfo"
)

func initRepoWithCommit(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte("print('hi')\n"), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("main.py")
	require.NoError(t, err)

	hash, err := wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir, hash.String()
}

func TestCommitHash_ShortensHeadHash(t *testing.T) {
	dir, full := initRepoWithCommit(t)

	short, err := gitinfo.New().CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, short, 12)
	assert.Equal(t, full[:12], short)
}

func TestCommitHash_DetectsRepoFromSubdirectory(t *testing.T) {
	dir, full := initRepoWithCommit(t)
	sub := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(sub, 0755))

	short, err := gitinfo.New().CommitHash(sub)
	require.NoError(t, err)
	assert.Equal(t, full[:12], short)
}

func TestCommitHash_OutsideRepository(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}
