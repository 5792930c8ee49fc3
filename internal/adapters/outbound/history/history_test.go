package history_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/history"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

func TestHistory_LoadEmptyProject(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestHistory_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := history.New()

	first := domain.RunEntry{
		Timestamp:       "2026-08-01T10:00:00Z",
		CommitHash:      "abc123def456",
		TotalFiles:      4,
		TotalErrors:     1,
		TotalWarnings:   3,
		TotalViolations: 4,
	}
	require.NoError(t, store.Append(dir, first))
	require.NoError(t, store.Append(dir, domain.RunEntry{Timestamp: "2026-08-02T10:00:00Z", TotalFiles: 4}))

	entries, err := store.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, "2026-08-02T10:00:00Z", entries[1].Timestamp)
}

func TestHistory_CapsStoredEntries(t *testing.T) {
	dir := t.TempDir()
	store := history.New()

	for i := 0; i < 55; i++ {
		entry := domain.RunEntry{Timestamp: fmt.Sprintf("run-%02d", i)}
		require.NoError(t, store.Append(dir, entry))
	}

	entries, err := store.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	assert.Equal(t, "run-05", entries[0].Timestamp)
	assert.Equal(t, "run-54", entries[49].Timestamp)
}
