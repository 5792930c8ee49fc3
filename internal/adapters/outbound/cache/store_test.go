package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/cache"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

func TestStore_LoadWithoutSnapshot(t *testing.T) {
	snap, err := cache.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := cache.New()

	report := domain.NewLintReport()
	result := domain.NewLintResult("src/app.py")
	result.Add(domain.Violation{
		RuleID:   "complexity/max-complexity",
		Severity: domain.SeverityError,
		Message:   "Function 'main' has cyclomatic complexity 12 (max allowed 10)",
		FilePath:  "src/app.py",
		StartLine: 3,
	})
	report.Add(result)

	saved := domain.ReportSnapshot{
		GeneratedAt: "2026-08-20T09:00:00Z",
		CommitHash:  "abc123def456",
		Root:        dir,
		Report:      report,
	}
	require.NoError(t, store.Save(dir, saved))

	loaded, err := store.Load(dir)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.GeneratedAt, loaded.GeneratedAt)
	assert.Equal(t, saved.CommitHash, loaded.CommitHash)
	require.Len(t, loaded.Report.Results, 1)
	got := loaded.Report.Results[0]
	assert.Equal(t, "src/app.py", got.FilePath)
	assert.Equal(t, 1, got.ErrorCount)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "complexity/max-complexity", got.Violations[0].RuleID)
	assert.Equal(t, domain.SeverityError, got.Violations[0].Severity)
}
