package baseline_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/baseline"
)

// legacyOutcomes builds ten single-function files with complexities 1..10 so
// percentile expectations are easy to verify by hand.
func legacyOutcomes() []*domain.Outcome {
	var outcomes []*domain.Outcome
	for i := 1; i <= 10; i++ {
		outcomes = append(outcomes, &domain.Outcome{
			FilePath:   fmt.Sprintf("mod_%d.py", i),
			Language:   "python",
			TotalLines: 100 * i,
			Nodes: []domain.Node{
				{Kind: domain.KindFunction, Name: fmt.Sprintf("step_%d", i), StartLine: 1, EndLine: 10 * i, Complexity: i, Params: []string{"a", "b"}},
			},
		})
	}
	return outcomes
}

func TestCollect_EmptyInputFails(t *testing.T) {
	_, err := baseline.Collect(nil)
	assert.Error(t, err)
}

func TestCollect_SummarizesDistributions(t *testing.T) {
	profile, err := baseline.Collect(legacyOutcomes())
	require.NoError(t, err)

	assert.Equal(t, 10, profile.Files)
	assert.Equal(t, 10, profile.Functions)
	assert.Equal(t, []string{"python"}, profile.Languages)

	c := profile.Metrics.Complexity
	assert.Equal(t, 10, c.Count)
	assert.Equal(t, 1, c.Min)
	assert.Equal(t, 10, c.Max)
	assert.InDelta(t, 5.5, c.Mean, 0.001)
	assert.Equal(t, 5, c.P50)
	assert.Equal(t, 9, c.P90)
	assert.Equal(t, 10, c.P95)

	assert.Equal(t, 900, profile.Metrics.FileLines.P90)
}

func TestCollect_CountsClassesAndMethods(t *testing.T) {
	outcomes := []*domain.Outcome{{
		FilePath:   "svc.py",
		Language:   "python",
		TotalLines: 80,
		Nodes: []domain.Node{
			{Kind: domain.KindClass, Name: "Service", StartLine: 1, EndLine: 60},
			{Kind: domain.KindMethod, Name: "run", StartLine: 2, EndLine: 20, Complexity: 3, Params: []string{"self", "job"}},
			{Kind: domain.KindFunction, Name: "main", StartLine: 62, EndLine: 70, Complexity: 1},
		},
	}}

	profile, err := baseline.Collect(outcomes)
	require.NoError(t, err)

	assert.Equal(t, 1, profile.Classes)
	assert.Equal(t, 2, profile.Functions)
	// self is receiver-bound and not counted.
	assert.Equal(t, 1, profile.Metrics.Params.Max)
	assert.Equal(t, 1, profile.Metrics.ClassesPerFile.Max)
	assert.Equal(t, 1, profile.Metrics.FunctionsPerFile.Max, "methods stay out of the per-file function count")
}

func TestCollect_DetectsDominantNamingStyle(t *testing.T) {
	camelHeavy := []*domain.Outcome{{
		FilePath: "app.js",
		Language: "javascript",
		Nodes: []domain.Node{
			{Kind: domain.KindFunction, Name: "fetchRows"},
			{Kind: domain.KindFunction, Name: "renderPage"},
			{Kind: domain.KindFunction, Name: "saveUserProfile"},
			{Kind: domain.KindFunction, Name: "snake_holdout"},
		},
	}}

	profile, err := baseline.Collect(camelHeavy)
	require.NoError(t, err)
	assert.Equal(t, "camelCase", profile.FunctionStyle)
}

func TestCollect_TieFallsBackToSnakeCase(t *testing.T) {
	outcomes := []*domain.Outcome{{
		FilePath: "mixed.py",
		Language: "python",
		Nodes: []domain.Node{
			{Kind: domain.KindFunction, Name: "do_thing"},
			{Kind: domain.KindFunction, Name: "doThing"},
			{Kind: domain.KindMethod, Name: "__init__"},
		},
	}}

	profile, err := baseline.Collect(outcomes)
	require.NoError(t, err)
	assert.Equal(t, "snake_case", profile.FunctionStyle)
}

func TestSuggestConfig_LiftsThresholdsToP90(t *testing.T) {
	profile, err := baseline.Collect(legacyOutcomes())
	require.NoError(t, err)

	cfg := profile.SuggestConfig()
	assert.Equal(t, domain.StringList{"recommended"}, cfg.Extends)

	// Complexity p90 is 9, above the strict floor of 8.
	complexity := cfg.Rules["complexity/max-complexity"]
	assert.Equal(t, domain.SeverityWarn, complexity.Severity)
	assert.Equal(t, 9, complexity.Options["max"])

	// File-lines p90 is 900, well above the 300 floor.
	assert.Equal(t, 900, cfg.Rules["structure/max-file-lines"].Options["max"])

	// Params max observed is 2, so the strict floor of 4 wins.
	assert.Equal(t, 4, cfg.Rules["complexity/max-params"].Options["max"])

	assert.Equal(t, "snake_case", cfg.Rules["naming/function-naming"].Options["style"])
}

func TestSuggestConfig_ResolvesThroughEngineConfig(t *testing.T) {
	profile, err := baseline.Collect(legacyOutcomes())
	require.NoError(t, err)

	resolved, err := profile.SuggestConfig().ResolvedRules()
	require.NoError(t, err)

	// Suggested overrides replace the preset entries wholesale.
	assert.Equal(t, 9, resolved["complexity/max-complexity"].Options["max"])
	// Rules without an override keep their recommended settings.
	assert.Equal(t, domain.SeverityWarn, resolved["naming/class-naming"].Severity)
}