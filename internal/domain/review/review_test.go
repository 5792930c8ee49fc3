package review_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/review"
)

func TestParseAnalysisType_AcceptsAllKnownTypes(t *testing.T) {
	for _, want := range review.AnalysisTypes() {
		got, err := review.ParseAnalysisType(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseAnalysisType_RejectsUnknown(t *testing.T) {
	_, err := review.ParseAnalysisType("vibes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vibes")
}

func TestRecommendedModels_DefaultIsListed(t *testing.T) {
	models := review.RecommendedModels()
	require.NotEmpty(t, models)

	found := false
	for _, m := range models {
		assert.Equal(t, review.ProviderOllama, m.Provider)
		if m.Name == review.DefaultModel {
			found = true
		}
	}
	assert.True(t, found, "default model should appear in the recommendations")
}

func TestBuildPrompt_RendersSectionsAndCode(t *testing.T) {
	prompt, err := review.BuildPrompt(review.TypeCodeReview, review.Context{
		Code:       "def f():\n    pass",
		FilePath:   "demo.py",
		Language:   "python",
		TotalLines: 2,
		CodeLines:  2,
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Path: demo.py")
	assert.Contains(t, prompt, "```python\ndef f():\n    pass\n```")
	assert.Contains(t, prompt, "## Lint findings\n(none)")
}

func TestBuildPrompt_EveryTypeHasTemplate(t *testing.T) {
	for _, at := range review.AnalysisTypes() {
		prompt, err := review.BuildPrompt(at, review.Context{Code: "x = 1", Language: "python"})
		require.NoError(t, err, string(at))
		assert.Contains(t, prompt, "x = 1", string(at))
	}
}

func TestBuildPrompt_UnknownTypeFails(t *testing.T) {
	_, err := review.BuildPrompt(review.AnalysisType("bogus"), review.Context{})
	assert.Error(t, err)
}

func sampleOutcome() *domain.Outcome {
	return &domain.Outcome{
		FilePath:   "svc.py",
		Language:   "python",
		TotalLines: 60,
		CodeLines:  45,
		Imports:    []string{"os", "json"},
		Nodes: []domain.Node{
			{Kind: domain.KindFunction, Name: "main", StartLine: 1, EndLine: 10, Complexity: 2, Params: []string{"argv"}},
			{Kind: domain.KindClass, Name: "Service", StartLine: 12, EndLine: 55},
			{Kind: domain.KindMethod, Name: "run", StartLine: 14, EndLine: 40, Complexity: 9},
			{Kind: domain.KindMethod, Name: "stop", StartLine: 42, EndLine: 50, Complexity: 7},
		},
	}
}

func TestStructureSummary_OutlinesNodes(t *testing.T) {
	summary := review.StructureSummary(sampleOutcome())

	assert.Contains(t, summary, "### Functions (1)")
	assert.Contains(t, summary, "- `main(argv)` [complexity: 2] (lines 1-10)")
	assert.Contains(t, summary, "### Classes (1)")
	assert.Contains(t, summary, "- `Service` (lines 12-55)")
	assert.Contains(t, summary, "### Methods (2)")
	assert.Contains(t, summary, "- `run` [complexity: 9]")
}

func TestStructureSummary_EmptyOutcome(t *testing.T) {
	out := &domain.Outcome{FilePath: "empty.py", Language: "python"}
	assert.Equal(t, "No structure information", review.StructureSummary(out))
}

func TestLintSummary_FormatsViolations(t *testing.T) {
	result := domain.NewLintResult("svc.py")
	result.Add(domain.Violation{
		RuleID: "complexity/max-complexity", Severity: domain.SeverityError,
		Message: "Function 'run' has cyclomatic complexity 9 (max allowed 8)", StartLine: 14,
	})
	result.Add(domain.Violation{
		RuleID: "naming/function-naming", Severity: domain.SeverityWarn,
		Message: "Function 'doIt' does not match snake_case naming style", StartLine: 3,
	})

	summary := review.LintSummary(result)
	lines := strings.Split(summary, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2 issues (errors: 1, warnings: 1)", lines[0])
	assert.Contains(t, lines[1], "[ERROR] line 14:")
	assert.Contains(t, lines[2], "(naming/function-naming)")
}

func TestLintSummary_NoViolations(t *testing.T) {
	assert.Equal(t, "No violations", review.LintSummary(domain.NewLintResult("clean.py")))
	assert.Equal(t, "No violations", review.LintSummary(nil))
}

func TestComplexitySummary_WorstFirst(t *testing.T) {
	summary := review.ComplexitySummary(sampleOutcome(), 5)

	lines := strings.Split(summary, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "- `run`: complexity 9 (lines 14-40)", lines[0])
	assert.Equal(t, "- `stop`: complexity 7 (lines 42-50)", lines[1])
}

func TestComplexitySummary_NothingAboveThreshold(t *testing.T) {
	assert.Equal(t, "No high-complexity functions", review.ComplexitySummary(sampleOutcome(), 20))
}

func TestContextFor_FillsEveryField(t *testing.T) {
	out := sampleOutcome()
	result := domain.NewLintResult(out.FilePath)

	pc := review.ContextFor("code here", out, result)
	assert.Equal(t, "code here", pc.Code)
	assert.Equal(t, "svc.py", pc.FilePath)
	assert.Equal(t, "python", pc.Language)
	assert.Equal(t, 60, pc.TotalLines)
	assert.Equal(t, "os, json", pc.Imports)
	assert.Contains(t, pc.ComplexitySummary, "`run`")
	assert.Equal(t, "No violations", pc.LintSummary)
}
