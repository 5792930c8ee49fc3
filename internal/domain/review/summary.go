package review

import (
	"fmt"
	"sort"
	"strings"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// HighComplexityThreshold is where a function becomes worth calling out in
// prompt context.
const HighComplexityThreshold = 5

// ContextFor assembles the full prompt context from a parsed outcome and its
// lint result.
func ContextFor(code string, out *domain.Outcome, result *domain.LintResult) Context {
	return Context{
		Code:              code,
		FilePath:          out.FilePath,
		Language:          out.Language,
		TotalLines:        out.TotalLines,
		CodeLines:         out.CodeLines,
		StructureSummary:  StructureSummary(out),
		LintSummary:       LintSummary(result),
		ComplexitySummary: ComplexitySummary(out, HighComplexityThreshold),
		Imports:           strings.Join(out.Imports, ", "),
	}
}

// StructureSummary renders a short outline of the parsed nodes: functions
// with signatures and complexity, then classes, then methods.
func StructureSummary(out *domain.Outcome) string {
	var lines []string

	if functions := out.Functions(); len(functions) > 0 {
		lines = append(lines, fmt.Sprintf("### Functions (%d)", len(functions)))
		for _, fn := range functions {
			lines = append(lines, fmt.Sprintf("- `%s(%s)`%s (lines %d-%d)",
				fn.Name, strings.Join(fn.Params, ", "), complexityTag(fn), fn.StartLine, fn.EndLine))
		}
	}

	if classes := out.Classes(); len(classes) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("### Classes (%d)", len(classes)))
		for _, cls := range classes {
			lines = append(lines, fmt.Sprintf("- `%s` (lines %d-%d)", cls.Name, cls.StartLine, cls.EndLine))
		}
	}

	if methods := out.Methods(); len(methods) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("### Methods (%d)", len(methods)))
		for _, m := range methods {
			lines = append(lines, fmt.Sprintf("- `%s`%s", m.Name, complexityTag(m)))
		}
	}

	if len(lines) == 0 {
		return "No structure information"
	}
	return strings.Join(lines, "\n")
}

func complexityTag(n domain.Node) string {
	if n.Complexity <= 0 {
		return ""
	}
	return fmt.Sprintf(" [complexity: %d]", n.Complexity)
}

// LintSummary renders lint findings as a count header plus one line per
// violation.
func LintSummary(result *domain.LintResult) string {
	if result == nil || len(result.Violations) == 0 {
		return "No violations"
	}

	lines := []string{fmt.Sprintf("%d issues (errors: %d, warnings: %d)",
		len(result.Violations), result.ErrorCount, result.WarningCount)}
	for _, v := range result.Violations {
		lines = append(lines, fmt.Sprintf("- [%s] line %d: %s (%s)",
			strings.ToUpper(v.Severity.String()), v.StartLine, v.Message, v.RuleID))
	}
	return strings.Join(lines, "\n")
}

// ComplexitySummary lists functions and methods above the threshold, worst
// first.
func ComplexitySummary(out *domain.Outcome, threshold int) string {
	var hot []domain.Node
	for _, node := range out.Nodes {
		if node.Kind != domain.KindFunction && node.Kind != domain.KindMethod {
			continue
		}
		if node.Complexity > threshold {
			hot = append(hot, node)
		}
	}

	if len(hot) == 0 {
		return "No high-complexity functions"
	}

	sort.SliceStable(hot, func(i, j int) bool { return hot[i].Complexity > hot[j].Complexity })

	lines := make([]string, 0, len(hot))
	for _, node := range hot {
		lines = append(lines, fmt.Sprintf("- `%s`: complexity %d (lines %d-%d)",
			node.Name, node.Complexity, node.StartLine, node.EndLine))
	}
	return strings.Join(lines, "\n")
}
