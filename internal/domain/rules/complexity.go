package rules

import (
	"fmt"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

const (
	defaultMaxComplexity    = 10
	defaultMaxFunctionLines = 50
	defaultMaxParams        = 5
)

// thresholdOptions is the shared option shape for the numeric-cap rules.
type thresholdOptions struct {
	Max int `mapstructure:"max"`
}

var maxComplexityDesc = Descriptor{
	ID:              "complexity/max-complexity",
	Name:            "Max Complexity",
	Description:     "Caps the cyclomatic complexity of functions and methods",
	Category:        "complexity",
	DefaultSeverity: domain.SeverityWarn,
	DefaultOptions:  map[string]any{"max": defaultMaxComplexity},
	NodeKinds:       []domain.NodeKind{domain.KindFunction, domain.KindMethod},
}

// NewMaxComplexity builds the complexity/max-complexity rule.
func NewMaxComplexity(severity domain.Severity, options map[string]any) (*Rule, error) {
	opts := thresholdOptions{Max: defaultMaxComplexity}
	if err := DecodeOptions(options, &opts); err != nil {
		return nil, fmt.Errorf("%s: %w", maxComplexityDesc.ID, err)
	}
	return NewNodeRule(maxComplexityDesc, severity, options, func(r *Rule, out *domain.Outcome, node domain.Node) []domain.Violation {
		if node.Complexity <= opts.Max {
			return nil
		}
		return []domain.Violation{r.violation(out, domain.Violation{
			Message:    fmt.Sprintf("Function '%s' has cyclomatic complexity %d (max allowed %d)", node.Name, node.Complexity, opts.Max),
			StartLine:  node.StartLine,
			EndLine:    node.EndLine,
			NodeName:   node.Name,
			NodeKind:   node.Kind,
			Suggestion: fmt.Sprintf("Consider splitting '%s' into smaller functions", node.Name),
			Metadata:   map[string]any{"actual": node.Complexity, "max": opts.Max},
		})}
	}), nil
}

var maxFunctionLinesDesc = Descriptor{
	ID:              "complexity/max-function-lines",
	Name:            "Max Function Lines",
	Description:     "Caps the line length of functions and methods",
	Category:        "complexity",
	DefaultSeverity: domain.SeverityWarn,
	DefaultOptions:  map[string]any{"max": defaultMaxFunctionLines},
	NodeKinds:       []domain.NodeKind{domain.KindFunction, domain.KindMethod},
}

// NewMaxFunctionLines builds the complexity/max-function-lines rule.
func NewMaxFunctionLines(severity domain.Severity, options map[string]any) (*Rule, error) {
	opts := thresholdOptions{Max: defaultMaxFunctionLines}
	if err := DecodeOptions(options, &opts); err != nil {
		return nil, fmt.Errorf("%s: %w", maxFunctionLinesDesc.ID, err)
	}
	return NewNodeRule(maxFunctionLinesDesc, severity, options, func(r *Rule, out *domain.Outcome, node domain.Node) []domain.Violation {
		lines := node.Lines()
		if lines <= opts.Max {
			return nil
		}
		return []domain.Violation{r.violation(out, domain.Violation{
			Message:    fmt.Sprintf("Function '%s' has %d lines (max allowed %d)", node.Name, lines, opts.Max),
			StartLine:  node.StartLine,
			EndLine:    node.EndLine,
			NodeName:   node.Name,
			NodeKind:   node.Kind,
			Suggestion: fmt.Sprintf("Consider extracting parts of '%s' into helper functions", node.Name),
			Metadata:   map[string]any{"actual": lines, "max": opts.Max},
		})}
	}), nil
}

var maxParamsDesc = Descriptor{
	ID:              "complexity/max-params",
	Name:            "Max Parameters",
	Description:     "Caps the parameter count of functions and methods",
	Category:        "complexity",
	DefaultSeverity: domain.SeverityWarn,
	DefaultOptions:  map[string]any{"max": defaultMaxParams},
	NodeKinds:       []domain.NodeKind{domain.KindFunction, domain.KindMethod},
}

// NewMaxParams builds the complexity/max-params rule. Receiver-style
// parameters (self, cls) never count against the limit.
func NewMaxParams(severity domain.Severity, options map[string]any) (*Rule, error) {
	opts := thresholdOptions{Max: defaultMaxParams}
	if err := DecodeOptions(options, &opts); err != nil {
		return nil, fmt.Errorf("%s: %w", maxParamsDesc.ID, err)
	}
	return NewNodeRule(maxParamsDesc, severity, options, func(r *Rule, out *domain.Outcome, node domain.Node) []domain.Violation {
		params := countedParams(node.Params)
		if len(params) <= opts.Max {
			return nil
		}
		return []domain.Violation{r.violation(out, domain.Violation{
			Message:    fmt.Sprintf("Function '%s' has %d parameters (max allowed %d)", node.Name, len(params), opts.Max),
			StartLine:  node.StartLine,
			EndLine:    node.EndLine,
			NodeName:   node.Name,
			NodeKind:   node.Kind,
			Suggestion: fmt.Sprintf("Consider grouping the parameters of '%s' into a single options object", node.Name),
			Metadata:   map[string]any{"actual": len(params), "max": opts.Max, "params": params},
		})}
	}), nil
}

// countedParams drops the receiver names self and cls, which are bound by
// the runtime rather than the caller.
func countedParams(params []string) []string {
	counted := make([]string, 0, len(params))
	for _, p := range params {
		if p == "self" || p == "cls" {
			continue
		}
		counted = append(counted, p)
	}
	return counted
}
