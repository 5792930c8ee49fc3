package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

const (
	styleSnake  = "snake_case"
	styleCamel  = "camelCase"
	stylePascal = "PascalCase"
)

var namingPatterns = map[string]*regexp.Regexp{
	styleSnake:  regexp.MustCompile(`^[a-z_][a-z0-9_]*$`),
	styleCamel:  regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`),
	stylePascal: regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`),
}

// dunderName matches reserved double-underscore names like __init__.
var dunderName = regexp.MustCompile(`^__.*__$`)

// KnownNamingStyles lists the styles the naming rules understand.
func KnownNamingStyles() []string {
	return []string{styleSnake, styleCamel, stylePascal}
}

// ValidNamingStyle reports whether the naming rules recognize style. An
// unrecognized style is legal at lint time (the rule simply matches nothing)
// but config validation flags it.
func ValidNamingStyle(style string) bool {
	_, ok := namingPatterns[style]
	return ok
}

type styleOptions struct {
	Style string `mapstructure:"style"`
}

var functionNamingDesc = Descriptor{
	ID:              "naming/function-naming",
	Name:            "Function Naming",
	Description:     "Enforces a naming style for functions and methods",
	Category:        "naming",
	DefaultSeverity: domain.SeverityWarn,
	DefaultOptions:  map[string]any{"style": styleSnake},
	NodeKinds:       []domain.NodeKind{domain.KindFunction, domain.KindMethod},
}

// NewFunctionNaming builds the naming/function-naming rule. Reserved dunder
// names are exempt regardless of style.
func NewFunctionNaming(severity domain.Severity, options map[string]any) (*Rule, error) {
	opts := styleOptions{Style: styleSnake}
	if err := DecodeOptions(options, &opts); err != nil {
		return nil, fmt.Errorf("%s: %w", functionNamingDesc.ID, err)
	}
	return NewNodeRule(functionNamingDesc, severity, options, func(r *Rule, out *domain.Outcome, node domain.Node) []domain.Violation {
		pattern, ok := namingPatterns[opts.Style]
		if !ok || dunderName.MatchString(node.Name) || pattern.MatchString(node.Name) {
			return nil
		}
		return []domain.Violation{r.violation(out, domain.Violation{
			Message:    fmt.Sprintf("Function '%s' does not match %s naming style", node.Name, opts.Style),
			StartLine:  node.StartLine,
			EndLine:    node.StartLine,
			NodeName:   node.Name,
			NodeKind:   node.Kind,
			Suggestion: renameSuggestion(node.Name, opts.Style),
			Metadata:   map[string]any{"style": opts.Style, "pattern": pattern.String()},
		})}
	}), nil
}

var classNamingDesc = Descriptor{
	ID:              "naming/class-naming",
	Name:            "Class Naming",
	Description:     "Enforces a naming style for classes",
	Category:        "naming",
	DefaultSeverity: domain.SeverityWarn,
	DefaultOptions:  map[string]any{"style": stylePascal},
	NodeKinds:       []domain.NodeKind{domain.KindClass},
}

// NewClassNaming builds the naming/class-naming rule.
func NewClassNaming(severity domain.Severity, options map[string]any) (*Rule, error) {
	opts := styleOptions{Style: stylePascal}
	if err := DecodeOptions(options, &opts); err != nil {
		return nil, fmt.Errorf("%s: %w", classNamingDesc.ID, err)
	}
	return NewNodeRule(classNamingDesc, severity, options, func(r *Rule, out *domain.Outcome, node domain.Node) []domain.Violation {
		pattern, ok := namingPatterns[opts.Style]
		if !ok || pattern.MatchString(node.Name) {
			return nil
		}
		return []domain.Violation{r.violation(out, domain.Violation{
			Message:    fmt.Sprintf("Class '%s' does not match %s naming style", node.Name, opts.Style),
			StartLine:  node.StartLine,
			EndLine:    node.StartLine,
			NodeName:   node.Name,
			NodeKind:   node.Kind,
			Suggestion: renameSuggestion(node.Name, opts.Style),
			Metadata:   map[string]any{"style": opts.Style, "pattern": pattern.String()},
		})}
	}), nil
}

// renameSuggestion proposes a concrete rename in the target style.
func renameSuggestion(name, style string) string {
	converted := convertStyle(name, style)
	if converted == "" || converted == name {
		return fmt.Sprintf("Rename '%s' to match %s", name, style)
	}
	return fmt.Sprintf("Consider renaming '%s' to '%s'", name, converted)
}

// convertStyle rewrites an identifier into the target style by splitting it
// into words on case boundaries and underscores.
func convertStyle(name, style string) string {
	var words []string
	for _, chunk := range camelcase.Split(name) {
		for _, w := range strings.Split(chunk, "_") {
			if w != "" {
				words = append(words, strings.ToLower(w))
			}
		}
	}
	if len(words) == 0 {
		return ""
	}
	switch style {
	case styleSnake:
		return strings.Join(words, "_")
	case styleCamel:
		out := words[0]
		for _, w := range words[1:] {
			out += capitalize(w)
		}
		return out
	case stylePascal:
		var out string
		for _, w := range words {
			out += capitalize(w)
		}
		return out
	}
	return ""
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
