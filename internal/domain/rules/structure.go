package rules

import (
	"fmt"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

const (
	defaultMaxFileLines        = 500
	defaultMaxClassesPerFile   = 5
	defaultMaxFunctionsPerFile = 20
)

var maxFileLinesDesc = Descriptor{
	ID:              "structure/max-file-lines",
	Name:            "Max File Lines",
	Description:     "Caps the total line count of a file",
	Category:        "structure",
	DefaultSeverity: domain.SeverityWarn,
	DefaultOptions:  map[string]any{"max": defaultMaxFileLines},
}

// NewMaxFileLines builds the structure/max-file-lines rule.
func NewMaxFileLines(severity domain.Severity, options map[string]any) (*Rule, error) {
	opts := thresholdOptions{Max: defaultMaxFileLines}
	if err := DecodeOptions(options, &opts); err != nil {
		return nil, fmt.Errorf("%s: %w", maxFileLinesDesc.ID, err)
	}
	return NewFileRule(maxFileLinesDesc, severity, options, func(r *Rule, out *domain.Outcome) []domain.Violation {
		if out.TotalLines <= opts.Max {
			return nil
		}
		return []domain.Violation{r.violation(out, domain.Violation{
			Message:    fmt.Sprintf("File has %d lines (max allowed %d)", out.TotalLines, opts.Max),
			StartLine:  1,
			EndLine:    out.TotalLines,
			Suggestion: "Consider splitting this file into smaller modules",
			Metadata:   map[string]any{"actual": out.TotalLines, "max": opts.Max},
		})}
	}), nil
}

var maxClassesPerFileDesc = Descriptor{
	ID:              "structure/max-classes-per-file",
	Name:            "Max Classes Per File",
	Description:     "Caps how many classes one file may declare",
	Category:        "structure",
	DefaultSeverity: domain.SeverityWarn,
	DefaultOptions:  map[string]any{"max": defaultMaxClassesPerFile},
}

// NewMaxClassesPerFile builds the structure/max-classes-per-file rule.
func NewMaxClassesPerFile(severity domain.Severity, options map[string]any) (*Rule, error) {
	opts := thresholdOptions{Max: defaultMaxClassesPerFile}
	if err := DecodeOptions(options, &opts); err != nil {
		return nil, fmt.Errorf("%s: %w", maxClassesPerFileDesc.ID, err)
	}
	return NewFileRule(maxClassesPerFileDesc, severity, options, func(r *Rule, out *domain.Outcome) []domain.Violation {
		classes := out.Classes()
		if len(classes) <= opts.Max {
			return nil
		}
		names := make([]string, 0, len(classes))
		for _, c := range classes {
			names = append(names, c.Name)
		}
		return []domain.Violation{r.violation(out, domain.Violation{
			Message:    fmt.Sprintf("File declares %d classes (max allowed %d)", len(classes), opts.Max),
			StartLine:  1,
			EndLine:    out.TotalLines,
			Suggestion: "Consider moving some classes into their own files",
			Metadata:   map[string]any{"actual": len(classes), "max": opts.Max, "classes": names},
		})}
	}), nil
}

var maxFunctionsPerFileDesc = Descriptor{
	ID:              "structure/max-functions-per-file",
	Name:            "Max Functions Per File",
	Description:     "Caps how many top-level functions one file may declare",
	Category:        "structure",
	DefaultSeverity: domain.SeverityWarn,
	DefaultOptions:  map[string]any{"max": defaultMaxFunctionsPerFile},
}

// NewMaxFunctionsPerFile builds the structure/max-functions-per-file rule.
// Methods belong to their class and are not counted.
func NewMaxFunctionsPerFile(severity domain.Severity, options map[string]any) (*Rule, error) {
	opts := thresholdOptions{Max: defaultMaxFunctionsPerFile}
	if err := DecodeOptions(options, &opts); err != nil {
		return nil, fmt.Errorf("%s: %w", maxFunctionsPerFileDesc.ID, err)
	}
	return NewFileRule(maxFunctionsPerFileDesc, severity, options, func(r *Rule, out *domain.Outcome) []domain.Violation {
		functions := out.Functions()
		if len(functions) <= opts.Max {
			return nil
		}
		names := make([]string, 0, len(functions))
		for _, f := range functions {
			names = append(names, f.Name)
		}
		return []domain.Violation{r.violation(out, domain.Violation{
			Message:    fmt.Sprintf("File declares %d functions (max allowed %d)", len(functions), opts.Max),
			StartLine:  1,
			EndLine:    out.TotalLines,
			Suggestion: "Consider grouping related functions into separate modules",
			Metadata:   map[string]any{"actual": len(functions), "max": opts.Max, "functions": names},
		})}
	}), nil
}
