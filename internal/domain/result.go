package domain

import "encoding/json"

// LintResult collects the violations for a single file. The counters always
// equal the exact tally of contained violations by severity.
type LintResult struct {
	FilePath     string      `json:"file_path"`
	Violations   []Violation `json:"violations"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	ParseErrors  []string    `json:"parse_errors,omitempty"`
}

func NewLintResult(filePath string) *LintResult {
	return &LintResult{FilePath: filePath, Violations: []Violation{}}
}

// Add appends a violation and updates the severity counters.
func (r *LintResult) Add(v Violation) {
	r.Violations = append(r.Violations, v)
	switch v.Severity {
	case SeverityError:
		r.ErrorCount++
	case SeverityWarn:
		r.WarningCount++
	}
}

func (r *LintResult) HasErrors() bool   { return r.ErrorCount > 0 }
func (r *LintResult) HasWarnings() bool { return r.WarningCount > 0 }

// HasIssues reports whether the file produced any violations or parse errors.
func (r *LintResult) HasIssues() bool {
	return len(r.Violations) > 0 || len(r.ParseErrors) > 0
}

// LintReport is the ordered aggregation of per-file results across a run.
type LintReport struct {
	Results []*LintResult
}

func NewLintReport() *LintReport {
	return &LintReport{Results: []*LintResult{}}
}

func (p *LintReport) Add(r *LintResult) {
	p.Results = append(p.Results, r)
}

func (p *LintReport) TotalFiles() int { return len(p.Results) }

func (p *LintReport) TotalErrors() int {
	total := 0
	for _, r := range p.Results {
		total += r.ErrorCount
	}
	return total
}

func (p *LintReport) TotalWarnings() int {
	total := 0
	for _, r := range p.Results {
		total += r.WarningCount
	}
	return total
}

func (p *LintReport) TotalViolations() int {
	total := 0
	for _, r := range p.Results {
		total += len(r.Violations)
	}
	return total
}

func (p *LintReport) FilesWithIssues() int {
	count := 0
	for _, r := range p.Results {
		if r.HasIssues() {
			count++
		}
	}
	return count
}

func (p *LintReport) HasErrors() bool { return p.TotalErrors() > 0 }

// AllViolations flattens every file's violations in report order.
func (p *LintReport) AllViolations() []Violation {
	var all []Violation
	for _, r := range p.Results {
		all = append(all, r.Violations...)
	}
	return all
}

// ReportSummary is the derived aggregate block rendered alongside results.
type ReportSummary struct {
	TotalFiles      int `json:"total_files"`
	FilesWithIssues int `json:"files_with_issues"`
	TotalViolations int `json:"total_violations"`
	TotalErrors     int `json:"total_errors"`
	TotalWarnings   int `json:"total_warnings"`
}

func (p *LintReport) Summary() ReportSummary {
	return ReportSummary{
		TotalFiles:      p.TotalFiles(),
		FilesWithIssues: p.FilesWithIssues(),
		TotalViolations: p.TotalViolations(),
		TotalErrors:     p.TotalErrors(),
		TotalWarnings:   p.TotalWarnings(),
	}
}

// MarshalJSON emits {results, summary} so consumers get the aggregates
// without recomputing them.
func (p *LintReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Results []*LintResult `json:"results"`
		Summary ReportSummary `json:"summary"`
	}{Results: p.Results, Summary: p.Summary()})
}

func (p *LintReport) UnmarshalJSON(data []byte) error {
	var raw struct {
		Results []*LintResult `json:"results"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Results = raw.Results
	return nil
}
