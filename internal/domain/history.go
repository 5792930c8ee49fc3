package domain

// RunEntry is one recorded lint run in a project's history.
type RunEntry struct {
	Timestamp       string `json:"timestamp"`
	CommitHash      string `json:"commit_hash,omitempty"`
	TotalFiles      int    `json:"total_files"`
	TotalErrors     int    `json:"total_errors"`
	TotalWarnings   int    `json:"total_warnings"`
	TotalViolations int    `json:"total_violations"`
}

// ReportSnapshot is the persisted copy of the most recent report, served to
// consumers that want results without re-linting.
type ReportSnapshot struct {
	GeneratedAt string      `json:"generated_at"`
	CommitHash  string      `json:"commit_hash,omitempty"`
	Root        string      `json:"root"`
	Report      *LintReport `json:"report"`
}
