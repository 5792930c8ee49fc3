package domain

// Violation is one reported instance of a rule condition being met. The
// severity is stamped from the emitting rule instance at creation time and
// never recomputed.
type Violation struct {
	RuleID      string         `json:"rule_id"`
	Severity    Severity       `json:"severity"`
	Message     string         `json:"message"`
	FilePath    string         `json:"file_path"`
	StartLine   int            `json:"line_start"`
	EndLine     int            `json:"line_end"`
	StartColumn int            `json:"column_start,omitempty"`
	EndColumn   int            `json:"column_end,omitempty"`
	NodeName    string         `json:"node_name,omitempty"`
	NodeKind    NodeKind       `json:"node_kind,omitempty"`
	Suggestion  string         `json:"suggestion,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
