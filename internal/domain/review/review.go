package review

import (
	"context"
	"fmt"
	"time"
)

// AnalysisType selects which review the model is asked to perform.
type AnalysisType string

const (
	TypeCodeReview  AnalysisType = "code_review"
	TypeComplexity  AnalysisType = "complexity"
	TypeSecurity    AnalysisType = "security"
	TypePerformance AnalysisType = "performance"
	TypeRefactor    AnalysisType = "refactor"
	TypeExplain     AnalysisType = "explain"
	TypeDocstring   AnalysisType = "docstring"
)

// AnalysisTypes returns every analysis type in presentation order.
func AnalysisTypes() []AnalysisType {
	return []AnalysisType{
		TypeCodeReview,
		TypeComplexity,
		TypeSecurity,
		TypePerformance,
		TypeRefactor,
		TypeExplain,
		TypeDocstring,
	}
}

// ParseAnalysisType validates a user-supplied analysis type name.
func ParseAnalysisType(s string) (AnalysisType, error) {
	for _, t := range AnalysisTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown analysis type %q (valid: code_review, complexity, security, performance, refactor, explain, docstring)", s)
}

// Describe returns a one-line description for listings.
func (t AnalysisType) Describe() string {
	switch t {
	case TypeCodeReview:
		return "Full review covering quality, style, and potential bugs"
	case TypeComplexity:
		return "Explains complexity hot spots and how to simplify them"
	case TypeSecurity:
		return "Looks for injection risks, leaked secrets, and unsafe input handling"
	case TypePerformance:
		return "Finds algorithmic and I/O bottlenecks with optimization suggestions"
	case TypeRefactor:
		return "Proposes concrete refactorings with before/after sketches"
	case TypeExplain:
		return "Walks through what the code does, aimed at newcomers"
	case TypeDocstring:
		return "Generates documentation comments for every function and class"
	}
	return ""
}

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Analysis is the model's answer plus generation accounting.
type Analysis struct {
	Content          string         `json:"content"`
	Model            string         `json:"model"`
	PromptTokens     int            `json:"prompt_tokens,omitempty"`
	CompletionTokens int            `json:"completion_tokens,omitempty"`
	TotalTokens      int            `json:"total_tokens,omitempty"`
	Duration         time.Duration  `json:"duration_ms,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// Client is the outbound port to a local model runtime.
type Client interface {
	// Generate runs a single-prompt completion.
	Generate(ctx context.Context, prompt string) (*Analysis, error)
	// Chat runs a multi-turn conversation.
	Chat(ctx context.Context, messages []Message) (*Analysis, error)
	// Models lists the models installed on the runtime.
	Models(ctx context.Context) ([]ModelInfo, error)
	// Pull downloads a model. This can take minutes on first use.
	Pull(ctx context.Context, model string) error
	// Available reports whether the runtime answers at all.
	Available(ctx context.Context) bool
	// Model returns the model the client currently targets.
	Model() string
	// SetModel switches the target model for subsequent calls.
	SetModel(model string)
}

// ModelInfo describes one model for selection listings.
type ModelInfo struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"`
	Size          string `json:"size,omitempty"`
	Description   string `json:"description,omitempty"`
	ContextLength int    `json:"context_length,omitempty"`
	// CodeTuned marks models trained specifically for code.
	CodeTuned bool `json:"code_tuned"`
}

const (
	ProviderOllama = "ollama"

	// DefaultModel is small enough to run on a laptop without a GPU.
	DefaultModel = "llama3.2:3b"
)

// RecommendedModels lists models that work well for code analysis, best
// first. The list is a starting point for `review --list-models`, not a
// constraint.
func RecommendedModels() []ModelInfo {
	return []ModelInfo{
		{
			Name:          "qwen3-coder",
			Provider:      ProviderOllama,
			Size:          "30B",
			Description:   "Qwen3 code specialist, strongest results, needs 24GB+ VRAM",
			ContextLength: 128000,
			CodeTuned:     true,
		},
		{
			Name:          "deepseek-r1",
			Provider:      ProviderOllama,
			Size:          "7.6B",
			Description:   "DeepSeek R1, strong reasoning at a modest size",
			ContextLength: 128000,
		},
		{
			Name:          "qwen3:8b",
			Provider:      ProviderOllama,
			Size:          "8B",
			Description:   "Qwen3 general model with chain-of-thought support",
			ContextLength: 128000,
		},
		{
			Name:          "deepseek-coder-v2:16b",
			Provider:      ProviderOllama,
			Size:          "16B",
			Description:   "DeepSeek Coder V2, code specialist",
			ContextLength: 128000,
			CodeTuned:     true,
		},
		{
			Name:          "codellama:7b",
			Provider:      ProviderOllama,
			Size:          "7B",
			Description:   "Meta CodeLlama, the classic code model",
			ContextLength: 16384,
			CodeTuned:     true,
		},
		{
			Name:          "llama3.2:3b",
			Provider:      ProviderOllama,
			Size:          "3B",
			Description:   "Meta Llama 3.2, light and fast, good first pick",
			ContextLength: 128000,
		},
	}
}
