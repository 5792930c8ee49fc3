package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/review"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/rules"
)

// ReviewService asks a local model to analyze a single file. Prompts are
// grounded in the parsed structure and the lint findings of the file, so the
// model sees what the rule engine already knows.
type ReviewService struct {
	parsers  domain.ParserResolver
	registry *rules.Registry
	client   review.Client
	logger   *slog.Logger
}

func NewReviewService(parsers domain.ParserResolver, registry *rules.Registry, client review.Client, logger *slog.Logger) *ReviewService {
	return &ReviewService{parsers: parsers, registry: registry, client: client, logger: logger}
}

// Analyze runs one analysis over the file at path. The file is parsed and
// linted with the recommended preset first, then the typed prompt template is
// rendered with that context and sent to the model. The target model is
// pulled when it is not installed yet.
func (s *ReviewService) Analyze(ctx context.Context, path string, analysisType review.AnalysisType) (*review.Analysis, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	parser, ok := s.parsers.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoParser, path)
	}
	outcome := parser.Parse(source, path)

	engine, err := rules.NewEngine(s.registry)
	if err != nil {
		return nil, err
	}
	if err := engine.UsePreset(domain.PresetRecommended); err != nil {
		return nil, err
	}
	result := engine.Lint(outcome)

	prompt, err := review.BuildPrompt(analysisType, review.ContextFor(string(source), outcome, result))
	if err != nil {
		return nil, err
	}

	if !s.client.Available(ctx) {
		return nil, fmt.Errorf("model runtime is not reachable, start it with `ollama serve`")
	}
	if err := s.ensureModel(ctx); err != nil {
		return nil, err
	}

	s.logger.Debug("requesting analysis",
		"path", path,
		"type", analysisType,
		"model", s.client.Model(),
		"prompt_chars", len(prompt))
	started := time.Now()
	analysis, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("running %s analysis: %w", analysisType, err)
	}
	s.logger.Debug("analysis finished", "model", analysis.Model, "elapsed", time.Since(started))
	return analysis, nil
}

// Models lists the models installed on the runtime.
func (s *ReviewService) Models(ctx context.Context) ([]review.ModelInfo, error) {
	if !s.client.Available(ctx) {
		return nil, fmt.Errorf("model runtime is not reachable, start it with `ollama serve`")
	}
	return s.client.Models(ctx)
}

// ensureModel pulls the target model when the runtime does not have it yet.
func (s *ReviewService) ensureModel(ctx context.Context) error {
	installed, err := s.client.Models(ctx)
	if err != nil {
		return err
	}
	target := s.client.Model()
	for _, model := range installed {
		if model.Name == target {
			return nil
		}
	}
	s.logger.Warn("model not installed, pulling it now, this can take minutes", "model", target)
	if err := s.client.Pull(ctx, target); err != nil {
		return fmt.Errorf("pulling model %s: %w", target, err)
	}
	return nil
}
