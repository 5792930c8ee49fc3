package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/ollama"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/parser"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/tui"
	"github.com/koucxz/a-brick-code-analyzer/internal/application"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/review"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/rules"
)

func newReviewCmd() *cobra.Command {
	var (
		analysisType string
		model        string
		baseURL      string
		listModels   bool
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "review [file]",
		Short: "Analyze a file with a local language model",
		Long:  "Parse and lint a file, then send the findings to a local model runtime for a deeper review. Requires a running ollama server.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := ollama.New(ollama.Config{BaseURL: baseURL, Model: model})
			svc := application.NewReviewService(parser.New(), rules.DefaultRegistry(), client, slog.Default())

			if listModels {
				models, err := svc.Models(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					return renderJSON(cmd, models)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderModels(models))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("specify a file to review or use --list-models")
			}

			kind, err := review.ParseAnalysisType(analysisType)
			if err != nil {
				return err
			}

			analysis, err := svc.Analyze(cmd.Context(), args[0], kind)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, analysis)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAnalysis(args[0], analysis))
			return nil
		},
	}

	cmd.Flags().StringVar(&analysisType, "type", string(review.TypeCodeReview), "Analysis type (code_review, complexity, security, performance, refactor, explain, docstring)")
	cmd.Flags().StringVar(&model, "model", "", "Model to use (default: "+review.DefaultModel+")")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Model runtime base URL (default: http://localhost:11434)")
	cmd.Flags().BoolVar(&listModels, "list-models", false, "List installed models and exit")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
