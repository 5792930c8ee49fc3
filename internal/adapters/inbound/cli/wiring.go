package cli

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/cache"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/config"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/detector"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/gitinfo"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/history"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/parser"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/scanner"
	"github.com/koucxz/a-brick-code-analyzer/internal/application"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/rules"
)

// newLintService wires the lint use cases with the standard adapter set.
func newLintService() *application.LintService {
	return application.NewLintService(
		config.New(),
		scanner.New(),
		parser.New(),
		rules.DefaultRegistry(),
		history.New(),
		cache.New(),
		gitinfo.New(),
		slog.Default(),
	)
}

func newSetupService() *application.SetupService {
	return application.NewSetupService(
		config.New(),
		scanner.New(),
		parser.New(),
		detector.New(),
		rules.DefaultRegistry(),
		slog.Default(),
	)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
