package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/cache"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/config"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/gitinfo"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/history"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/parser"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/scanner"
	"github.com/koucxz/a-brick-code-analyzer/internal/application"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/rules"
)

// registerTools registers all bricklint MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. bricklint_lint_path
	s.AddTool(
		mcplib.NewTool("bricklint_lint_path",
			mcplib.WithDescription("Lint a file or directory and return the full report as JSON. Configuration is discovered from the project root."),
			mcplib.WithString("path",
				mcplib.Description("File or directory to lint, relative to the project root (default: the whole project)"),
			),
			mcplib.WithBoolean("recursive",
				mcplib.Description("Descend into subdirectories (default: true)"),
			),
		),
		handleLintPath(projectPath),
	)

	// 2. bricklint_lint_source
	s.AddTool(
		mcplib.NewTool("bricklint_lint_source",
			mcplib.WithDescription("Lint a source snippet with the default rule set and return violations as JSON"),
			mcplib.WithString("source",
				mcplib.Required(),
				mcplib.Description("Source code to lint"),
			),
			mcplib.WithString("language",
				mcplib.Required(),
				mcplib.Description("Language of the snippet (go, python, javascript, typescript)"),
			),
		),
		handleLintSource(),
	)

	// 3. bricklint_list_rules
	s.AddTool(
		mcplib.NewTool("bricklint_list_rules",
			mcplib.WithDescription("Returns the registered rules with the severity and options each resolves to under the project's configuration"),
		),
		handleListRules(projectPath),
	)

	// 4. bricklint_get_last_report
	s.AddTool(
		mcplib.NewTool("bricklint_get_last_report",
			mcplib.WithDescription("Returns the report recorded by the most recent lint run"),
		),
		handleGetLastReport(projectPath),
	)
}

// newLintService wires the standard set of outbound adapters.
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

func handleLintPath(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		target := projectPath
		args := request.GetArguments()
		if p, ok := args["path"].(string); ok && p != "" {
			if filepath.IsAbs(p) {
				target = p
			} else {
				target = filepath.Join(projectPath, p)
			}
		}
		recursive := true
		if r, ok := args["recursive"].(bool); ok {
			recursive = r
		}

		// Assistant-triggered runs stay out of the recorded history.
		run, err := newLintService().Run(ctx, []string{target}, application.LintOptions{
			Recursive:   recursive,
			SkipHistory: true,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}
		return jsonResult(run.Report)
	}
}

func handleLintSource() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		source, err := request.RequireString("source")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		language, err := request.RequireString("language")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result, err := newLintService().LintSource(source, language)
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleListRules(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		engine, err := rules.NewEngine(rules.DefaultRegistry())
		if err != nil {
			return errorResult(fmt.Sprintf("building engine: %v", err)), nil
		}
		cfg, _, err := config.New().Discover(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		if err := engine.ApplyConfig(cfg); err != nil {
			return errorResult(fmt.Sprintf("applying config: %v", err)), nil
		}

		type ruleListing struct {
			ID          string         `json:"id"`
			Description string         `json:"description"`
			Severity    string         `json:"severity"`
			Options     map[string]any `json:"options,omitempty"`
		}

		var listings []ruleListing
		for _, desc := range engine.Descriptors() {
			listing := ruleListing{ID: desc.ID, Description: desc.Description, Severity: "off"}
			if rule, ok := engine.Rule(desc.ID); ok {
				listing.Severity = rule.Severity().String()
				listing.Options = rule.Options()
			}
			listings = append(listings, listing)
		}
		return jsonResult(listings)
	}
}

func handleGetLastReport(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newLintService().LastReport(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
