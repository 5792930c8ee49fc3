package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// registerResources registers all bricklint MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. bricklint://presets - the built-in rule presets
	s.AddResource(
		mcplib.NewResource(
			"bricklint://presets",
			"Rule Presets",
			mcplib.WithResourceDescription("The built-in presets and the rule settings each one applies"),
			mcplib.WithMIMEType("application/json"),
		),
		handlePresetsResource(),
	)

	// 2. bricklint://report - the latest recorded lint report
	s.AddResource(
		mcplib.NewResource(
			"bricklint://report",
			"Latest Report",
			mcplib.WithResourceDescription("The report recorded by the most recent lint run"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath),
	)
}

func handlePresetsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		presets := make(map[string]map[string]domain.Setting, len(domain.PresetNames()))
		for _, name := range domain.PresetNames() {
			preset, err := domain.Preset(name)
			if err != nil {
				return nil, fmt.Errorf("resolving preset %s: %w", name, err)
			}
			presets[name] = preset
		}

		data, err := json.MarshalIndent(presets, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling presets: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "bricklint://presets",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleReportResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := newLintService().LastReport(projectPath)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "bricklint://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
