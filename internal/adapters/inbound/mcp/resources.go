package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qwickapps/tsfix/internal/adapters/outbound/config"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/history"
)

// registerResources registers all tsfix MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. tsfix://config - effective configuration
	s.AddResource(
		mcplib.NewResource(
			"tsfix://config",
			"Effective Config",
			mcplib.WithResourceDescription("The merged configuration (defaults plus .tsfix.yaml) the next run would use"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	// 2. tsfix://history - past runs
	s.AddResource(
		mcplib.NewResource(
			"tsfix://history",
			"Run History",
			mcplib.WithResourceDescription("Summaries of past fix runs for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath),
	)
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "tsfix://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "tsfix://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
