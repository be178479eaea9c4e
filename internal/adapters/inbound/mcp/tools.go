package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qwickapps/tsfix/internal/adapters/outbound/config"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/detector"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/gitinfo"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/history"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/lint"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/scanner"
	"github.com/qwickapps/tsfix/internal/application"
)

// registerTools registers all tsfix MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. tsfix_rewrite
	s.AddTool(
		mcplib.NewTool("tsfix_rewrite",
			mcplib.WithDescription("Apply the rewrite rules to the project's source tree and return the run report"),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report what would change without writing files")),
			mcplib.WithString("rules", mcplib.Description("Comma-separated rule names to run instead of the configured set")),
			mcplib.WithString("experimental", mcplib.Description("Comma-separated experimental rule names to enable")),
		),
		handleRewrite(projectPath),
	)

	// 2. tsfix_lint_fix
	s.AddTool(
		mcplib.NewTool("tsfix_lint_fix",
			mcplib.WithDescription("Run the project's lint command, parse its errors, and fix the reported lines"),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report what would change without writing files")),
		),
		handleLintFix(projectPath),
	)

	// 3. tsfix_rules
	s.AddTool(
		mcplib.NewTool("tsfix_rules",
			mcplib.WithDescription("List the available rewrite rules with descriptions and experimental flags"),
		),
		handleRules(),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices() (*application.RewriteService, *application.LintFixService) {
	cfg := config.New()
	rewrite := application.NewRewriteService(
		scanner.New(), cfg, detector.New(), gitinfo.New(), history.New(),
	)
	lintFix := application.NewLintFixService(cfg, lint.NewRunner(), lint.NewParser())
	return rewrite, lintFix
}

func handleRewrite(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		dryRun, _ := args["dry_run"].(bool)

		opts := application.RewriteOptions{DryRun: dryRun}
		if rulesStr, ok := args["rules"].(string); ok && rulesStr != "" {
			opts.Rules = splitAndTrim(rulesStr)
		}
		if expStr, ok := args["experimental"].(string); ok && expStr != "" {
			opts.Experimental = splitAndTrim(expStr)
		}

		rewriteSvc, _ := newServices()
		report, err := rewriteSvc.Rewrite(projectPath, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("rewrite failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleLintFix(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dryRun, _ := request.GetArguments()["dry_run"].(bool)

		_, lintSvc := newServices()
		report, err := lintSvc.Run(ctx, projectPath, application.LintFixOptions{DryRun: dryRun})
		if err != nil {
			return errorResult(fmt.Sprintf("lint fix failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleRules() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		type ruleInfo struct {
			Name         string `json:"name"`
			Description  string `json:"description"`
			Experimental bool   `json:"experimental"`
		}
		var out []ruleInfo
		for _, r := range application.DescribeRules(true) {
			out = append(out, ruleInfo{
				Name:         r.Name(),
				Description:  r.Description,
				Experimental: r.Experimental,
			})
		}
		return jsonResult(out)
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
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
