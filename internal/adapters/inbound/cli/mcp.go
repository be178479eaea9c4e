package cli

import (
	mcpadapter "github.com/qwickapps/tsfix/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the tsfix MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start tsfix MCP server (stdio)",
		Long:  "Start the tsfix MCP server using stdio transport. This lets AI coding assistants run the rewriter, trigger lint-driven fixes, and inspect the rule set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			s := mcpadapter.NewTsfixMCPServer(projectPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
