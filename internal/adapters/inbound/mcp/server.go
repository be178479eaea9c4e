package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewTsfixMCPServer creates a new MCP server with all tsfix tools and
// resources registered. The projectPath is the root directory of the
// project to rewrite.
func NewTsfixMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"tsfix",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
