// Package mcp exposes price comparison as Model Context Protocol tools.
package mcp

import (
	"context"

	"github.com/lukman83/pricewise/internal/models"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "pricewise"
	serverVersion = "1.0.0"
)

type Comparer interface {
	Compare(ctx context.Context, query string) ([]models.Product, error)
}

type Suggester interface {
	Suggest(ctx context.Context, partial string) ([]string, error)
}

// NewServer creates an MCP server with all tools registered.
func NewServer(comparer Comparer, suggester Suggester) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	registerTools(s, &tools{comparer: comparer, suggester: suggester})
	return s
}

// Serve starts the MCP stdio server.
func Serve(comparer Comparer, suggester Suggester) error {
	return server.ServeStdio(NewServer(comparer, suggester))
}
