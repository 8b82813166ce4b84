package mcp

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"
)

// HTTPHandler returns a stateless streamable-HTTP MCP handler, mounted by the
// API server at /mcp.
func HTTPHandler(comparer Comparer, suggester Suggester) http.Handler {
	return server.NewStreamableHTTPServer(NewServer(comparer, suggester), server.WithStateLess(true))
}
