package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/lukman83/pricewise/internal/compare"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type tools struct {
	comparer  Comparer
	suggester Suggester
}

func registerTools(s *server.MCPServer, t *tools) {
	// compare_prices
	compareTool := mcp.NewTool("compare_prices",
		mcp.WithDescription("Find the cheapest offers for a product across shopping providers, one per trusted seller, sorted by price"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Product search text, e.g. \"nike pegasus 41\""),
		),
	)
	s.AddTool(compareTool, t.handleComparePrices)

	// suggest_queries
	suggestTool := mcp.NewTool("suggest_queries",
		mcp.WithDescription("Autocomplete a partial product search"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Partial search text (at least 2 characters)"),
		),
	)
	s.AddTool(suggestTool, t.handleSuggestQueries)
}

func (t *tools) handleComparePrices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")

	products, err := t.comparer.Compare(ctx, query)
	if err != nil {
		if errors.Is(err, compare.ErrEmptyQuery) {
			return mcp.NewToolResultError("query is required"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("compare error: %v", err)), nil
	}

	data, _ := json.MarshalIndent(products, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}

func (t *tools) handleSuggestQueries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")

	suggestions, err := t.suggester.Suggest(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("suggest error: %v", err)), nil
	}

	data, _ := json.MarshalIndent(suggestions, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}
