package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quotedesk/yfinance-mcp/internal/mcp/tools/types"
)

type SearchService interface {
	Search(ctx context.Context, query string) ([]types.SearchHit, error)
}

type SearchStocksHandler struct {
	Service SearchService
}

func (h *SearchStocksHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	if query == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	hits, err := h.Service.Search(ctx, query)
	if err != nil {
		return errorListResult(err), nil
	}
	if len(hits) == 0 {
		noResults := []types.MessagePayload{{Message: fmt.Sprintf("no results found for %q", query)}}
		return mcp.NewToolResultText(string(mustMarshal(noResults))), nil
	}
	return mcp.NewToolResultText(string(mustMarshal(hits))), nil
}
