package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quotedesk/yfinance-mcp/internal/mcp/tools/types"
)

type HistoryService interface {
	History(ctx context.Context, symbol, period string) ([]types.HistoryPoint, error)
}

type GetStockPriceHistoryHandler struct {
	Service HistoryService
}

func (h *GetStockPriceHistoryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	symbol, _ := args["symbol"].(string)
	if symbol == "" {
		return mcp.NewToolResultError("symbol parameter is required"), nil
	}
	period, _ := args["period"].(string)

	points, err := h.Service.History(ctx, symbol, period)
	if err != nil {
		return errorListResult(err), nil
	}
	return mcp.NewToolResultText(string(mustMarshal(points))), nil
}
