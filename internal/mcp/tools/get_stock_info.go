package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quotedesk/yfinance-mcp/internal/mcp/tools/types"
)

type ProfileService interface {
	Info(ctx context.Context, symbol string) (types.StockInfo, error)
}

type GetStockInfoHandler struct {
	Service ProfileService
}

func (h *GetStockInfoHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	symbol, _ := args["symbol"].(string)
	if symbol == "" {
		return mcp.NewToolResultError("symbol parameter is required"), nil
	}

	info, err := h.Service.Info(ctx, symbol)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(string(mustMarshal(info))), nil
}
