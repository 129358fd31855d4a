package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quotedesk/yfinance-mcp/internal/mcp/tools/types"
)

type PriceService interface {
	Price(ctx context.Context, symbol string) (types.PricePoint, error)
}

type GetStockPriceHandler struct {
	Service PriceService
}

func (h *GetStockPriceHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	symbol, _ := args["symbol"].(string)
	if symbol == "" {
		return mcp.NewToolResultError("symbol parameter is required"), nil
	}

	price, err := h.Service.Price(ctx, symbol)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(string(mustMarshal(price))), nil
}
