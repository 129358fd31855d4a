package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quotedesk/yfinance-mcp/internal/mcp/tools/types"
)

type DateService interface {
	CurrentDate(timezone string) (types.DateTimeInfo, error)
}

type GetCurrentDateHandler struct {
	Service DateService
}

func (h *GetCurrentDateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	timezone, _ := args["timezone"].(string)

	info, err := h.Service.CurrentDate(timezone)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(string(mustMarshal(info))), nil
}
