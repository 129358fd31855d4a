package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quotedesk/yfinance-mcp/internal/mcp/tools/types"
)

// errorResult renders a service failure as the bare {"error": ...} payload.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultText(string(mustMarshal(types.ErrorPayload{Error: err.Error()})))
}

// errorListResult renders a service failure as a one-element error list,
// the shape used by the tools that normally return sequences.
func errorListResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultText(string(mustMarshal([]types.ErrorPayload{{Error: err.Error()}})))
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
