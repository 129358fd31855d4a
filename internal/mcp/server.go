package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"yfinance-mcp-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"get_current_date": mcp.NewTool("get_current_date",
			mcp.WithDescription("Returns the current date and time in multiple formats for a given timezone, including ISO date/time, weekday names (English and Korean), and a Unix timestamp."),
			mcp.WithString("timezone",
				mcp.Description("Timezone identifier (e.g. Asia/Seoul, America/New_York, Europe/London)"),
				mcp.DefaultString("Asia/Seoul"),
			),
		),
		"get_stock_price": mcp.NewTool("get_stock_price",
			mcp.WithDescription("Fetches the latest daily price for a stock symbol. Returns the trading date with open, high, low, close (rounded to 2 decimals) and volume."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock symbol (e.g. AAPL, MSFT)"),
			),
		),
		"get_stock_price_history": mcp.NewTool("get_stock_price_history",
			mcp.WithDescription("Fetches daily prices for a stock symbol over the given period. Returns one entry per trading session with OHLC values and volume."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock symbol (e.g. AAPL, MSFT)"),
			),
			mcp.WithString("period",
				mcp.Description("Period (1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max)"),
				mcp.DefaultString("1mo"),
			),
		),
		"get_stock_info": mcp.NewTool("get_stock_info",
			mcp.WithDescription("Retrieves company information for a stock symbol: name, sector, industry, market cap, valuation ratios, dividend yield, and a truncated business summary."),
			mcp.WithString("symbol",
				mcp.Required(),
				mcp.Description("Stock symbol (e.g. AAPL, MSFT)"),
			),
		),
		"search_stocks": mcp.NewTool("search_stocks",
			mcp.WithDescription("Searches stock symbols by keyword. Each whitespace-separated token of the query is resolved as a candidate symbol; unresolvable tokens are skipped."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search keywords (company symbols, whitespace separated)"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}
