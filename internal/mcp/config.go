package mcp

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/quotedesk/yfinance-mcp/internal/config"
	"github.com/quotedesk/yfinance-mcp/internal/logging"
	"github.com/quotedesk/yfinance-mcp/internal/market"
	"github.com/quotedesk/yfinance-mcp/internal/mcp/tools"
	"github.com/quotedesk/yfinance-mcp/internal/yahoo"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.New(logging.ForLevel(config.LogLevel()))

	client := yahoo.NewClient(
		yahoo.WithBaseURL(config.YahooBaseURL()),
		yahoo.WithHTTPClient(&http.Client{Timeout: config.RequestTimeout()}),
		yahoo.WithLogger(baseLogger),
	)
	service := market.New(client, baseLogger)

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"get_current_date":        &tools.GetCurrentDateHandler{Service: service},
			"get_stock_price":         &tools.GetStockPriceHandler{Service: service},
			"get_stock_price_history": &tools.GetStockPriceHistoryHandler{Service: service},
			"get_stock_info":          &tools.GetStockInfoHandler{Service: service},
			"search_stocks":           &tools.SearchStocksHandler{Service: service},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(config.EndpointPath()),
			server.WithStateLess(true),
		},
	}
}
