package tools

import (
	"context"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/quotedesk/yfinance-mcp/internal/mcp/tools/types"
)

type fakeMarket struct {
	date       types.DateTimeInfo
	dateErr    error
	price      types.PricePoint
	priceErr   error
	history    []types.HistoryPoint
	historyErr error
	info       types.StockInfo
	infoErr    error
	hits       []types.SearchHit
	searchErr  error

	gotTimezone string
	gotSymbol   string
	gotPeriod   string
	gotQuery    string
}

func (f *fakeMarket) CurrentDate(timezone string) (types.DateTimeInfo, error) {
	f.gotTimezone = timezone
	return f.date, f.dateErr
}

func (f *fakeMarket) Price(_ context.Context, symbol string) (types.PricePoint, error) {
	f.gotSymbol = symbol
	return f.price, f.priceErr
}

func (f *fakeMarket) History(_ context.Context, symbol, period string) ([]types.HistoryPoint, error) {
	f.gotSymbol = symbol
	f.gotPeriod = period
	return f.history, f.historyErr
}

func (f *fakeMarket) Info(_ context.Context, symbol string) (types.StockInfo, error) {
	f.gotSymbol = symbol
	return f.info, f.infoErr
}

func (f *fakeMarket) Search(_ context.Context, query string) ([]types.SearchHit, error) {
	f.gotQuery = query
	return f.hits, f.searchErr
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.Truef(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestGetCurrentDateHandler(t *testing.T) {
	fake := &fakeMarket{date: types.DateTimeInfo{
		FullDatetime: "2024-03-15 19:30:45 KST",
		DateISO:      "2024-03-15",
		Timezone:     "Asia/Seoul",
	}}
	handler := &GetCurrentDateHandler{Service: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest(map[string]any{"timezone": "Asia/Seoul"}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, "Asia/Seoul", fake.gotTimezone)

	text := textOf(t, result)
	require.Contains(t, text, `"full_datetime":"2024-03-15 19:30:45 KST"`)
	require.Contains(t, text, `"day_of_week_kr"`)
}

func TestGetCurrentDateHandlerNoTimezone(t *testing.T) {
	fake := &fakeMarket{}
	handler := &GetCurrentDateHandler{Service: fake}

	// Absent argument reaches the service as an empty string; the service
	// owns the default.
	_, err := handler.ToolAdapter(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.Equal(t, "", fake.gotTimezone)
}

func TestGetCurrentDateHandlerError(t *testing.T) {
	fake := &fakeMarket{dateErr: fmt.Errorf(`resolve timezone "Mars/Olympus": unknown time zone`)}
	handler := &GetCurrentDateHandler{Service: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest(map[string]any{"timezone": "Mars/Olympus"}))
	require.NoError(t, err)
	require.JSONEq(t, `{"error": "resolve timezone \"Mars/Olympus\": unknown time zone"}`, textOf(t, result))
}

func TestGetStockPriceHandler(t *testing.T) {
	fake := &fakeMarket{price: types.PricePoint{
		Symbol: "AAPL",
		Date:   "2024-01-04",
		Open:   182.15,
		High:   183.09,
		Low:    180.88,
		Close:  181.91,
		Volume: 71983600,
	}}
	handler := &GetStockPriceHandler{Service: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest(map[string]any{"symbol": "AAPL"}))
	require.NoError(t, err)
	require.Equal(t, "AAPL", fake.gotSymbol)
	require.JSONEq(t, `{
		"symbol": "AAPL",
		"date": "2024-01-04",
		"open": 182.15,
		"high": 183.09,
		"low": 180.88,
		"close": 181.91,
		"volume": 71983600
	}`, textOf(t, result))
}

func TestGetStockPriceHandlerMissingSymbol(t *testing.T) {
	handler := &GetStockPriceHandler{Service: &fakeMarket{}}

	result, err := handler.ToolAdapter(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, textOf(t, result), "symbol")
}

func TestGetStockPriceHandlerServiceError(t *testing.T) {
	fake := &fakeMarket{priceErr: fmt.Errorf(`no stock data found for symbol "DELISTED"`)}
	handler := &GetStockPriceHandler{Service: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest(map[string]any{"symbol": "DELISTED"}))
	require.NoError(t, err)
	require.False(t, result.IsError, "provider failures are payload errors, not protocol errors")
	require.JSONEq(t, `{"error": "no stock data found for symbol \"DELISTED\""}`, textOf(t, result))
}

func TestGetStockPriceHistoryHandler(t *testing.T) {
	fake := &fakeMarket{history: []types.HistoryPoint{
		{Date: "2024-01-03", Open: 184.22, High: 185.88, Low: 183.43, Close: 184.26, Volume: 58414500},
		{Date: "2024-01-04", Open: 182.15, High: 183.09, Low: 180.88, Close: 181.91, Volume: 71983600},
	}}
	handler := &GetStockPriceHistoryHandler{Service: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest(map[string]any{"symbol": "AAPL", "period": "5d"}))
	require.NoError(t, err)
	require.Equal(t, "AAPL", fake.gotSymbol)
	require.Equal(t, "5d", fake.gotPeriod)

	text := textOf(t, result)
	require.Contains(t, text, `"date":"2024-01-03"`)
	require.Contains(t, text, `"date":"2024-01-04"`)
	require.NotContains(t, text, `"symbol"`, "history points carry no symbol field")
}

func TestGetStockPriceHistoryHandlerError(t *testing.T) {
	fake := &fakeMarket{historyErr: fmt.Errorf(`no stock data found for symbol "DELISTED"`)}
	handler := &GetStockPriceHistoryHandler{Service: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest(map[string]any{"symbol": "DELISTED"}))
	require.NoError(t, err)
	require.JSONEq(t, `[{"error": "no stock data found for symbol \"DELISTED\""}]`, textOf(t, result))
}

func TestGetStockInfoHandler(t *testing.T) {
	fake := &fakeMarket{info: types.StockInfo{
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		Sector:        "Technology",
		Industry:      "Consumer Electronics",
		MarketCap:     2994899640320.0,
		PreviousClose: 184.25,
		Open:          182.15,
		DayLow:        180.88,
		DayHigh:       183.09,
		TrailingPE:    29.71,
		ForwardPE:     "N/A",
		DividendYield: "N/A",
		Description:   "Apple designs consumer electronics....",
	}}
	handler := &GetStockInfoHandler{Service: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest(map[string]any{"symbol": "AAPL"}))
	require.NoError(t, err)

	text := textOf(t, result)
	require.Contains(t, text, `"marketCap":2994899640320`)
	require.Contains(t, text, `"forwardPE":"N/A"`)
	require.Contains(t, text, `"dividendYield":"N/A"`)
	require.Contains(t, text, `"description":"Apple designs consumer electronics...."`)
}

func TestGetStockInfoHandlerMissingSymbol(t *testing.T) {
	handler := &GetStockInfoHandler{Service: &fakeMarket{}}

	result, err := handler.ToolAdapter(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestSearchStocksHandler(t *testing.T) {
	fake := &fakeMarket{hits: []types.SearchHit{
		{Symbol: "AAPL", Name: "Apple Inc.", Exchange: "NMS", Currency: "USD"},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Exchange: "NMS", Currency: "USD"},
	}}
	handler := &SearchStocksHandler{Service: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest(map[string]any{"query": "AAPL MSFT"}))
	require.NoError(t, err)
	require.Equal(t, "AAPL MSFT", fake.gotQuery)
	require.JSONEq(t, `[
		{"symbol": "AAPL", "name": "Apple Inc.", "exchange": "NMS", "currency": "USD"},
		{"symbol": "MSFT", "name": "Microsoft Corporation", "exchange": "NMS", "currency": "USD"}
	]`, textOf(t, result))
}

func TestSearchStocksHandlerZeroHits(t *testing.T) {
	fake := &fakeMarket{}
	handler := &SearchStocksHandler{Service: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest(map[string]any{"query": "zzz"}))
	require.NoError(t, err)
	require.JSONEq(t, `[{"message": "no results found for \"zzz\""}]`, textOf(t, result))
}

func TestSearchStocksHandlerMissingQuery(t *testing.T) {
	handler := &SearchStocksHandler{Service: &fakeMarket{}}

	result, err := handler.ToolAdapter(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, textOf(t, result), "query")
}

func TestSearchStocksHandlerError(t *testing.T) {
	fake := &fakeMarket{searchErr: fmt.Errorf(`search for "AAPL MSFT": context canceled`)}
	handler := &SearchStocksHandler{Service: fake}

	result, err := handler.ToolAdapter(context.Background(), callRequest(map[string]any{"query": "AAPL MSFT"}))
	require.NoError(t, err)
	require.JSONEq(t, `[{"error": "search for \"AAPL MSFT\": context canceled"}]`, textOf(t, result))
}
