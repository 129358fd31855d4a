package types

// StockInfo fields typed any hold either the upstream number or the "N/A"
// sentinel string, never null.
type StockInfo struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Sector        string `json:"sector"`
	Industry      string `json:"industry"`
	MarketCap     any    `json:"marketCap"`
	PreviousClose any    `json:"previousClose"`
	Open          any    `json:"open"`
	DayLow        any    `json:"dayLow"`
	DayHigh       any    `json:"dayHigh"`
	TrailingPE    any    `json:"trailingPE"`
	ForwardPE     any    `json:"forwardPE"`
	DividendYield any    `json:"dividendYield"`
	Description   string `json:"description"`
}
