package yahoo

import "time"

// Range values accepted by the chart endpoint.
const (
	Range1d  = "1d"
	Range5d  = "5d"
	Range1mo = "1mo"
	Range3mo = "3mo"
	Range6mo = "6mo"
	Range1y  = "1y"
	Range2y  = "2y"
	Range5y  = "5y"
	Range10y = "10y"
	RangeYtd = "ytd"
	RangeMax = "max"
)

// Bar is one daily OHLCV sample. Date carries the exchange-local calendar
// day of the trading session.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Info holds flattened quoteSummary fields for one symbol, keyed the way
// Yahoo names them (longName, marketCap, trailingPE, ...). Values are
// strings or float64 numbers; absent upstream fields have no entry.
type Info map[string]any

// Str returns the string stored under key.
func (i Info) Str(key string) (string, bool) {
	v, ok := i[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Num returns the numeric value stored under key.
func (i Info) Num(key string) (float64, bool) {
	v, ok := i[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}
