package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// apiError is the error object Yahoo embeds in its response envelopes.
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

// History fetches daily bars for symbol over the given range (one of the
// Range constants; unknown values are passed through and rejected upstream).
// Bars whose OHLC values are all null are dropped, which is how Yahoo
// represents non-trading sessions. Dates are rendered in the exchange's
// local timezone, falling back to UTC.
func (c *Client) History(ctx context.Context, symbol, period string) ([]Bar, error) {
	params := url.Values{}
	params.Set("interval", "1d")
	params.Set("range", period)

	body, err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), params)
	if err != nil {
		return nil, err
	}

	var parsed chartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse chart response: %w", err)
	}
	if parsed.Chart.Error != nil {
		return nil, fmt.Errorf("chart request for %s: %w", symbol, parsed.Chart.Error)
	}
	if len(parsed.Chart.Result) == 0 {
		c.log.Debug("chart response carried no result", "symbol", symbol)
		return nil, nil
	}

	chart := parsed.Chart.Result[0]
	if len(chart.Indicators.Quote) == 0 {
		c.log.Debug("chart response carried no quote data", "symbol", symbol)
		return nil, nil
	}
	quote := chart.Indicators.Quote[0]

	loc := time.UTC
	if tz := chart.Meta.ExchangeTimezoneName; tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	var bars []Bar
	for i, ts := range chart.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			continue
		}
		// Null OHLC values decode as zeros; a bar of all zeros is a
		// non-trading session.
		if quote.Open[i] == 0 && quote.High[i] == 0 && quote.Low[i] == 0 && quote.Close[i] == 0 {
			continue
		}

		var volume int64
		if i < len(quote.Volume) {
			volume = quote.Volume[i]
		}

		bars = append(bars, Bar{
			Date:   time.Unix(ts, 0).In(loc),
			Open:   quote.Open[i],
			High:   quote.High[i],
			Low:    quote.Low[i],
			Close:  quote.Close[i],
			Volume: volume,
		})
	}

	c.log.Debug("fetched history", "symbol", symbol, "period", period, "bars", len(bars))

	return bars, nil
}
