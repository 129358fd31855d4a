package yahoo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"
)

// quoteSummaryModules covers every field the adapter reads.
const quoteSummaryModules = "price,summaryProfile,summaryDetail"

// infoPaths maps yfinance-style info keys to their location in the
// quoteSummary result. Numeric fields point at the raw member of Yahoo's
// {raw, fmt} wrappers.
var infoPaths = map[string]string{
	"longName":            "price.longName",
	"exchange":            "price.exchange",
	"currency":            "price.currency",
	"marketCap":           "price.marketCap.raw",
	"sector":              "summaryProfile.sector",
	"industry":            "summaryProfile.industry",
	"longBusinessSummary": "summaryProfile.longBusinessSummary",
	"previousClose":       "summaryDetail.previousClose.raw",
	"open":                "summaryDetail.open.raw",
	"dayLow":              "summaryDetail.dayLow.raw",
	"dayHigh":             "summaryDetail.dayHigh.raw",
	"trailingPE":          "summaryDetail.trailingPE.raw",
	"forwardPE":           "summaryDetail.forwardPE.raw",
	"dividendYield":       "summaryDetail.dividendYield.raw",
}

// Info fetches the quoteSummary modules for symbol and flattens them into
// an Info map. JSON null and absent paths produce no entry. An empty map
// with a nil error means Yahoo had nothing for the symbol.
func (c *Client) Info(ctx context.Context, symbol string) (Info, error) {
	params := url.Values{}
	params.Set("modules", quoteSummaryModules)

	body, err := c.get(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), params)
	if err != nil {
		return nil, err
	}

	payload := string(body)
	if apiErr := gjson.Get(payload, "quoteSummary.error"); apiErr.Exists() && apiErr.Type != gjson.Null {
		return nil, fmt.Errorf("quoteSummary request for %s: %s: %s",
			symbol, apiErr.Get("code").Str, apiErr.Get("description").Str)
	}

	result := gjson.Get(payload, "quoteSummary.result.0")
	if !result.Exists() || result.Type == gjson.Null {
		c.log.Debug("quoteSummary response carried no result", "symbol", symbol)
		return nil, nil
	}

	info := make(Info)
	for key, path := range infoPaths {
		value := result.Get(path)
		switch value.Type {
		case gjson.String:
			info[key] = value.Str
		case gjson.Number:
			info[key] = value.Num
		}
	}

	c.log.Debug("fetched quote summary", "symbol", symbol, "fields", len(info))

	return info, nil
}
