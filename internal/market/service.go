package market

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/quotedesk/yfinance-mcp/internal/logging"
	tooltypes "github.com/quotedesk/yfinance-mcp/internal/mcp/tools/types"
	"github.com/quotedesk/yfinance-mcp/internal/yahoo"
)

// Provider supplies market data for one symbol at a time.
type Provider interface {
	History(ctx context.Context, symbol, period string) ([]yahoo.Bar, error)
	Info(ctx context.Context, symbol string) (yahoo.Info, error)
}

const (
	// DefaultTimezone applies when the date operation gets no timezone.
	DefaultTimezone = "Asia/Seoul"
	// DefaultPeriod applies when the history operation gets no period.
	DefaultPeriod = yahoo.Range1mo

	notAvailable     = "N/A"
	descriptionLimit = 500
)

// weekdayKR maps English weekday names to Korean.
var weekdayKR = map[string]string{
	"Monday":    "월요일",
	"Tuesday":   "화요일",
	"Wednesday": "수요일",
	"Thursday":  "목요일",
	"Friday":    "금요일",
	"Saturday":  "토요일",
	"Sunday":    "일요일",
}

// Service implements the market data operations. Each call computes fresh
// state from the provider; nothing is shared or cached between calls.
type Service struct {
	provider Provider
	log      logging.Logger
	now      func() time.Time
}

func New(provider Provider, log logging.Logger) *Service {
	if log.Logr().GetSink() == nil {
		log = logging.New(logging.DefaultLogger())
	}
	return &Service{
		provider: provider,
		log:      log.WithName("market"),
		now:      time.Now,
	}
}

// CurrentDate resolves the current instant in the given timezone and
// decomposes it into the DateTimeInfo shape. Every field derives from the
// same instant.
func (s *Service) CurrentDate(timezone string) (tooltypes.DateTimeInfo, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return tooltypes.DateTimeInfo{}, fmt.Errorf("resolve timezone %q: %w", timezone, err)
	}

	now := s.now().In(loc)
	dayEN := now.Format("Monday")

	return tooltypes.DateTimeInfo{
		FullDatetime:  now.Format("2006-01-02 15:04:05 MST"),
		DateISO:       now.Format("2006-01-02"),
		TimeISO:       now.Format("15:04:05"),
		DateYMD:       now.Format("2006-01-02"),
		DayOfWeek:     dayEN,
		DayOfWeekKR:   localizeWeekday(dayEN),
		Timezone:      timezone,
		UnixTimestamp: now.Unix(),
		Year:          now.Year(),
		Month:         int(now.Month()),
		Day:           now.Day(),
		Hour:          now.Hour(),
		Minute:        now.Minute(),
		Second:        now.Second(),
	}, nil
}

// Price returns the most recent daily OHLCV for symbol, fetched as a one
// day history window and taking its last bar.
func (s *Service) Price(ctx context.Context, symbol string) (tooltypes.PricePoint, error) {
	bars, err := s.provider.History(ctx, symbol, yahoo.Range1d)
	if err != nil {
		return tooltypes.PricePoint{}, fmt.Errorf("fetch stock data for %q: %w", symbol, err)
	}
	if len(bars) == 0 {
		return tooltypes.PricePoint{}, fmt.Errorf("no stock data found for symbol %q", symbol)
	}

	latest := bars[len(bars)-1]
	return tooltypes.PricePoint{
		Symbol: symbol,
		Date:   latest.Date.Format("2006-01-02"),
		Open:   round2(latest.Open),
		High:   round2(latest.High),
		Low:    round2(latest.Low),
		Close:  round2(latest.Close),
		Volume: latest.Volume,
	}, nil
}

// History returns the daily series for symbol over period, in the order the
// provider delivered it.
func (s *Service) History(ctx context.Context, symbol, period string) ([]tooltypes.HistoryPoint, error) {
	if period == "" {
		period = DefaultPeriod
	}

	bars, err := s.provider.History(ctx, symbol, period)
	if err != nil {
		return nil, fmt.Errorf("fetch stock data for %q: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no stock data found for symbol %q", symbol)
	}

	points := make([]tooltypes.HistoryPoint, 0, len(bars))
	for _, bar := range bars {
		points = append(points, tooltypes.HistoryPoint{
			Date:   bar.Date.Format("2006-01-02"),
			Open:   round2(bar.Open),
			High:   round2(bar.High),
			Low:    round2(bar.Low),
			Close:  round2(bar.Close),
			Volume: bar.Volume,
		})
	}

	return points, nil
}

// Info returns descriptive and financial metadata for symbol. Individual
// fields the provider lacks come back as the "N/A" sentinel; only an
// entirely empty info map is an error.
func (s *Service) Info(ctx context.Context, symbol string) (tooltypes.StockInfo, error) {
	info, err := s.provider.Info(ctx, symbol)
	if err != nil {
		return tooltypes.StockInfo{}, fmt.Errorf("fetch stock info for %q: %w", symbol, err)
	}
	if len(info) == 0 {
		return tooltypes.StockInfo{}, fmt.Errorf("no information found for symbol %q", symbol)
	}

	return tooltypes.StockInfo{
		Symbol:        symbol,
		Name:          stringOrNA(info, "longName"),
		Sector:        stringOrNA(info, "sector"),
		Industry:      stringOrNA(info, "industry"),
		MarketCap:     numberOrNA(info, "marketCap"),
		PreviousClose: numberOrNA(info, "previousClose"),
		Open:          numberOrNA(info, "open"),
		DayLow:        numberOrNA(info, "dayLow"),
		DayHigh:       numberOrNA(info, "dayHigh"),
		TrailingPE:    numberOrNA(info, "trailingPE"),
		ForwardPE:     numberOrNA(info, "forwardPE"),
		DividendYield: numberOrNA(info, "dividendYield"),
		Description:   describeBusiness(info),
	}, nil
}

// Search treats each whitespace-separated token of query as a candidate
// symbol and keeps the ones the provider resolves to a named security.
// Unresolvable tokens are skipped silently; the batch aborts only when the
// context is done.
func (s *Service) Search(ctx context.Context, query string) ([]tooltypes.SearchHit, error) {
	var hits []tooltypes.SearchHit
	for _, symbol := range strings.Fields(query) {
		info, err := s.provider.Info(ctx, symbol)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("search for %q: %w", query, err)
			}
			s.log.Debug("skipping unresolvable token", "token", symbol, "err", err.Error())
			continue
		}

		name, ok := info.Str("longName")
		if !ok || name == "" {
			continue
		}

		hits = append(hits, tooltypes.SearchHit{
			Symbol:   symbol,
			Name:     name,
			Exchange: stringOrEmpty(info, "exchange"),
			Currency: stringOrEmpty(info, "currency"),
		})
	}

	return hits, nil
}

// localizeWeekday maps an English weekday name to Korean, returning the
// input unchanged when it has no mapping.
func localizeWeekday(day string) string {
	if kr, ok := weekdayKR[day]; ok {
		return kr
	}
	return day
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func stringOrNA(info yahoo.Info, key string) string {
	if v, ok := info.Str(key); ok {
		return v
	}
	return notAvailable
}

func stringOrEmpty(info yahoo.Info, key string) string {
	v, _ := info.Str(key)
	return v
}

func numberOrNA(info yahoo.Info, key string) any {
	if v, ok := info.Num(key); ok {
		return v
	}
	return notAvailable
}

// describeBusiness truncates the business summary to its first 500 runes.
// The ellipsis marker is appended even when nothing was cut; consumers of
// the tool expect the marker unconditionally.
func describeBusiness(info yahoo.Info) string {
	summary, ok := info.Str("longBusinessSummary")
	if !ok || summary == "" {
		return notAvailable
	}

	runes := []rune(summary)
	if len(runes) > descriptionLimit {
		runes = runes[:descriptionLimit]
	}
	return string(runes) + "..."
}
