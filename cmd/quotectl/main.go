package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/quotedesk/yfinance-mcp/internal/config"
	"github.com/quotedesk/yfinance-mcp/internal/logging"
	"github.com/quotedesk/yfinance-mcp/internal/market"
	"github.com/quotedesk/yfinance-mcp/internal/yahoo"
)

func main() {
	root := &cobra.Command{
		Use:   "quotectl",
		Short: "Query the market data provider from the command line",
	}

	var timezone string
	dateCmd := &cobra.Command{
		Use:   "date",
		Short: "Print current date and time information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := newService().CurrentDate(timezone)
			if err != nil {
				return err
			}
			return output(info)
		},
	}
	dateCmd.Flags().StringVar(&timezone, "timezone", market.DefaultTimezone, "Timezone identifier")

	priceCmd := &cobra.Command{
		Use:   "price <symbol>",
		Short: "Print the latest daily price for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := newService().Price(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output(price)
		},
	}

	var period string
	historyCmd := &cobra.Command{
		Use:   "history <symbol>",
		Short: "Print daily prices for a symbol over a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := newService().History(cmd.Context(), args[0], period)
			if err != nil {
				return err
			}
			return output(points)
		},
	}
	historyCmd.Flags().StringVar(&period, "period", market.DefaultPeriod, "Period (1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max)")

	infoCmd := &cobra.Command{
		Use:   "info <symbol>",
		Short: "Print company information for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := newService().Info(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output(info)
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search stock symbols by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hits, err := newService().Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(hits) == 0 {
				fmt.Println("no results")
				return nil
			}
			return output(hits)
		},
	}

	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Verify provider connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Yahoo Finance Connection Status:")
			fmt.Println("================================")
			fmt.Printf("📍 Endpoint: %s\n\n", config.YahooBaseURL())

			start := time.Now()
			if _, err := newService().Price(cmd.Context(), "AAPL"); err != nil {
				fmt.Printf("❌ Provider request failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("✅ Provider reachable (%s)\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	root.AddCommand(dateCmd, priceCmd, historyCmd, infoCmd, searchCmd, pingCmd)

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("quotectl: %v", err)
	}
}

func newService() *market.Service {
	logger := logging.New(logging.ForLevel(config.LogLevel()))
	client := yahoo.NewClient(
		yahoo.WithBaseURL(config.YahooBaseURL()),
		yahoo.WithHTTPClient(&http.Client{Timeout: config.RequestTimeout()}),
		yahoo.WithLogger(logger),
	)
	return market.New(client, logger)
}

func output(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
