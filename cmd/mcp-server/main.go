package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	// tzdata embeds the IANA zone database so timezone lookups work in
	// containers without one.
	_ "time/tzdata"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/quotedesk/yfinance-mcp/internal/config"
	"github.com/quotedesk/yfinance-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-server",
		Short: "Yahoo Finance MCP server",
		RunE:  run,
	}

	root.PersistentFlags().String("transport", "stdio", "Transport to serve on (stdio or http)")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	srv := mcp.New(mcp.DefaultConfig())

	transport, _ := cmd.Flags().GetString("transport")
	switch transport {
	case "stdio":
		return server.ServeStdio(srv.MCP)
	case "http":
	default:
		return fmt.Errorf("unknown transport %q (expected stdio or http)", transport)
	}

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	addr := host + ":" + strconv.Itoa(port)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("MCP server listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
