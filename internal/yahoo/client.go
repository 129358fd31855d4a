package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quotedesk/yfinance-mcp/internal/logging"
)

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"

	// Yahoo rejects requests without a browser user agent.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

// Client talks to the public Yahoo Finance query API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// Option is a configuration option for the client.
type Option func(*Client)

// WithBaseURL overrides the query API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger attaches a logger to the client.
func WithLogger(log logging.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new Yahoo Finance client with a 30 second request
// timeout unless an HTTP client is supplied.
func NewClient(options ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, option := range options {
		option(c)
	}
	if c.log.Logr().GetSink() == nil {
		c.log = logging.New(logging.DefaultLogger())
	}
	c.log = c.log.WithName("yahoo")
	return c
}

// get performs a single GET against the query API and returns the body.
// There is no retry; a provider error surfaces immediately.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("non-ok response", "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("yahoo returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
