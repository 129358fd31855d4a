package config

const (
	KeyLogLevel       = "log_level"
	KeyYahooBaseURL   = "yahoo_base_url"
	KeyRequestTimeout = "request_timeout"
	KeyEndpointPath   = "mcp_endpoint_path"
)
