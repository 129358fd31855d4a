package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyYahooBaseURL, "https://query1.finance.yahoo.com")
	viper.SetDefault(KeyRequestTimeout, "30s")
	viper.SetDefault(KeyEndpointPath, "/mcp/jsonrpc")
}

func LogLevel() string              { return viper.GetString(KeyLogLevel) }
func YahooBaseURL() string          { return viper.GetString(KeyYahooBaseURL) }
func RequestTimeout() time.Duration { return viper.GetDuration(KeyRequestTimeout) }
func EndpointPath() string          { return viper.GetString(KeyEndpointPath) }
