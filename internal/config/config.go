// Package config loads the handful of knobs that sit around the book
// engine: which ticker to stamp the book with, whether crossing orders
// may trade, how verbosely to log, and where to send rendered responses.
// The only thing spec.md §6 actually requires on the CLI is the input
// file path; everything here is optional, defaulted, and overridable —
// the same layering 0xtitan6-polymarket-mm's internal/config/config.go
// uses for its own bot configuration, built on the same library.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the book engine's tunables.
type Config struct {
	Ticker      string `mapstructure:"ticker"`
	TradeActive bool   `mapstructure:"trade_active"`
	LogLevel    string `mapstructure:"log_level"`
	Output      string `mapstructure:"output"`
}

// Load reads configuration from (in ascending priority) coded defaults, an
// optional bookengine.yaml found on viper's search path, and BOOKENGINE_*
// environment variables.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ticker", "IBM")
	v.SetDefault("trade_active", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "-")

	v.SetConfigName("bookengine")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BOOKENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
