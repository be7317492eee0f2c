// Package config loads CLI configuration from the environment and produces
// the injected client configuration. The core client never reads ambient
// state itself; everything it needs is resolved here, once, at startup.
package config

import (
	"fmt"
	"time"

	"github.com/fingrid-tools/opendata-client/pkg/client"
	"github.com/fingrid-tools/opendata-client/pkg/logging"
	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	APIKey       string
	BaseURL      string
	PageSize     int
	RequestDelay time.Duration
	LogLevel     string
	LogPretty    bool
}

// envBindings maps viper keys to the environment variables that feed them.
// The API key accepts the same alternate names the Fingrid developer portal
// examples use; the first set variable wins.
var envBindings = map[string][]string{
	"api_key":       {"FINGRID_API_KEY", "FINGRID_OPENDATA_API_KEY", "API_KEY"},
	"base_url":      {"FINGRID_BASE_URL"},
	"page_size":     {"FINGRID_PAGE_SIZE"},
	"request_delay": {"FINGRID_REQUEST_DELAY"},
	"log_level":     {"FINGRID_LOG_LEVEL"},
	"log_pretty":    {"FINGRID_LOG_PRETTY"},
}

// Load resolves configuration from environment variables with defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	cfg := &Config{
		APIKey:       v.GetString("api_key"),
		BaseURL:      v.GetString("base_url"),
		PageSize:     v.GetInt("page_size"),
		RequestDelay: v.GetDuration("request_delay"),
		LogLevel:     v.GetString("log_level"),
		LogPretty:    v.GetBool("log_pretty"),
	}

	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("page_size must be positive (got %d)", cfg.PageSize)
	}
	if cfg.RequestDelay < 0 {
		return nil, fmt.Errorf("request_delay must not be negative (got %s)", cfg.RequestDelay)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", client.DefaultBaseURL)
	v.SetDefault("page_size", 10000)
	v.SetDefault("request_delay", "6500ms")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", false)
}

// ClientConfig builds the injected client configuration.
func (c *Config) ClientConfig() client.Config {
	cfg := client.DefaultConfig(c.APIKey)
	cfg.BaseURL = c.BaseURL
	cfg.PageSize = c.PageSize
	cfg.RequestDelay = c.RequestDelay
	return cfg
}

// LoggingConfig builds the logger configuration.
func (c *Config) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LogLevel(c.LogLevel)
	cfg.Pretty = c.LogPretty
	return cfg
}
