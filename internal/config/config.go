package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ServerConfig holds HTTP listener details.
type ServerConfig struct {
	Port        int `envconfig:"PORT" default:"5000"`
	MetricsPort int `envconfig:"METRICS_PORT" default:"9100"`
}

// RainbetConfig holds the Rainbet affiliates API credentials and endpoint.
// The key is always supplied from the environment, never hardcoded.
type RainbetConfig struct {
	APIKey  string `envconfig:"RAINBET_API_KEY" required:"true"`
	BaseURL string `envconfig:"RAINBET_BASE_URL"`
}

// Raw365Config holds the Raw365 leaderboard API credentials and endpoint.
type Raw365Config struct {
	APIKey  string `envconfig:"RAW365_API_KEY" required:"true"`
	BaseURL string `envconfig:"RAW365_BASE_URL"`
}

// Config is the full service configuration.
type Config struct {
	Server  ServerConfig
	Rainbet RainbetConfig
	Raw365  Raw365Config
}

// Load fills the configuration from environment variables. API keys are
// checked explicitly: envconfig's required tag only rejects unset variables,
// not ones set to an empty string.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if cfg.Rainbet.APIKey == "" {
		return cfg, errors.New("RAINBET_API_KEY is required")
	}
	if cfg.Raw365.APIKey == "" {
		return cfg, errors.New("RAW365_API_KEY is required")
	}
	return cfg, nil
}
