package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Timeout int    `yaml:"timeout_seconds"`
	} `yaml:"provider"`
	Defaults struct {
		LookbackDays int `yaml:"lookback_days"`
	} `yaml:"defaults"`
	Watchlist string `yaml:"watchlist"`
	Proxy     string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ASTOCK_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("ASTOCK_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("ASTOCK_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Provider.Timeout = n
		}
	}
	if v := os.Getenv("ASTOCK_WATCHLIST"); v != "" {
		cfg.Watchlist = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "http://localhost:8565"
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = 30
	}
	if cfg.Defaults.LookbackDays == 0 {
		cfg.Defaults.LookbackDays = 30
	}
	if cfg.Watchlist == "" {
		cfg.Watchlist = "stocks.txt"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider.timeout_seconds must be positive")
	}
	if c.Defaults.LookbackDays <= 0 {
		return fmt.Errorf("defaults.lookback_days must be positive")
	}
	return nil
}

// HTTPTimeout returns the provider timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Provider.Timeout) * time.Second
}
