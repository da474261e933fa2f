// Package config holds runtime settings for the radar CLIs.
//
// Values are resolved in layers, later layers winning:
//
//  1. built-in defaults
//  2. environment variables (a .env file is honoured, see env.go)
//  3. JSON config file given via -c/-config
//  4. command-line flags
package config

import (
	"strings"
	"time"
)

// Config holds runtime settings shared by both CLIs.
//
// APIBaseURL points at the REST API including the /api prefix.
// OAuthBaseURL is the server root used for the browser OAuth hand-off;
// when empty it is derived from APIBaseURL by stripping a trailing /api.
type Config struct {
	APIBaseURL          string
	OAuthBaseURL        string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	PageSize            int
	LogLevel            string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.OAuthBaseURL = ""
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.PageSize = 12
	c.LogLevel = "info"
}

// LoadConfig constructs a Config: defaults, then optional overrides from the
// calling binary (applied before any external source), then the env, JSON and
// flag overlays in precedence order.
func LoadConfig(overrides ...func(*Config)) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	for _, o := range overrides {
		o(cfg)
	}
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)

	if cfg.OAuthBaseURL == "" {
		cfg.OAuthBaseURL = strings.TrimSuffix(cfg.APIBaseURL, "/api")
	}
	return cfg
}
