package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. Durations accept time.ParseDuration syntax.
const (
	envAPIBase             = "RADAR_API_BASE"
	envOAuthBase           = "RADAR_OAUTH_BASE"
	envRequestTimeout      = "RADAR_REQUEST_TIMEOUT"
	envOnlineCheckInterval = "RADAR_ONLINE_CHECK_INTERVAL"
	envPageSize            = "RADAR_PAGE_SIZE"
	envLogLevel            = "RADAR_LOG_LEVEL"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first; a missing file is fine.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBase); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envOAuthBase); v != "" {
		cfg.OAuthBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envOnlineCheckInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
	if v := os.Getenv(envPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
