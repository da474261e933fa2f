package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"radar"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigDerivesOAuthBase(t *testing.T) {
	withArgs(t)
	t.Setenv(envAPIBase, "https://api.example.com/api")

	cfg := LoadConfig()

	assert.Equal(t, "https://api.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "https://api.example.com", cfg.OAuthBaseURL)
}

func TestParseEnvOverlay(t *testing.T) {
	t.Setenv(envAPIBase, "https://env.example.com/api")
	t.Setenv(envRequestTimeout, "30s")
	t.Setenv(envPageSize, "25")
	t.Setenv(envLogLevel, "debug")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://env.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv(envRequestTimeout, "soon")
	t.Setenv(envPageSize, "-3")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 12, cfg.PageSize)
}

func TestParseJSONOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "radar.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://json.example.com/api",
		"request_timeout": "45s",
		"online_check_interval": 5000000000,
		"page_size": 30
	}`), 0o600))

	withArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJSON(&cfg)

	assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, 30, cfg.PageSize)
	// keys absent from the file keep the previous layer's value
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFlagsOverlay(t *testing.T) {
	withArgs(t, "-a", "https://flag.example.com/api", "-i", "10", "-s", "7", "-l", "warn")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "https://flag.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, 7, cfg.PageSize)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestFlagsWinOverEnv(t *testing.T) {
	t.Setenv(envAPIBase, "https://env.example.com/api")
	withArgs(t, "-a", "https://flag.example.com/api")

	cfg := LoadConfig()

	assert.Equal(t, "https://flag.example.com/api", cfg.APIBaseURL)
}
