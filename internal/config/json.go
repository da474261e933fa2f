package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/uppdragsradarn/radar-cli/internal/flagx"
)

// duration lets JSON specify intervals either as strings like "15s" or as
// integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		d.Duration = time.Duration(v)
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	}
	return json.Unmarshal(data, &d.Duration)
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling; values are
// copied onto the runtime Config afterwards so absent keys leave the
// previous layer untouched.
type jsonConfig struct {
	APIBaseURL          *string   `json:"api_base_url"`
	OAuthBaseURL        *string   `json:"oauth_base_url"`
	RequestTimeout      *duration `json:"request_timeout"`
	OnlineCheckInterval *duration `json:"online_check_interval"`
	PageSize            *int      `json:"page_size"`
	LogLevel            *string   `json:"log_level"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flag. No flag means no JSON layer. Read or parse failures panic:
// a config file that exists but cannot be used is a startup error.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.OAuthBaseURL != nil {
		cfg.OAuthBaseURL = *jc.OAuthBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.PageSize != nil && *jc.PageSize > 0 {
		cfg.PageSize = *jc.PageSize
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
