package config

import (
	"flag"
	"os"
	"time"

	"github.com/uppdragsradarn/radar-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the REST API (including /api)
//	-o string   server root for the OAuth redirect
//	-i int      online check interval in seconds
//	-s int      page size for listings
//	-l string   log level (debug, info, warn, error)
//
// os.Args is filtered down to these flags with flagx.FilterArgs so the
// JSON-config flag handled elsewhere does not cause a parse error.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-o", "-i", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the REST API")
	fs.StringVar(&cfg.OAuthBaseURL, "o", cfg.OAuthBaseURL, "server root for OAuth redirects")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (seconds)")
	fs.IntVar(&cfg.PageSize, "s", cfg.PageSize, "page size for assignment listings")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
}
