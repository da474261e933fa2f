package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/uppdragsradarn/radar-cli/internal/client"
	"github.com/uppdragsradarn/radar-cli/internal/config"
	"github.com/uppdragsradarn/radar-cli/internal/logging"
	"github.com/uppdragsradarn/radar-cli/internal/services"
)

// Mode reflects server reachability as observed by the background watcher.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App is the public browsing client.
type App struct {
	config    *config.Config
	log       logging.Logger
	api       client.Client
	session   services.SessionService
	directory services.DirectoryService
	interest  services.InterestService

	reader *bufio.Reader
	out    io.Writer

	mu          sync.Mutex
	mode        Mode
	lastKeyword string
}

// NewApp wires the CSRF cache, HTTP client, and services into a public app.
// Everything is constructed here and passed down; no package-level state.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	csrf := client.NewCSRFCache()
	api, err := client.NewHTTPClient(cfg.APIBaseURL, cfg.OAuthBaseURL, cfg.RequestTimeout, csrf, log)
	if err != nil {
		return nil, err
	}

	session := services.NewSessionService(api, log)
	directory := services.NewDirectoryService(api, log)
	interest := services.NewInterestService(api, session, log)

	return &App{
		config:    cfg,
		log:       log,
		api:       api,
		session:   session,
		directory: directory,
		interest:  interest,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		mode:      ModeOffline,
	}, nil
}

// Run checks the session, starts the connectivity watcher, and enters the
// REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	// Initial session check hydrates auth state and the CSRF token.
	if _, err := a.session.CheckSession(ctx); err != nil {
		a.log.Warn(ctx, "initial session check failed", "err", err)
	}

	go a.watchOnlineStatus(ctx, a.config.OnlineCheckInterval)

	a.repl(ctx)
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// watchOnlineStatus probes the server on a ticker and flips the prompt's
// online/offline indicator.
func (a *App) watchOnlineStatus(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.api.Ping(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) setLastKeyword(k string) {
	a.mu.Lock()
	a.lastKeyword = k
	a.mu.Unlock()
}

func (a *App) currentKeyword() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastKeyword
}
