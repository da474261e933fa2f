package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/uppdragsradarn/radar-cli/internal/cli"
	"github.com/uppdragsradarn/radar-cli/internal/config"
	"github.com/uppdragsradarn/radar-cli/internal/logging"
)

func main() {
	// Moderation listings default to the admin page size.
	cfg := config.LoadConfig(func(c *config.Config) {
		c.PageSize = 20
	})

	zl := zerolog.New(zerolog.NewConsoleWriter()).
		Level(logging.ParseLevel(cfg.LogLevel)).
		With().Timestamp().Logger()
	log := logging.NewZerologLogger(zl)

	app, err := cli.NewAdminApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "startup failed", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)
}
