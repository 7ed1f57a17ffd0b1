package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/slimytm/slimctl/internal/services"
	"github.com/slimytm/slimctl/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.WithLogger(shared.NewLogger(nil), "session", shared.GenerateID())

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Catalog: services.NewCatalogService(config.Server.CatalogURL, http.DefaultClient),
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "slimctl",
		Usage:    "Browse the music library and control squeezebox players",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}
