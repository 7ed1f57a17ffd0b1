package main

import (
	"context"
	"fmt"
	"os"

	"github.com/slimytm/slimctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a starter configuration file and validates it.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		r.logger.Info("config file already exists", "path", configPath)
	} else {
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		r.logger.Info("config file created", "path", configPath)
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	r.writePlain("✓ Configuration ready at %s\n", configPath)
	r.writePlain("Catalog API: %s\n", config.Server.CatalogURL)
	r.writePlain("Push stream: %s\n", config.WSURL())
	r.writePlain("Command transport: %s\n", config.Commands.Variant)
	return nil
}
