package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/slimytm/slimctl/internal/models"
	"github.com/slimytm/slimctl/internal/protocol"
	"github.com/slimytm/slimctl/internal/services"
	"github.com/slimytm/slimctl/internal/shared"
	"github.com/slimytm/slimctl/internal/store"
	"github.com/slimytm/slimctl/internal/tasks"
	"github.com/slimytm/slimctl/internal/transport"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	catalog    services.Catalog
	store      *store.Store
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer

	// sender overrides the configured command transport when set; used by tests.
	sender protocol.Sender
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Catalog    services.Catalog
	Store      *store.Store
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
	Sender     protocol.Sender
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Store == nil {
		opts.Store = store.New()
	}
	if opts.Catalog == nil {
		opts.Catalog = services.NewCatalogService(opts.Config.Server.CatalogURL, opts.HTTPClient)
	}

	return &Runner{
		config:     opts.Config,
		catalog:    opts.Catalog,
		store:      opts.Store,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		sender:     opts.Sender,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, playlistsCommand, playlistCommand, playersCommand, playerCommand, watchCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// configFor returns the active configuration: the --config file when it
// exists, with the --transport flag overriding the command variant.
func (r *Runner) configFor(cmd *cli.Command) *shared.Config {
	config := r.config

	if path := cmd.String("config"); path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := shared.LoadConfig(path)
			switch {
			case err != nil:
				r.logger.Warn("failed to load config, using defaults", "path", path, "error", err)
			case loaded.Validate() != nil:
				r.logger.Warn("invalid config, using defaults", "path", path, "error", loaded.Validate())
			default:
				config = loaded
			}
		}
	}

	if variant := cmd.String("transport"); variant != "" && variant != config.Commands.Variant {
		override := *config
		override.Commands.Variant = variant
		config = &override
	}
	return config
}

// targetPlayer resolves the player a command is aimed at.
func (r *Runner) targetPlayer(cfg *shared.Config, cmd *cli.Command) models.PlayerID {
	if cmd.IsSet("player") {
		return models.PlayerID(cmd.Int("player"))
	}
	return models.PlayerID(cfg.Commands.DefaultPlayer)
}

// sendIntent encodes one command and delivers it over the configured
// transport. One-shot delivery: the channel, when one is needed, lives only
// for the duration of the call.
func (r *Runner) sendIntent(ctx context.Context, cfg *shared.Config, intent protocol.Intent, player models.PlayerID, payload any) error {
	env, err := protocol.Encode(intent, player, payload)
	if err != nil {
		return err
	}

	sender := r.sender
	if sender == nil {
		var channel transport.Channel
		if cfg.Commands.Variant == shared.CommandVariantWS {
			ws := transport.Dial(cfg.WSURL(), r.logger)
			defer ws.Close()
			channel = ws
		}
		if sender, err = protocol.NewSender(cfg, channel, r.httpClient); err != nil {
			return err
		}
	}

	return sender.Send(ctx, env)
}

// newSyncer builds the sync loop for long-lived commands (watch, tui). The
// returned channel is already dialed; callers own its lifetime.
func (r *Runner) newSyncer(cfg *shared.Config) (*tasks.Syncer, transport.Channel, error) {
	channel := transport.Dial(cfg.WSURL(), r.logger)

	sender := r.sender
	if sender == nil {
		var err error
		if sender, err = protocol.NewSender(cfg, channel, r.httpClient); err != nil {
			channel.Close()
			return nil, nil, err
		}
	}

	syncer := tasks.NewSyncer(tasks.SyncerOpts{
		Store:        r.store,
		Catalog:      r.catalog,
		Sender:       sender,
		Channel:      channel,
		Logger:       r.logger,
		PageLimit:    cfg.Client.PageLimit,
		VolumePerSec: cfg.Commands.VolumePerSec,
		VolumeBurst:  cfg.Commands.VolumeBurst,
	})
	return syncer, channel, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
