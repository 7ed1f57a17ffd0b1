package main

import (
	"context"
	"fmt"

	"github.com/slimytm/slimctl/internal/formatter"
	"github.com/slimytm/slimctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Playlists lists the library's playlists.
func (r *Runner) Playlists(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Info("fetching playlist listing")

	playlists, err := r.catalog.GetPlaylists(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(playlists, pretty)
	}
	return r.writePlain("%s", formatter.PlaylistsToText(playlists))
}

// Playlist shows one playlist with its tracks.
func (r *Runner) Playlist(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if id == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	cfg := r.configFor(cmd)
	limit := cfg.Client.PageLimit
	if cmd.IsSet("limit") {
		limit = cmd.Int("limit")
	}

	r.logger.Info("fetching playlist", "id", id, "limit", limit)

	detail, err := r.catalog.GetPlaylist(ctx, id, limit)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(detail, pretty)
	}
	return r.writePlain("%s", formatter.PlaylistDetailToText(*detail))
}
