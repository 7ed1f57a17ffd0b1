package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/slimytm/slimctl/internal/models"
	"github.com/slimytm/slimctl/internal/protocol"
	"github.com/slimytm/slimctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// PlayerPlay starts a playlist on the target player, optionally at a specific
// track and optionally shuffled.
func (r *Runner) PlayerPlay(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.String("playlist")
	trackNum := cmd.Int("track")
	shuffle := cmd.Bool("shuffle")

	cfg := r.configFor(cmd)
	player := r.targetPlayer(cfg, cmd)

	var song *models.Track
	if trackNum > 0 {
		detail, err := r.catalog.GetPlaylist(ctx, playlistID, cfg.Client.PageLimit)
		if err != nil {
			return fmt.Errorf("%w: %v", shared.ErrPlaylistNotFound, err)
		}
		if trackNum > len(detail.Tracks) {
			return fmt.Errorf("%w: track %d of %d", shared.ErrInvalidFlag, trackNum, len(detail.Tracks))
		}
		song = &detail.Tracks[trackNum-1]
	}

	r.logger.Info("sending play command", "player", player, "playlist", playlistID, "shuffle", shuffle)

	if err := r.sendIntent(ctx, cfg, protocol.IntentPlay, player, protocol.PlayPlaylist(playlistID, song, shuffle)); err != nil {
		return err
	}
	return r.writePlain("✓ Playing %s on player %d\n", playlistID, player)
}

// PlayerPause toggles pause/resume on the target player.
func (r *Runner) PlayerPause(ctx context.Context, cmd *cli.Command) error {
	cfg := r.configFor(cmd)
	player := r.targetPlayer(cfg, cmd)

	if err := r.sendIntent(ctx, cfg, protocol.IntentPause, player, nil); err != nil {
		return err
	}
	return r.writePlain("✓ Toggled pause on player %d\n", player)
}

// PlayerNext skips to the next track on the target player.
func (r *Runner) PlayerNext(ctx context.Context, cmd *cli.Command) error {
	cfg := r.configFor(cmd)
	player := r.targetPlayer(cfg, cmd)

	if err := r.sendIntent(ctx, cfg, protocol.IntentNext, player, nil); err != nil {
		return err
	}
	return r.writePlain("✓ Skipped to next track on player %d\n", player)
}

// PlayerPrevious returns to the previous track on the target player.
func (r *Runner) PlayerPrevious(ctx context.Context, cmd *cli.Command) error {
	cfg := r.configFor(cmd)
	player := r.targetPlayer(cfg, cmd)

	if err := r.sendIntent(ctx, cfg, protocol.IntentPrevious, player, nil); err != nil {
		return err
	}
	return r.writePlain("✓ Returned to previous track on player %d\n", player)
}

// PlayerVolume sets the target player's absolute volume.
func (r *Runner) PlayerVolume(ctx context.Context, cmd *cli.Command) error {
	raw := cmd.StringArg("level")
	if raw == "" {
		return fmt.Errorf("%w: volume level", shared.ErrMissingArgument)
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: volume level must be a number, got %q", shared.ErrInvalidInput, raw)
	}

	cfg := r.configFor(cmd)
	player := r.targetPlayer(cfg, cmd)

	if err := r.sendIntent(ctx, cfg, protocol.IntentVolume, player, level); err != nil {
		return err
	}
	return r.writePlain("✓ Set player %d volume to %d\n", player, shared.Clamp(level, 0, 100))
}
