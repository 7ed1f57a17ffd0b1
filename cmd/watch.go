package main

import (
	"context"
	"fmt"
	"time"

	"github.com/slimytm/slimctl/internal/formatter"
	"github.com/slimytm/slimctl/internal/shared"
	"github.com/urfave/cli/v3"
)

const defaultSnapshotWait = 2 * time.Second

// Players listens on the push stream briefly and prints what every player is
// doing. The daemon pushes each player's state when a client connects, so a
// short window is enough for a snapshot.
func (r *Runner) Players(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	wait := cmd.Duration("wait")
	if wait <= 0 {
		wait = defaultSnapshotWait
	}

	cfg := r.configFor(cmd)

	syncer, channel, err := r.newSyncer(cfg)
	if err != nil {
		return err
	}
	defer channel.Close()

	runCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	done := make(chan struct{})
	go func() {
		syncer.Run(runCtx)
		close(done)
	}()
	<-done

	if r.store.ConnectionFailed() && len(r.store.Players()) == 0 {
		return fmt.Errorf("%w: no state received", shared.ErrConnectionLost)
	}

	if useJSON {
		return r.writeJSON(r.store.Players(), true)
	}
	return r.writePlain("%s", formatter.PlayersToText(r.store.Players()))
}

// Watch follows the push stream and reprints player state on every change,
// until the stream drops or the command is interrupted.
func (r *Runner) Watch(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	cfg := r.configFor(cmd)

	syncer, channel, err := r.newSyncer(cfg)
	if err != nil {
		return err
	}
	defer channel.Close()

	done := make(chan struct{})
	go func() {
		syncer.Run(ctx)
		close(done)
	}()

	for {
		select {
		case <-done:
			if r.store.ConnectionFailed() {
				return fmt.Errorf("%w: push stream ended", shared.ErrConnectionLost)
			}
			return nil
		case <-syncer.Updates():
			if useJSON {
				if err := r.writeJSON(r.store.Players(), false); err != nil {
					return err
				}
				continue
			}
			if err := r.writePlain("%s", formatter.PlayersToText(r.store.Players())); err != nil {
				return err
			}
		}
	}
}
