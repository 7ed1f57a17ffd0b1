package tasks

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/slimytm/slimctl/internal/models"
	"github.com/slimytm/slimctl/internal/protocol"
	"github.com/slimytm/slimctl/internal/services"
	"github.com/slimytm/slimctl/internal/shared"
	"github.com/slimytm/slimctl/internal/store"
	"github.com/slimytm/slimctl/internal/transport"
)

// Syncer reconciles the three traffic sources that feed the store: one-shot
// catalog fetches, unsolicited state pushes, and user intents. Catalog
// responses are fenced with a monotonic token per target slot so a slow fetch
// that resolves after a newer one is discarded instead of overwriting it.
type Syncer struct {
	store   *store.Store
	catalog services.Catalog
	sender  protocol.Sender
	channel transport.Channel
	logger  *log.Logger

	pageLimit int
	volume    *rate.Limiter

	playlistsSeq atomic.Uint64
	currentSeq   atomic.Uint64

	updates chan struct{}
}

// SyncerOpts contains dependencies and tuning for creating a Syncer.
type SyncerOpts struct {
	Store     *store.Store
	Catalog   services.Catalog
	Sender    protocol.Sender
	Channel   transport.Channel
	Logger    *log.Logger
	PageLimit int
	// VolumePerSec and VolumeBurst bound how fast volume commands leave the
	// client; a dragged slider fires far faster than the daemon needs.
	VolumePerSec float64
	VolumeBurst  int
}

// NewSyncer creates a Syncer with the provided dependencies.
func NewSyncer(opts SyncerOpts) *Syncer {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.PageLimit <= 0 {
		opts.PageLimit = 30
	}
	if opts.VolumePerSec <= 0 {
		opts.VolumePerSec = 4
	}
	if opts.VolumeBurst <= 0 {
		opts.VolumeBurst = 2
	}

	return &Syncer{
		store:     opts.Store,
		catalog:   opts.Catalog,
		sender:    opts.Sender,
		channel:   opts.Channel,
		logger:    opts.Logger,
		pageLimit: opts.PageLimit,
		volume:    rate.NewLimiter(rate.Limit(opts.VolumePerSec), opts.VolumeBurst),
		updates:   make(chan struct{}, 1),
	}
}

// Updates signals that the store changed because of an inbound event.
// Signals are coalesced; consumers re-read selectors on each pulse.
func (s *Syncer) Updates() <-chan struct{} {
	return s.updates
}

func (s *Syncer) pulse() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}

// RefreshPlaylists fetches the library listing and replaces the store's copy.
// On failure the prior listing stays in place.
func (s *Syncer) RefreshPlaylists(ctx context.Context) {
	token := s.playlistsSeq.Add(1)

	playlists, err := s.catalog.GetPlaylists(ctx)
	if err != nil {
		s.logger.Error("playlist listing fetch failed", "err", err)
		return
	}
	if s.playlistsSeq.Load() != token {
		s.logger.Debug("discarding playlist listing", "reason", shared.ErrStaleResponse)
		return
	}

	s.store.SetPlaylists(playlists)
	s.pulse()
}

// OpenPlaylist installs the loading placeholder, then fetches the playlist
// detail. The placeholder lands before any suspension point, so readers never
// observe an absent current playlist. A response that resolves after a newer
// OpenPlaylist call is discarded; on failure the placeholder stays.
func (s *Syncer) OpenPlaylist(ctx context.Context, id string) {
	token := s.currentSeq.Add(1)
	s.store.SetCurrentPlaylist(models.LoadingPlaylist())

	detail, err := s.catalog.GetPlaylist(ctx, id, s.pageLimit)
	if err != nil {
		s.logger.Error("playlist fetch failed", "id", id, "err", err)
		return
	}
	if s.currentSeq.Load() != token {
		s.logger.Debug("discarding playlist detail", "id", id, "reason", shared.ErrStaleResponse)
		return
	}

	s.store.SetCurrentPlaylist(*detail)
	s.pulse()
}

// SendCommand encodes an intent and forwards it to the daemon. Delivery is
// best-effort: failures are logged and swallowed, never propagated. Play
// commands mark the target player loading until its next push.
func (s *Syncer) SendCommand(ctx context.Context, intent protocol.Intent, player models.PlayerID, payload any) {
	if intent == protocol.IntentVolume && !s.volume.Allow() {
		s.logger.Debug("volume command dropped by rate limit", "player", player)
		return
	}

	env, err := protocol.Encode(intent, player, payload)
	if err != nil {
		s.logger.Error("command encoding failed", "intent", intent, "err", err)
		return
	}

	if err := s.sender.Send(ctx, env); err != nil {
		s.logger.Error("command send failed", "intent", intent, "player", player, "err", err)
		return
	}

	if intent == protocol.IntentPlay {
		s.store.MarkPlayerLoading(player)
		s.pulse()
	}
}

// PlaySong starts playing a playlist on the player at the given track.
func (s *Syncer) PlaySong(ctx context.Context, player models.PlayerID, playlistID string, song *models.Track) {
	s.SendCommand(ctx, protocol.IntentPlay, player, protocol.PlayPlaylist(playlistID, song, false))
}

// Shuffle starts playing a playlist shuffled.
func (s *Syncer) Shuffle(ctx context.Context, player models.PlayerID, playlistID string, song *models.Track) {
	s.SendCommand(ctx, protocol.IntentPlay, player, protocol.PlayPlaylist(playlistID, song, true))
}

// SetVolume sets the player's absolute volume, clamped to [0, 100].
func (s *Syncer) SetVolume(ctx context.Context, player models.PlayerID, level int) {
	s.SendCommand(ctx, protocol.IntentVolume, player, level)
}

// NextSong advances to the next track.
func (s *Syncer) NextSong(ctx context.Context, player models.PlayerID) {
	s.SendCommand(ctx, protocol.IntentNext, player, nil)
}

// PreviousSong returns to the previous track.
func (s *Syncer) PreviousSong(ctx context.Context, player models.PlayerID) {
	s.SendCommand(ctx, protocol.IntentPrevious, player, nil)
}

// PauseSong toggles pause/resume. The local paused flag is not flipped
// optimistically: the daemon pushes the player's new state after every
// change, and that push is the confirmation.
func (s *Syncer) PauseSong(ctx context.Context, player models.PlayerID) {
	s.SendCommand(ctx, protocol.IntentPause, player, nil)
}

// HandlePush merges one inbound payload into the store. Malformed payloads
// are logged and discarded; they never take the sync loop down.
func (s *Syncer) HandlePush(payload []byte) {
	state, err := models.DecodePlayerState(payload)
	if err != nil {
		s.logger.Warn("discarding push", "reason", shared.ErrMalformedPush, "err", err)
		return
	}

	s.store.UpsertPlayerState(state)
	s.pulse()
}

// Run consumes the channel's event stream until the channel disconnects or
// ctx is cancelled. Disconnection marks the store's connection flag, which is
// monotonic for the session; a fresh channel and Syncer are needed to
// reconnect.
func (s *Syncer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-s.channel.Events():
			if !ok {
				return
			}
			switch event.Type {
			case transport.Connected:
				s.logger.Info("connected to daemon")
			case transport.MessageReceived:
				s.HandlePush(event.Payload)
			case transport.Disconnected:
				s.logger.Error("channel disconnected", "err", event.Err)
				s.store.MarkConnectionFailed()
				s.pulse()
				return
			}
		}
	}
}
