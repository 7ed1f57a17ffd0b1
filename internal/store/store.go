// Package store holds the single authoritative in-memory model of the daemon:
// the playlist catalog and the live state of every known player.
//
// The store performs no I/O. All writes go through the named mutation methods,
// each atomic under an internal mutex; reads go through selectors that return
// copies, never interior pointers. Ordering of updates across different
// players is undefined, and repeated updates for the same player are
// last-write-wins in arrival order.
package store

import (
	"sort"
	"sync"

	"github.com/slimytm/slimctl/internal/models"
)

// Store is the authoritative client-side mirror. The zero value is not usable;
// construct with [New].
type Store struct {
	mu               sync.RWMutex
	catalog          models.Catalog
	players          map[models.PlayerID]models.PlayerState
	connectionFailed bool
}

// New creates a Store seeded so that no selector ever observes an absent
// value: the catalog starts with the liked-songs entry and a loading
// placeholder for the current playlist.
func New() *Store {
	return &Store{
		catalog: models.Catalog{
			Playlists:       []models.PlaylistSummary{models.LikedSongs()},
			CurrentPlaylist: models.LoadingPlaylist(),
		},
		players: make(map[models.PlayerID]models.PlayerState),
	}
}

// SetPlaylists replaces the library listing wholesale.
func (s *Store) SetPlaylists(playlists []models.PlaylistSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.Playlists = playlists
}

// SetCurrentPlaylist replaces the open playlist wholesale. Used both to
// install the loading placeholder and the fetched detail.
func (s *Store) SetCurrentPlaylist(detail models.PlaylistDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.CurrentPlaylist = detail
}

// UpsertPlayerState replaces the entry keyed by state.ID. Remove-then-insert
// semantics: no field of a prior entry survives.
func (s *Store) UpsertPlayerState(state models.PlayerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, state.ID)
	s.players[state.ID] = state
}

// MarkPlayerLoading flags a player as loading until its next push. The flag is
// synthesized client-side when a play command is issued; the next wholesale
// push clears it. Creates a default entry when the player is still unknown.
func (s *Store) MarkPlayerLoading(id models.PlayerID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.players[id]
	if !ok {
		state = models.DefaultPlayerState()
		state.ID = id
	}
	state.Loading = true
	s.players[id] = state
}

// MarkConnectionFailed records loss of the push channel. Monotonic: once set
// it stays set for the life of the session. Idempotent.
func (s *Store) MarkConnectionFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectionFailed = true
}

// PlayerState returns the state of the given player, or the exact default
// state when the player is unknown. Callers never need a presence check.
func (s *Store) PlayerState(id models.PlayerID) models.PlayerState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.players[id]; ok {
		return state
	}
	return models.DefaultPlayerState()
}

// Players returns all known players sorted by id for stable rendering.
func (s *Store) Players() []models.PlayerState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]models.PlayerState, 0, len(s.players))
	for _, state := range s.players {
		players = append(players, state)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players
}

// Playlists returns a copy of the library listing.
func (s *Store) Playlists() []models.PlaylistSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	playlists := make([]models.PlaylistSummary, len(s.catalog.Playlists))
	copy(playlists, s.catalog.Playlists)
	return playlists
}

// CurrentPlaylist returns the open playlist: either the loading placeholder or
// the fetched detail, never an absent value.
func (s *Store) CurrentPlaylist() models.PlaylistDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	detail := s.catalog.CurrentPlaylist
	detail.Tracks = make([]models.Track, len(s.catalog.CurrentPlaylist.Tracks))
	copy(detail.Tracks, s.catalog.CurrentPlaylist.Tracks)
	return detail
}

// ConnectionFailed reports whether the push channel was lost at any point.
func (s *Store) ConnectionFailed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connectionFailed
}
