package store

import (
	"reflect"
	"testing"

	"github.com/slimytm/slimctl/internal/models"
)

func TestNew(t *testing.T) {
	s := New()

	t.Run("seeds the liked songs entry", func(t *testing.T) {
		playlists := s.Playlists()
		if len(playlists) != 1 {
			t.Fatalf("expected 1 seeded playlist, got %d", len(playlists))
		}
		if playlists[0].ID != "LM" {
			t.Errorf("expected seeded id LM, got %s", playlists[0].ID)
		}
	})

	t.Run("current playlist starts as the placeholder", func(t *testing.T) {
		current := s.CurrentPlaylist()
		if current.Title != "Loading..." {
			t.Errorf("expected placeholder, got %+v", current)
		}
	})

	t.Run("connection starts healthy", func(t *testing.T) {
		if s.ConnectionFailed() {
			t.Error("expected connectionFailed to start false")
		}
	})
}

func TestUpsertPlayerState(t *testing.T) {
	t.Run("replaces wholesale, never merges", func(t *testing.T) {
		s := New()

		s.UpsertPlayerState(models.PlayerState{
			ID:     7,
			Song:   models.Track{Title: "X"},
			Paused: false,
			Volume: 40,
		})
		s.UpsertPlayerState(models.PlayerState{ID: 7, Paused: true})

		got := s.PlayerState(7)
		want := models.PlayerState{ID: 7, Paused: true}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected second push to replace first entirely, got %+v", got)
		}
		if got.Song.Title == "X" {
			t.Error("song title survived a wholesale replace")
		}
		if got.Volume != 0 {
			t.Errorf("volume survived a wholesale replace: %d", got.Volume)
		}
	})

	t.Run("keeps exactly one entry per id", func(t *testing.T) {
		s := New()

		for i := 0; i < 5; i++ {
			s.UpsertPlayerState(models.PlayerState{ID: 1, Volume: i})
			s.UpsertPlayerState(models.PlayerState{ID: 2, Volume: i * 10})
		}

		players := s.Players()
		if len(players) != 2 {
			t.Fatalf("expected 2 players, got %d", len(players))
		}
		if players[0].Volume != 4 || players[1].Volume != 40 {
			t.Errorf("expected last writes to win, got %+v", players)
		}
	})

	t.Run("players are sorted by id", func(t *testing.T) {
		s := New()
		s.UpsertPlayerState(models.PlayerState{ID: 30})
		s.UpsertPlayerState(models.PlayerState{ID: 10})
		s.UpsertPlayerState(models.PlayerState{ID: 20})

		players := s.Players()
		for i, want := range []models.PlayerID{10, 20, 30} {
			if players[i].ID != want {
				t.Errorf("expected players[%d].ID == %d, got %d", i, want, players[i].ID)
			}
		}
	})
}

func TestPlayerStateSelector(t *testing.T) {
	t.Run("unknown id returns the exact default", func(t *testing.T) {
		s := New()

		got := s.PlayerState(99)
		want := models.PlayerState{ID: 0, Song: models.Track{}, Paused: false, Loading: false, Volume: 0}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected default state, got %+v", got)
		}
	})

	t.Run("known id returns the stored state", func(t *testing.T) {
		s := New()
		s.UpsertPlayerState(models.PlayerState{ID: 3, Volume: 55})

		if got := s.PlayerState(3); got.Volume != 55 {
			t.Errorf("expected stored state, got %+v", got)
		}
	})
}

func TestMarkPlayerLoading(t *testing.T) {
	t.Run("creates a loading entry for an unknown player", func(t *testing.T) {
		s := New()
		s.MarkPlayerLoading(4)

		got := s.PlayerState(4)
		if !got.Loading {
			t.Error("expected loading flag to be set")
		}
		if got.ID != 4 {
			t.Errorf("expected id 4, got %d", got.ID)
		}
	})

	t.Run("flags an existing player without touching its other fields", func(t *testing.T) {
		s := New()
		s.UpsertPlayerState(models.PlayerState{ID: 4, Song: models.Track{Title: "X"}, Volume: 30})
		s.MarkPlayerLoading(4)

		got := s.PlayerState(4)
		if !got.Loading {
			t.Error("expected loading flag to be set")
		}
		if got.Song.Title != "X" || got.Volume != 30 {
			t.Errorf("loading flag clobbered other fields: %+v", got)
		}
	})

	t.Run("next push clears the flag", func(t *testing.T) {
		s := New()
		s.MarkPlayerLoading(4)
		s.UpsertPlayerState(models.PlayerState{ID: 4, Song: models.Track{Title: "Y"}})

		if got := s.PlayerState(4); got.Loading {
			t.Error("expected wholesale push to clear the loading flag")
		}
	})
}

func TestCatalogMutations(t *testing.T) {
	t.Run("SetPlaylists replaces wholesale", func(t *testing.T) {
		s := New()

		s.SetPlaylists([]models.PlaylistSummary{{ID: "LM", Title: "Your Likes"}})

		playlists := s.Playlists()
		if len(playlists) != 1 {
			t.Fatalf("expected 1 playlist, got %d", len(playlists))
		}
		if playlists[0].Title != "Your Likes" {
			t.Errorf("expected 'Your Likes', got %s", playlists[0].Title)
		}

		s.SetPlaylists([]models.PlaylistSummary{})
		if got := s.Playlists(); len(got) != 0 {
			t.Errorf("expected wholesale replace to empty the listing, got %v", got)
		}
	})

	t.Run("SetCurrentPlaylist installs placeholder and detail", func(t *testing.T) {
		s := New()

		s.SetCurrentPlaylist(models.LoadingPlaylist())
		if got := s.CurrentPlaylist(); got.Title != "Loading..." {
			t.Errorf("expected placeholder, got %+v", got)
		}

		s.SetCurrentPlaylist(models.PlaylistDetail{ID: "PL1", Title: "Road Trip", TrackCount: 2})
		if got := s.CurrentPlaylist(); got.ID != "PL1" || got.TrackCount != 2 {
			t.Errorf("expected fetched detail, got %+v", got)
		}
	})

	t.Run("CurrentPlaylist returns a copy", func(t *testing.T) {
		s := New()
		s.SetCurrentPlaylist(models.PlaylistDetail{
			ID:     "PL1",
			Tracks: []models.Track{{Title: "A"}},
		})

		got := s.CurrentPlaylist()
		got.Tracks[0].Title = "mutated"

		if s.CurrentPlaylist().Tracks[0].Title != "A" {
			t.Error("selector leaked interior state")
		}
	})
}

func TestMarkConnectionFailed(t *testing.T) {
	s := New()

	s.MarkConnectionFailed()
	if !s.ConnectionFailed() {
		t.Fatal("expected connectionFailed to be set")
	}

	// Idempotent and monotonic
	s.MarkConnectionFailed()
	if !s.ConnectionFailed() {
		t.Error("expected connectionFailed to stay set")
	}
}
