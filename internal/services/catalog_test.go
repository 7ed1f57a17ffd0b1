package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewCatalogService(t *testing.T) {
	t.Run("creates service with default URL", func(t *testing.T) {
		if svc := NewCatalogService("", nil); svc.baseURL != defaultCatalogBaseURL {
			t.Errorf("expected baseURL to be %s, got %s", defaultCatalogBaseURL, svc.baseURL)
		}
	})

	t.Run("creates service with custom URL", func(t *testing.T) {
		customURL := "http://localhost:9999"
		if svc := NewCatalogService(customURL, nil); svc.baseURL != customURL {
			t.Errorf("expected baseURL to be %s, got %s", customURL, svc.baseURL)
		}
	})
}

func TestGetPlaylists(t *testing.T) {
	t.Run("decodes the listing", func(t *testing.T) {
		mockPlaylists := []map[string]any{
			{"id": "LM", "title": "Your Likes", "count": "Some", "thumbnail": "https://img/likes.png"},
			{"id": "PL1", "title": "Road Trip", "count": "42"},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/library/playlists" {
				t.Errorf("expected path /api/library/playlists, got %s", r.URL.Path)
			}
			if r.Method != http.MethodGet {
				t.Errorf("expected GET method, got %s", r.Method)
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(mockPlaylists)
		}))
		defer server.Close()

		svc := NewCatalogService(server.URL, nil)
		playlists, err := svc.GetPlaylists(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(playlists) != 2 {
			t.Fatalf("expected 2 playlists, got %d", len(playlists))
		}
		if playlists[0].ID != "LM" {
			t.Errorf("expected first playlist ID LM, got %s", playlists[0].ID)
		}
		if playlists[1].Title != "Road Trip" {
			t.Errorf("expected second playlist title 'Road Trip', got %s", playlists[1].Title)
		}
	})

	t.Run("fails on non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		svc := NewCatalogService(server.URL, nil)
		if _, err := svc.GetPlaylists(context.Background()); err == nil {
			t.Fatal("expected error for 500 status")
		}
	})

	t.Run("fails on network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		svc := NewCatalogService(server.URL, nil)
		if _, err := svc.GetPlaylists(context.Background()); err == nil {
			t.Fatal("expected error for closed server")
		}
	})
}

func TestGetPlaylist(t *testing.T) {
	t.Run("requests the id with a bounded page size", func(t *testing.T) {
		mockDetail := map[string]any{
			"title":      "Road Trip",
			"trackCount": 2,
			"duration":   "8 minutes",
			"tracks": []map[string]any{
				{"videoId": "v1", "title": "First", "artists": []map[string]string{{"name": "A"}}},
				{"videoId": "v2", "title": "Second", "artists": []map[string]string{{"name": "B"}}},
			},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/playlist/PL1" {
				t.Errorf("expected path /api/playlist/PL1, got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("limit"); got != "30" {
				t.Errorf("expected limit=30, got %s", got)
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(mockDetail)
		}))
		defer server.Close()

		svc := NewCatalogService(server.URL, nil)
		detail, err := svc.GetPlaylist(context.Background(), "PL1", 30)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if detail.ID != "PL1" {
			t.Errorf("expected id PL1 backfilled, got %s", detail.ID)
		}
		if detail.TrackCount != 2 {
			t.Errorf("expected track count 2, got %d", detail.TrackCount)
		}
		if len(detail.Tracks) != 2 || detail.Tracks[1].Title != "Second" {
			t.Errorf("unexpected tracks: %+v", detail.Tracks)
		}
	})

	t.Run("fails on non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		svc := NewCatalogService(server.URL, nil)
		if _, err := svc.GetPlaylist(context.Background(), "missing", 30); err == nil {
			t.Fatal("expected error for 404 status")
		}
	})
}
