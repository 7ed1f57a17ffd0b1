package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Thumbnail represents an image reference. The first thumbnail in a sequence
// is the canonical one.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Artist represents a track artist.
type Artist struct {
	Name string `json:"name"`
}

// Album represents an optional track album.
type Album struct {
	Name string `json:"name"`
}

// Track represents a single song in the catalog or loaded on a player.
type Track struct {
	VideoID    string      `json:"videoId,omitempty"`
	Title      string      `json:"title,omitempty"`
	Artists    []Artist    `json:"artists,omitempty"`
	Album      *Album      `json:"album,omitempty"`
	Duration   string      `json:"duration,omitempty"`
	Thumbnails []Thumbnail `json:"thumbnails,omitempty"`
}

// Empty reports whether no track is loaded.
func (t Track) Empty() bool {
	return t.VideoID == "" && t.Title == ""
}

// Artist returns the primary artist name, or an empty string.
func (t Track) Artist() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0].Name
}

// AlbumName returns the album name, or an empty string when the track has none.
func (t Track) AlbumName() string {
	if t.Album == nil {
		return ""
	}
	return t.Album.Name
}

// Thumbnail returns the canonical thumbnail URL, or an empty string.
func (t Track) Thumbnail() string {
	if len(t.Thumbnails) == 0 {
		return ""
	}
	return t.Thumbnails[0].URL
}

// PlaylistSummary is the lightweight playlist shape used in library listings.
type PlaylistSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Count     string `json:"count,omitempty"`
}

// PlaylistDetail is the full playlist shape used when a single playlist is open.
type PlaylistDetail struct {
	ID         string  `json:"id,omitempty"`
	Title      string  `json:"title"`
	Thumbnail  string  `json:"thumbnail,omitempty"`
	TrackCount int     `json:"trackCount"`
	Duration   string  `json:"duration"`
	Tracks     []Track `json:"tracks"`
}

// Catalog holds the library listing and the playlist currently open.
// CurrentPlaylist is always well-formed: a loading placeholder is installed
// before any fetch so readers never null-check it.
type Catalog struct {
	Playlists       []PlaylistSummary
	CurrentPlaylist PlaylistDetail
}

// PlayerID identifies a player process. The daemon writes it as a quoted
// number in state pushes and as a bare number in command envelopes, so it
// decodes from both.
type PlayerID int

func (id *PlayerID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("player id %q is not numeric: %w", string(data), err)
	}
	*id = PlayerID(n)
	return nil
}

// PlayerState is the client's mirror of one player process. Entries are
// replaced wholesale on every push, never field-merged.
type PlayerState struct {
	ID      PlayerID `json:"id"`
	Name    string   `json:"name,omitempty"`
	Model   string   `json:"type,omitempty"`
	Song    Track    `json:"song"`
	Paused  bool     `json:"paused"`
	Loading bool     `json:"loading"`
	Volume  int      `json:"volume"`
}

// DecodePlayerState parses a push payload into a PlayerState. A payload
// without a valid id is malformed: the daemon always keys pushes by player.
func DecodePlayerState(payload []byte) (PlayerState, error) {
	var probe struct {
		ID *PlayerID `json:"id"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return PlayerState{}, err
	}
	if probe.ID == nil {
		return PlayerState{}, fmt.Errorf("push payload missing player id")
	}

	var state PlayerState
	if err := json.Unmarshal(payload, &state); err != nil {
		return PlayerState{}, err
	}
	return state, nil
}

// DefaultPlayerState is the well-defined state returned for unknown players,
// so consumers can render without null checks.
func DefaultPlayerState() PlayerState {
	return PlayerState{
		ID:      0,
		Song:    Track{},
		Paused:  false,
		Loading: false,
		Volume:  0,
	}
}

// LoadingPlaylist is the placeholder installed synchronously before a playlist
// detail fetch resolves.
func LoadingPlaylist() PlaylistDetail {
	return PlaylistDetail{
		Title:      "Loading...",
		TrackCount: 0,
		Duration:   "0 seconds",
		Tracks:     []Track{},
	}
}

// LikedSongs is the seeded library entry present before the first listing fetch.
func LikedSongs() PlaylistSummary {
	return PlaylistSummary{
		ID:        "LM",
		Title:     "Your Likes",
		Count:     "Some",
		Thumbnail: "https://www.gstatic.com/youtube/media/ytm/images/pbg/liked-songs-@576.png",
	}
}
