package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/slimytm/slimctl/internal/models"
)

var (
	_ list.Item = playerItem{}
	_ list.Item = playlistItem{}
	_ list.Item = trackItem{}
)

// playerItem wraps [models.PlayerState] to implement [list.Item].
type playerItem struct {
	player models.PlayerState
}

func (i playerItem) FilterValue() string { return i.player.Name }
func (i playerItem) Title() string {
	if i.player.Name == "" {
		return fmt.Sprintf("Player %d", i.player.ID)
	}
	return i.player.Name
}
func (i playerItem) Description() string {
	desc := i.player.Model
	switch {
	case i.player.Loading:
		desc = fmt.Sprintf("%s • loading...", desc)
	case !i.player.Song.Empty():
		desc = fmt.Sprintf("%s • %s - %s", desc, i.player.Song.Artist(), i.player.Song.Title)
	}
	return desc
}

// playlistItem wraps [models.PlaylistSummary] to implement [list.Item].
type playlistItem struct {
	playlist models.PlaylistSummary
}

func (i playlistItem) FilterValue() string { return i.playlist.Title }
func (i playlistItem) Title() string       { return i.playlist.Title }
func (i playlistItem) Description() string {
	if i.playlist.Count == "" {
		return "playlist"
	}
	return fmt.Sprintf("%s songs", i.playlist.Count)
}

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track models.Track
}

func (i trackItem) FilterValue() string { return i.track.Title }
func (i trackItem) Title() string       { return i.track.Title }
func (i trackItem) Description() string {
	desc := i.track.Artist()
	if name := i.track.AlbumName(); name != "" {
		desc = fmt.Sprintf("%s • %s", desc, name)
	}
	if i.track.Duration != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Duration)
	}
	return desc
}
