// package formatter renders catalog and player state as plain text or JSON
// for the CLI
package formatter

import (
	"bytes"
	"fmt"

	"github.com/slimytm/slimctl/internal/models"
	"github.com/slimytm/slimctl/internal/shared"
)

// PlaylistsToText renders the library listing.
func PlaylistsToText(playlists []models.PlaylistSummary) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlists: %d\n\n", len(playlists)))
	for i, p := range playlists {
		count := p.Count
		if count == "" {
			count = "?"
		}
		buf.WriteString(fmt.Sprintf("%d. %s [%s] (%s songs)\n", i+1, p.Title, p.ID, count))
	}

	return buf.Bytes()
}

// PlaylistDetailToText renders an open playlist with its track table.
func PlaylistDetailToText(detail models.PlaylistDetail) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", detail.Title))
	buf.WriteString(fmt.Sprintf("Tracks: %s\n", shared.FormatCount(detail.TrackCount)))
	if detail.Duration != "" {
		buf.WriteString(fmt.Sprintf("Duration: %s\n", detail.Duration))
	}
	buf.WriteString("\n")

	for i, track := range detail.Tracks {
		albumPart := ""
		if name := track.AlbumName(); name != "" {
			albumPart = fmt.Sprintf(" (%s)", name)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, track.Artist(), track.Title, albumPart, track.Duration))
	}

	return buf.Bytes()
}

// PlayerStateToText renders one player's live state on a single line.
func PlayerStateToText(state models.PlayerState) []byte {
	var buf bytes.Buffer

	name := state.Name
	if name == "" {
		name = fmt.Sprintf("player %d", state.ID)
	}

	buf.WriteString(fmt.Sprintf("%s [%d]", name, state.ID))
	if state.Model != "" {
		buf.WriteString(fmt.Sprintf(" (%s)", state.Model))
	}

	switch {
	case state.Loading:
		buf.WriteString(": loading...")
	case state.Song.Empty():
		buf.WriteString(": idle")
	default:
		buf.WriteString(fmt.Sprintf(": %s - %s", state.Song.Artist(), state.Song.Title))
		if state.Paused {
			buf.WriteString(" (paused)")
		}
	}
	buf.WriteString(fmt.Sprintf(" vol=%d\n", state.Volume))

	return buf.Bytes()
}

// PlayersToText renders the full player table.
func PlayersToText(players []models.PlayerState) []byte {
	var buf bytes.Buffer

	if len(players) == 0 {
		buf.WriteString("No players connected\n")
		return buf.Bytes()
	}

	for _, state := range players {
		buf.Write(PlayerStateToText(state))
	}
	return buf.Bytes()
}

// ToJSON generates a JSON representation of any model value.
func ToJSON(data any, pretty bool) ([]byte, error) {
	return shared.MarshalJSON(data, pretty)
}
