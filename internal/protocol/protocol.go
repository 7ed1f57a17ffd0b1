// Package protocol turns high-level player intents into wire messages.
//
// Encoding is pure: it performs no I/O and is total for well-typed intents.
// Every message carries the target player id, so a single connection
// multiplexes all players.
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/slimytm/slimctl/internal/models"
	"github.com/slimytm/slimctl/internal/shared"
)

// Intent names an imperative player command.
type Intent string

const (
	IntentPlay     Intent = "PLAY"
	IntentVolume   Intent = "VOLUME"
	IntentNext     Intent = "NEXT"
	IntentPrevious Intent = "PREVIOUS"
	// IntentPause toggles pause/resume; it is not an absolute set. The daemon
	// pushes the resulting state after applying it.
	IntentPause Intent = "PAUSE"
)

// ParseIntent maps a command name to an Intent.
func ParseIntent(name string) (Intent, error) {
	switch Intent(name) {
	case IntentPlay, IntentVolume, IntentNext, IntentPrevious, IntentPause:
		return Intent(name), nil
	}
	return "", fmt.Errorf("%w: %q", shared.ErrUnknownIntent, name)
}

// PlayRequest asks a player to load a queue, optionally starting at a given
// track, optionally shuffled.
type PlayRequest struct {
	QueueType string        `json:"queueType"`
	QueueID   string        `json:"queueId"`
	StartSong *models.Track `json:"startSong"`
	Shuffle   bool          `json:"shuffle"`
}

// PlayPlaylist builds the PlayRequest for starting a playlist at song.
func PlayPlaylist(playlistID string, song *models.Track, shuffle bool) PlayRequest {
	return PlayRequest{
		QueueType: "playlist",
		QueueID:   playlistID,
		StartSong: song,
		Shuffle:   shuffle,
	}
}

// Envelope is the wire message sent to the daemon. Data is omitted for
// intents that carry no payload.
type Envelope struct {
	Type   Intent          `json:"type"`
	Player models.PlayerID `json:"player"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Encode builds the wire message for an intent aimed at a player.
//
// PLAY requires a [PlayRequest] payload; VOLUME requires an int, clamped to
// [0, 100]; NEXT, PREVIOUS and PAUSE carry no payload.
func Encode(intent Intent, player models.PlayerID, payload any) (Envelope, error) {
	env := Envelope{Type: intent, Player: player}

	switch intent {
	case IntentPlay:
		req, err := playPayload(payload)
		if err != nil {
			return Envelope{}, err
		}
		data, err := json.Marshal(req)
		if err != nil {
			return Envelope{}, fmt.Errorf("%w: %v", shared.ErrInvalidPayload, err)
		}
		env.Data = data

	case IntentVolume:
		level, ok := payload.(int)
		if !ok {
			return Envelope{}, fmt.Errorf("%w: VOLUME expects an int, got %T", shared.ErrInvalidPayload, payload)
		}
		data, err := json.Marshal(shared.Clamp(level, 0, 100))
		if err != nil {
			return Envelope{}, fmt.Errorf("%w: %v", shared.ErrInvalidPayload, err)
		}
		env.Data = data

	case IntentNext, IntentPrevious, IntentPause:
		// No payload on the wire, whatever the caller handed us.

	default:
		return Envelope{}, fmt.Errorf("%w: %q", shared.ErrUnknownIntent, intent)
	}

	return env, nil
}

func playPayload(payload any) (PlayRequest, error) {
	switch req := payload.(type) {
	case PlayRequest:
		return req, nil
	case *PlayRequest:
		if req != nil {
			return *req, nil
		}
	}
	return PlayRequest{}, fmt.Errorf("%w: PLAY expects a PlayRequest, got %T", shared.ErrInvalidPayload, payload)
}
