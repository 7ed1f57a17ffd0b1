package protocol

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/slimytm/slimctl/internal/models"
	"github.com/slimytm/slimctl/internal/shared"
)

func TestParseIntent(t *testing.T) {
	t.Run("accepts all wire intents", func(t *testing.T) {
		for _, name := range []string{"PLAY", "VOLUME", "NEXT", "PREVIOUS", "PAUSE"} {
			intent, err := ParseIntent(name)
			if err != nil {
				t.Errorf("expected %s to parse, got %v", name, err)
			}
			if string(intent) != name {
				t.Errorf("expected %s, got %s", name, intent)
			}
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		if _, err := ParseIntent("STOP"); !errors.Is(err, shared.ErrUnknownIntent) {
			t.Errorf("expected ErrUnknownIntent, got %v", err)
		}
	})
}

func TestEncode(t *testing.T) {
	t.Run("PLAY carries the queue request", func(t *testing.T) {
		song := &models.Track{VideoID: "v1", Title: "First"}
		env, err := Encode(IntentPlay, 3, PlayPlaylist("PL1", song, true))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if env.Type != IntentPlay || env.Player != 3 {
			t.Errorf("unexpected envelope header: %+v", env)
		}

		var req PlayRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			t.Fatalf("data does not decode as PlayRequest: %v", err)
		}
		if req.QueueType != "playlist" || req.QueueID != "PL1" || !req.Shuffle {
			t.Errorf("unexpected play request: %+v", req)
		}
		if req.StartSong == nil || req.StartSong.VideoID != "v1" {
			t.Errorf("unexpected start song: %+v", req.StartSong)
		}
	})

	t.Run("PLAY rejects other payload types", func(t *testing.T) {
		if _, err := Encode(IntentPlay, 3, 42); !errors.Is(err, shared.ErrInvalidPayload) {
			t.Errorf("expected ErrInvalidPayload, got %v", err)
		}
		if _, err := Encode(IntentPlay, 3, (*PlayRequest)(nil)); !errors.Is(err, shared.ErrInvalidPayload) {
			t.Errorf("expected ErrInvalidPayload for nil request, got %v", err)
		}
	})

	t.Run("VOLUME clamps to the valid range", func(t *testing.T) {
		cases := []struct {
			in   int
			want string
		}{
			{40, "40"},
			{150, "100"},
			{-5, "0"},
			{0, "0"},
			{100, "100"},
		}

		for _, tc := range cases {
			env, err := Encode(IntentVolume, 1, tc.in)
			if err != nil {
				t.Fatalf("expected no error for %d, got %v", tc.in, err)
			}
			if string(env.Data) != tc.want {
				t.Errorf("expected volume %d to encode as %s, got %s", tc.in, tc.want, env.Data)
			}
		}
	})

	t.Run("VOLUME rejects non-int payloads", func(t *testing.T) {
		if _, err := Encode(IntentVolume, 1, "loud"); !errors.Is(err, shared.ErrInvalidPayload) {
			t.Errorf("expected ErrInvalidPayload, got %v", err)
		}
	})

	t.Run("bare intents carry only type and player", func(t *testing.T) {
		for _, intent := range []Intent{IntentNext, IntentPrevious, IntentPause} {
			env, err := Encode(intent, 5, nil)
			if err != nil {
				t.Fatalf("expected no error for %s, got %v", intent, err)
			}
			if env.Data != nil {
				t.Errorf("expected no data for %s, got %s", intent, env.Data)
			}

			wire, err := json.Marshal(env)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if strings.Contains(string(wire), "data") {
				t.Errorf("expected %s wire message to omit data, got %s", intent, wire)
			}
			if !strings.Contains(string(wire), `"player":5`) {
				t.Errorf("expected target player on the wire, got %s", wire)
			}
		}
	})

	t.Run("bare intents ignore stray payloads", func(t *testing.T) {
		env, err := Encode(IntentPause, 5, 99)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if env.Data != nil {
			t.Errorf("expected no data, got %s", env.Data)
		}
	})

	t.Run("unknown intents fail", func(t *testing.T) {
		if _, err := Encode(Intent("STOP"), 1, nil); !errors.Is(err, shared.ErrUnknownIntent) {
			t.Errorf("expected ErrUnknownIntent, got %v", err)
		}
	})
}
