package protocol

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slimytm/slimctl/internal/shared"
	"github.com/slimytm/slimctl/internal/transport"
)

// recordingChannel captures Send payloads for assertions.
type recordingChannel struct {
	sent    [][]byte
	sendErr error
}

func (r *recordingChannel) Send(payload []byte) error {
	if r.sendErr != nil {
		return r.sendErr
	}
	r.sent = append(r.sent, payload)
	return nil
}

func (r *recordingChannel) Events() <-chan transport.Event { return nil }
func (r *recordingChannel) Close() error                   { return nil }

func TestChannelSender(t *testing.T) {
	t.Run("writes the envelope as JSON", func(t *testing.T) {
		ch := &recordingChannel{}
		sender := NewChannelSender(ch)

		env, _ := Encode(IntentVolume, 2, 70)
		if err := sender.Send(context.Background(), env); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(ch.sent) != 1 {
			t.Fatalf("expected 1 payload, got %d", len(ch.sent))
		}

		var decoded Envelope
		if err := json.Unmarshal(ch.sent[0], &decoded); err != nil {
			t.Fatalf("payload does not decode: %v", err)
		}
		if decoded.Type != IntentVolume || decoded.Player != 2 {
			t.Errorf("unexpected envelope: %+v", decoded)
		}
	})

	t.Run("propagates transport errors", func(t *testing.T) {
		ch := &recordingChannel{sendErr: shared.ErrNotConnected}
		sender := NewChannelSender(ch)

		env, _ := Encode(IntentPause, 1, nil)
		if err := sender.Send(context.Background(), env); !errors.Is(err, shared.ErrNotConnected) {
			t.Errorf("expected ErrNotConnected, got %v", err)
		}
	})
}

func TestHTTPSender(t *testing.T) {
	t.Run("posts the play request body", func(t *testing.T) {
		var gotBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/play" {
				t.Errorf("expected path /play, got %s", r.URL.Path)
			}
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			gotBody, _ = io.ReadAll(r.Body)
		}))
		defer server.Close()

		sender := NewHTTPSender(server.URL, nil)
		env, _ := Encode(IntentPlay, 1, PlayPlaylist("PL1", nil, false))
		if err := sender.Send(context.Background(), env); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var req PlayRequest
		if err := json.Unmarshal(gotBody, &req); err != nil {
			t.Fatalf("body does not decode as PlayRequest: %v", err)
		}
		if req.QueueID != "PL1" {
			t.Errorf("expected queueId PL1, got %s", req.QueueID)
		}
	})

	t.Run("rejects intents the variant cannot carry", func(t *testing.T) {
		sender := NewHTTPSender("http://localhost:9001", nil)
		for _, intent := range []Intent{IntentVolume, IntentNext, IntentPrevious, IntentPause} {
			env, _ := Encode(intent, 1, 50)
			if err := sender.Send(context.Background(), env); !errors.Is(err, shared.ErrUnsupportedIntent) {
				t.Errorf("expected ErrUnsupportedIntent for %s, got %v", intent, err)
			}
		}
	})

	t.Run("fails on non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		sender := NewHTTPSender(server.URL, nil)
		env, _ := Encode(IntentPlay, 1, PlayPlaylist("PL1", nil, false))
		if err := sender.Send(context.Background(), env); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}

func TestNewSender(t *testing.T) {
	t.Run("selects the ws variant", func(t *testing.T) {
		cfg := shared.DefaultConfig()
		cfg.Commands.Variant = shared.CommandVariantWS

		sender, err := NewSender(cfg, &recordingChannel{}, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok := sender.(*ChannelSender); !ok {
			t.Errorf("expected *ChannelSender, got %T", sender)
		}
	})

	t.Run("selects the http variant", func(t *testing.T) {
		cfg := shared.DefaultConfig()
		cfg.Commands.Variant = shared.CommandVariantHTTP

		sender, err := NewSender(cfg, nil, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok := sender.(*HTTPSender); !ok {
			t.Errorf("expected *HTTPSender, got %T", sender)
		}
	})

	t.Run("rejects unknown variants", func(t *testing.T) {
		cfg := shared.DefaultConfig()
		cfg.Commands.Variant = "carrier-pigeon"

		if _, err := NewSender(cfg, nil, nil); !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
