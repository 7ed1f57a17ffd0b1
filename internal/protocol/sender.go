package protocol

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/slimytm/slimctl/internal/shared"
	"github.com/slimytm/slimctl/internal/transport"
)

// Sender delivers an encoded command to the daemon. The two deployment
// variants of the daemon accept commands differently, so both wire shapes
// live behind this one interface and are selected by configuration.
type Sender interface {
	Send(ctx context.Context, env Envelope) error
}

// ChannelSender writes command envelopes over the state websocket.
type ChannelSender struct {
	channel transport.Channel
}

var _ Sender = (*ChannelSender)(nil)

// NewChannelSender creates a Sender that shares the push channel.
func NewChannelSender(channel transport.Channel) *ChannelSender {
	return &ChannelSender{channel: channel}
}

func (s *ChannelSender) Send(_ context.Context, env Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidPayload, err)
	}
	return s.channel.Send(payload)
}

// HTTPSender posts play requests to the daemon's /play endpoint. That
// deployment variant exposes no other command route, so every other intent is
// rejected with [shared.ErrUnsupportedIntent].
type HTTPSender struct {
	baseURL    string
	httpClient *http.Client
}

var _ Sender = (*HTTPSender)(nil)

// NewHTTPSender creates a Sender for the HTTP command variant. A nil client
// falls back to [http.DefaultClient].
func NewHTTPSender(baseURL string, client *http.Client) *HTTPSender {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSender{baseURL: baseURL, httpClient: client}
}

func (s *HTTPSender) Send(ctx context.Context, env Envelope) error {
	if env.Type != IntentPlay {
		return fmt.Errorf("%w: %q over http", shared.ErrUnsupportedIntent, env.Type)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/play", bytes.NewReader(env.Data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}
	return nil
}

// NewSender selects the command transport for the configured variant.
func NewSender(cfg *shared.Config, channel transport.Channel, client *http.Client) (Sender, error) {
	switch cfg.Commands.Variant {
	case shared.CommandVariantWS:
		return NewChannelSender(channel), nil
	case shared.CommandVariantHTTP:
		return NewHTTPSender(cfg.CommandURL(), client), nil
	}
	return nil, fmt.Errorf("%w: unknown command variant %q", shared.ErrInvalidConfig, cfg.Commands.Variant)
}
