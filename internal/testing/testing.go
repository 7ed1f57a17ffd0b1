// package testing contains shared testing utilities
package testing

import (
	"context"
	"net/http"
	"sync"

	"github.com/slimytm/slimctl/internal/models"
	"github.com/slimytm/slimctl/internal/protocol"
	"github.com/slimytm/slimctl/internal/transport"
)

// MockCatalog is a test double for [services.Catalog]. Unset functions return
// empty results.
type MockCatalog struct {
	GetPlaylistsFn func(ctx context.Context) ([]models.PlaylistSummary, error)
	GetPlaylistFn  func(ctx context.Context, id string, limit int) (*models.PlaylistDetail, error)
}

func (m *MockCatalog) GetPlaylists(ctx context.Context) ([]models.PlaylistSummary, error) {
	if m.GetPlaylistsFn == nil {
		return []models.PlaylistSummary{}, nil
	}
	return m.GetPlaylistsFn(ctx)
}

func (m *MockCatalog) GetPlaylist(ctx context.Context, id string, limit int) (*models.PlaylistDetail, error) {
	if m.GetPlaylistFn == nil {
		return &models.PlaylistDetail{ID: id}, nil
	}
	return m.GetPlaylistFn(ctx, id, limit)
}

// FakeChannel is an in-memory [transport.Channel] with a scriptable event
// stream and a record of sent payloads.
type FakeChannel struct {
	mu      sync.Mutex
	sent    [][]byte
	SendErr error
	Ch      chan transport.Event
}

func NewFakeChannel() *FakeChannel {
	return &FakeChannel{Ch: make(chan transport.Event, 16)}
}

func (f *FakeChannel) Send(payload []byte) error {
	if f.SendErr != nil {
		return f.SendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, payload)
	return nil
}

func (f *FakeChannel) Events() <-chan transport.Event { return f.Ch }

func (f *FakeChannel) Close() error { return nil }

// Sent returns a copy of the payloads written so far.
func (f *FakeChannel) Sent() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	sent := make([][]byte, len(f.sent))
	copy(sent, f.sent)
	return sent
}

// FakeSender records envelopes instead of delivering them.
type FakeSender struct {
	mu        sync.Mutex
	envelopes []protocol.Envelope
	Err       error
}

func (f *FakeSender) Send(_ context.Context, env protocol.Envelope) error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.envelopes = append(f.envelopes, env)
	return nil
}

// Envelopes returns a copy of the envelopes sent so far.
func (f *FakeSender) Envelopes() []protocol.Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	envelopes := make([]protocol.Envelope, len(f.envelopes))
	copy(envelopes, f.envelopes)
	return envelopes
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
