package transport

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/slimytm/slimctl/internal/shared"
)

// WSChannel is the websocket implementation of [Channel].
type WSChannel struct {
	conn   *websocket.Conn
	events chan Event
	logger *log.Logger

	writeMu sync.Mutex

	mu   sync.Mutex
	down bool

	disconnect sync.Once
}

var _ Channel = (*WSChannel)(nil)

// Dial opens a websocket channel to the given ws:// URL. The connection
// attempt happens immediately; a failed dial surfaces as a single
// Disconnected event on the stream rather than an error return, so callers
// handle both failure modes in one place.
func Dial(wsURL string, logger *log.Logger) *WSChannel {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	ch := &WSChannel{
		// Buffered so the terminal event can be queued before any consumer
		// is attached.
		events: make(chan Event, 8),
		logger: logger,
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		logger.Error("websocket dial failed", "url", wsURL, "err", err)
		ch.emitDisconnected(fmt.Errorf("%w: %v", shared.ErrConnectionLost, err))
		return ch
	}

	ch.conn = conn
	ch.events <- Event{Type: Connected}
	logger.Debug("websocket connected", "url", wsURL)

	go ch.readLoop()
	return ch
}

// Send writes one text frame. Writes are serialized; gorilla connections
// support only one concurrent writer.
func (ch *WSChannel) Send(payload []byte) error {
	ch.mu.Lock()
	down := ch.down
	ch.mu.Unlock()
	if down || ch.conn == nil {
		return shared.ErrNotConnected
	}

	ch.writeMu.Lock()
	defer ch.writeMu.Unlock()
	if err := ch.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrNotConnected, err)
	}
	return nil
}

// Events returns the inbound event stream.
func (ch *WSChannel) Events() <-chan Event {
	return ch.events
}

// Close tears the connection down. The read loop observes the closed socket
// and emits the Disconnected event.
func (ch *WSChannel) Close() error {
	ch.mu.Lock()
	ch.down = true
	ch.mu.Unlock()

	if ch.conn == nil {
		return nil
	}
	return ch.conn.Close()
}

func (ch *WSChannel) readLoop() {
	for {
		_, payload, err := ch.conn.ReadMessage()
		if err != nil {
			ch.logger.Debug("websocket read ended", "err", err)
			ch.emitDisconnected(fmt.Errorf("%w: %v", shared.ErrConnectionLost, err))
			return
		}
		ch.events <- Event{Type: MessageReceived, Payload: payload}
	}
}

// emitDisconnected delivers the terminal event exactly once and closes the
// stream.
func (ch *WSChannel) emitDisconnected(err error) {
	ch.disconnect.Do(func() {
		ch.mu.Lock()
		ch.down = true
		ch.mu.Unlock()

		ch.events <- Event{Type: Disconnected, Err: err}
		close(ch.events)
	})
}
