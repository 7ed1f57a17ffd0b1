// Package transport owns the duplex connection to the daemon. A Channel
// carries unsolicited player-state pushes inbound and, in the websocket
// command variant, command envelopes outbound.
package transport

// EventType discriminates channel events.
type EventType int

const (
	// Connected is emitted once after the channel opens.
	Connected EventType = iota
	// MessageReceived carries one inbound push payload.
	MessageReceived
	// Disconnected is emitted exactly once, for a failed open or a
	// mid-session drop, and is followed by the event stream closing.
	Disconnected
)

// Event is the tagged union delivered on the channel's event stream.
type Event struct {
	Type    EventType
	Payload []byte // set for MessageReceived
	Err     error  // set for Disconnected
}

// Channel is one duplex connection to the daemon. The event stream is lazy,
// infinite until disconnect, and non-restartable: after Disconnected a new
// channel must be constructed. Channels perform no retry or backoff.
type Channel interface {
	// Send writes one payload. Returns [shared.ErrNotConnected] once the
	// connection is down.
	Send(payload []byte) error

	// Events returns the inbound event stream. The stream is consumed by a
	// single handler; it is closed after the Disconnected event.
	Events() <-chan Event

	// Close tears the connection down.
	Close() error
}
