package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Transport errors
	ErrNotConnected   = fmt.Errorf("channel not connected")
	ErrConnectionLost = fmt.Errorf("connection lost")

	// Command errors
	ErrUnknownIntent     = fmt.Errorf("unknown intent")
	ErrUnsupportedIntent = fmt.Errorf("intent not supported by command transport")
	ErrInvalidPayload    = fmt.Errorf("invalid command payload")

	// API and sync errors
	ErrAPIRequest       = fmt.Errorf("API request failed")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrMalformedPush    = fmt.Errorf("malformed push payload")
	ErrStaleResponse    = fmt.Errorf("stale response discarded")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
