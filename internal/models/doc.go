// Package models defines the data model mirrored by the client: the playlist
// catalog served by the daemon's HTTP API and the per-player state it pushes
// over the websocket.
package models
