// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI walks the same path as the daemon's web frontend:
//  1. [PlayersView] : Choose one of the live players
//  2. [PlaylistListView] : Browse the library's playlists
//  3. [TrackListView] : Pick a track to play, with transport controls for the chosen player
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// All reads go through store selectors and all writes go through the Syncer, so the
// TUI stays a pure consumer of the state-synchronization core. Store changes caused
// by inbound pushes arrive as update pulses and trigger a re-render.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) plus transport
// keys (space, n, b, +/-) with contextual help via charmbracelet/bubbles/help.
package ui
