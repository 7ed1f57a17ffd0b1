// Package tasks implements the sync actions between the daemon and the store.
//
// The core abstraction is Syncer, the only component that performs I/O: it
// fetches catalog data over HTTP, merges pushed player state into the store,
// and forwards user intents through the command encoder onto the transport.
// The store itself never touches the network; selectors stay pure reads.
package tasks
