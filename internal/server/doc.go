// Package server runs the vault HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by a timeout.
package server
