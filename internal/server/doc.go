// Package server runs the HTTP API and the background workers of the
// real-estate backend.
//
// It owns the process lifecycle: it starts the listener and the workers,
// waits for SIGTERM, SIGINT or SIGQUIT and then shuts everything down
// gracefully.
package server
