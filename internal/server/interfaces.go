package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// Implementations block in [RunServer] until a stop signal arrives or a
// component fails, and return once every component has stopped.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error
}

// backgroundRunner is satisfied by *workers.Workers.
type backgroundRunner interface {
	Run(ctx context.Context) error
}
