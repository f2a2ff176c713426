package server

import "context"

// Server defines the lifecycle contract for the transport server managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT arrives and the server has shut down.
	RunServer()

	// RunContext is RunServer driven by ctx instead of process signals.
	RunContext(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
