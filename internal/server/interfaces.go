package server

import "context"

// Server defines the lifecycle contract of the stub's HTTP server.
type Server interface {
	// Run serves requests until ctx is done or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
