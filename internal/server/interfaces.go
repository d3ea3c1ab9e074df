package server

// Server defines the lifecycle contract of the vault server.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives and the shutdown completes.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
