package server

// Server is the lifecycle of the book-share HTTP server.
type Server interface {
	// RunServer serves requests until a stop signal arrives. It returns an
	// error when the listener cannot be started.
	RunServer() error

	// Shutdown waits for in-flight requests and closes the listener.
	Shutdown()
}
