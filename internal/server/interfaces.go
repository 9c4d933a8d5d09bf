package server

// Server is the lifecycle contract shared by the HTTP and gRPC
// transports. RunServer blocks until the transport stops; Shutdown
// drains in-flight work and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
