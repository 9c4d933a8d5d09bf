// Package server runs the campaign server's transports: the chi-based
// HTTP API and the gRPC health endpoint. It owns startup, OS signal
// handling, and graceful shutdown of both.
package server
