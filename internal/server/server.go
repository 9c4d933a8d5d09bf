package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/lmiranda/quest-keeper/internal/config"
	"github.com/lmiranda/quest-keeper/internal/handler"
	"github.com/lmiranda/quest-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer creates the transport servers enabled by cfg: an HTTP server
// when HTTPAddress is set and a gRPC server when GRPCAddress is set. At
// least one address must be configured.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	srv := &server{logger: logger}

	if cfg.HTTPAddress != "" {
		srv.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		srv.gRPCServer = grpcSrv
	}

	if srv.httpServer == nil && srv.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return srv, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run launches the enabled transports and blocks until a termination
// signal has been handled and both have shut down.
func (s *server) run() error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errors.New("no servers to run")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(done)
	}()

	if s.httpServer != nil {
		s.logger.Info().Msg("launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("launching gRPC server")
		go s.gRPCServer.RunServer()
	}

	<-done
	s.logger.Info().Msg("server shut down gracefully")

	return nil
}
