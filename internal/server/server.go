package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/handler"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	stopOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.stopOnce.Do(s.httpServer.Shutdown)
}

// run serves until ctx is done or the listener fails, then shuts down.
func (s *server) run(ctx context.Context) {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
		s.Shutdown()
		<-serveErr
	case err := <-serveErr:
		if err != nil {
			s.logger.Err(err).Msg("HTTP server ListenAndServe")
		}
		s.Shutdown()
	}

	s.logger.Info().Msg("server Shutdown gracefully")
}
