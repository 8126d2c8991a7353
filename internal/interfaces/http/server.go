package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/turtacn/FinNote-Intelligence/internal/config"
	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
)

// Server wraps http.Server with lifecycle management.
type Server struct {
	srv    *http.Server
	logger logging.Logger
	port   int
}

// NewServer builds a Server from the server configuration and a route tree.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Server{
		logger: logger.Named("server"),
		port:   cfg.Port,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Start blocks serving requests until Stop is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("http server listening", logging.Int("port", s.port))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.srv.Shutdown(ctx)
}
