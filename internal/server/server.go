package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/et-services/quoterelay/internal/api/handlers"
	"github.com/et-services/quoterelay/internal/config"
	"github.com/et-services/quoterelay/internal/logging"
	"github.com/et-services/quoterelay/internal/server/routes"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *logging.Logger
}

// NewServer creates a server relaying quote requests through quotes.
func NewServer(cfg *config.Config, logger *logging.Logger, quotes handlers.QuoteSubmitter) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's own logger is replaced by the request logger middleware
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	routes.SetupGlobalMiddleware(router, logger, routes.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	})
	routes.Setup(router, &routes.Handlers{
		Quote:  handlers.NewQuoteHandler(quotes, logger),
		Health: handlers.NewHealthHandler(),
	}, logger)

	return &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", s.cfg.Port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
