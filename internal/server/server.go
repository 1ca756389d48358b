// Package server exposes channel resolution and video listing over HTTP
// and serves the single-page UI.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Taichi-iskw/yt-channel/internal/config"
	"github.com/Taichi-iskw/yt-channel/internal/logging"
	"github.com/Taichi-iskw/yt-channel/internal/service/youtube"
)

// Options holds the HTTP server tuning knobs
type Options struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultOptions returns the default server options
func DefaultOptions() Options {
	return Options{
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server is the HTTP front end over YouTubeService
type Server struct {
	config       *config.Config
	options      Options
	service      youtube.YouTubeService
	logger       *slog.Logger
	httpServer   *http.Server
	shutdownOnce sync.Once
}

// NewServer creates a new Server
func NewServer(cfg *config.Config, service youtube.YouTubeService, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{
		config:  cfg,
		options: opts,
		service: service,
		logger:  logger,
	}
}

// Handler builds the routed handler with its middleware stack
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.AllowedOriginList(),
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/channel", s.handleChannel)
		r.Get("/videos", s.handleVideos)
		r.Get("/classify", s.handleClassify)
	})

	r.Get("/", s.handleIndex)

	return r
}

// Run starts the server and blocks until ctx is cancelled or the listener fails
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.config.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  s.options.ReadTimeout,
		WriteTimeout: s.options.WriteTimeout,
		IdleTimeout:  s.options.IdleTimeout,
	}

	// Start HTTP server in goroutine
	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		return s.shutdown()
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
}

// shutdown performs graceful shutdown
func (s *Server) shutdown() error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.options.ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			shutdownErr = fmt.Errorf("server shutdown error: %w", err)
		}
	})
	return shutdownErr
}
