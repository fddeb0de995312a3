package relay

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/aleister1102/discohook/internal/config"
	"github.com/aleister1102/discohook/internal/httpclient"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// Server forwards webhook executions to the upstream API.
type Server struct {
	cfg    atomic.Pointer[config.RelayConfig]
	client *httpclient.HTTPClient
	logger zerolog.Logger
}

// New constructs a Server. A nil client is built from the relay config.
func New(cfg config.RelayConfig, client *httpclient.HTTPClient, logger zerolog.Logger) (*Server, error) {
	moduleLogger := logger.With().Str("module", "Relay").Logger()

	if client == nil {
		var err error
		client, err = cfg.NewHTTPClient(moduleLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create upstream client: %w", err)
		}
	}

	s := &Server{client: client, logger: moduleLogger}
	s.cfg.Store(&cfg)
	return s, nil
}

// Config returns the settings currently in effect.
func (s *Server) Config() config.RelayConfig {
	return *s.cfg.Load()
}

// UpdateConfig swaps in new settings for subsequent requests. The listen
// address and the upstream client are fixed at startup.
func (s *Server) UpdateConfig(cfg config.RelayConfig) {
	old := s.cfg.Load()
	if cfg.ListenAddress != old.ListenAddress {
		s.logger.Warn().
			Str("current", old.ListenAddress).
			Str("requested", cfg.ListenAddress).
			Msg("Listen address changes need a restart")
		cfg.ListenAddress = old.ListenAddress
	}
	s.cfg.Store(&cfg)
	s.logger.Info().Str("upstream", cfg.UpstreamBaseURL).Int64("max_body_bytes", cfg.MaxBodyBytes).Msg("Relay configuration updated")
}

// Handler returns the relay's routes wrapped in its middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api", s.handleIndex)
	mux.HandleFunc("GET /api/{$}", s.handleIndex)
	mux.Handle("POST /api/webhook/{webhookId}/{webhookToken}", s.validateWebhookPath(http.HandlerFunc(s.handleForward)))
	mux.HandleFunc("/", s.handleNotFound)

	return s.accessLog(s.recoverPanic(secureHeaders(mux)))
}

// Start binds the configured address and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := s.Config().ListenAddress
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then drains in-flight requests
// for up to five seconds.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.logger.Info().Str("address", ln.Addr().String()).Str("upstream", s.Config().UpstreamBaseURL).Msg("Relay listening")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down relay")
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
