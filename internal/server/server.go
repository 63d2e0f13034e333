// Package server provides the HTTP JSON API over the dataset aggregates.
// Chart rendering lives elsewhere; this layer only serves the numbers the
// dashboard draws from, plus the advisory endpoint.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/advisory"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/dataset"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/server/middleware"
)

// Config holds server configuration.
type Config struct {
	Port int
	TopK int
}

// Server serves market snapshots and advisory answers over HTTP. The
// dataset is re-read on every request: snapshots are ephemeral by design,
// and the at-most-daily write cadence makes read racing acceptable.
type Server struct {
	httpServer *http.Server
	store      *dataset.Store
	bridge     *advisory.Bridge
	topK       int
	log        *zap.SugaredLogger
}

// New creates a server over the given store and advisory bridge.
func New(cfg Config, store *dataset.Store, bridge *advisory.Bridge, log *zap.SugaredLogger) *Server {
	s := &Server{
		store:  store,
		bridge: bridge,
		topK:   cfg.TopK,
		log:    log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/snapshot", s.handleSnapshot)
	mux.HandleFunc("GET /api/postings", s.handlePostings)
	mux.HandleFunc("POST /api/ask", s.handleAsk)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      middleware.RequestID(s.logRequests(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 150 * time.Second, // advisory calls can run long
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		s.log.Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetRequestID(r.Context()),
			"duration", time.Since(start).String(),
		)
	})
}
