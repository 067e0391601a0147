// Package preview serves a live star control over HTTP for visual checks.
package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gogpu/starrating"
	"github.com/gogpu/starrating/internal/config"
)

// Server hosts one star control. HTTP handlers run on many goroutines, so
// every access to the controller goes through mu.
type Server struct {
	addr    string
	file    config.File
	palette starrating.Palette
	logger  *slog.Logger
	router  chi.Router
	httpSrv *http.Server

	mu      sync.Mutex
	ctl     *starrating.Controller
	changes int
}

// New constructs the server for the control described by file.
func New(addr string, file config.File, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = starrating.Logger()
	}
	s := &Server{
		addr:    addr,
		file:    file,
		palette: file.Palette(),
		logger:  logger,
	}

	opts, err := file.Options()
	if err != nil {
		return nil, err
	}
	s.ctl, err = starrating.New(s.onChange, opts...)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	s.router = r
	s.registerRoutes()

	// Built once here so Start and Shutdown may run on different goroutines.
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/star.png", s.handlePNG)
	s.router.Get("/star.svg", s.handleSVG)
	s.router.Route("/rating", func(r chi.Router) {
		r.Get("/", s.handleGetRating)
		r.Post("/tap/{slot}", s.handleTap)
		r.Post("/drag", s.handleDrag)
	})
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, Shutdown is called or the listener
// fails. A Shutdown that wins the race against Start makes Start return nil.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview: listening", "addr", s.addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the HTTP server. It may run concurrently with
// Start.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// onChange runs inside controller updates, with mu held.
func (s *Server) onChange(r starrating.Rating) {
	s.changes++
	s.logger.Debug("preview: rating changed", "rating", r.Float64(), "changes", s.changes)
}

func (s *Server) snapshot() stateResponse {
	states := s.ctl.States()
	resp := stateResponse{
		Rating:  s.ctl.Rating().Float64(),
		Stars:   starrating.FormatStates(states),
		Changes: s.changes,
	}
	for _, st := range states {
		resp.States = append(resp.States, st.String())
	}
	return resp
}
