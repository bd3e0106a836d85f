// Package api exposes the adaptive-learning engine over HTTP with JSON
// bodies. Request validation beyond URL shape belongs to the gateway in
// front of this service; the engine receives pre-validated inputs.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/abhisek/tutorly/internal/engine"
)

// Server serves the engine's four operations over HTTP.
type Server struct {
	engine     *engine.Engine
	log        zerolog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server bound to addr.
func New(addr string, eng *engine.Engine, log zerolog.Logger) *Server {
	s := &Server{
		engine: eng,
		log:    log,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1/users/{userID}/subjects/{subject}", func(r chi.Router) {
		r.Get("/pattern", s.handlePattern)
		r.Get("/profile", s.handleProfile)
		r.Get("/recommendations", s.handleRecommendations)
		r.Post("/difficulty", s.handleDifficulty)
	})

	return r
}

// Router returns the underlying router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins serving and blocks until the server stops.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("http server listening")
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requestLogger logs each request with latency at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
