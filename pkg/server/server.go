package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/welgo/pkg/document"
)

// Server serves document routes.
type Server struct {
	config     Config
	router     chi.Router
	httpServer *http.Server
	pages      []*page
}

// New creates a server and loads every route's document. A document that
// fails to load fails New unless Reload is set, in which case the error
// surfaces per request.
func New(config Config) (*Server, error) {
	config.applyDefaults()
	s := &Server{config: config}

	for _, route := range config.Routes {
		p := &page{route: route}
		if !config.Reload {
			doc, err := document.Load(route.Document, config.Registry)
			if err != nil {
				return nil, err
			}
			p.doc = doc
		}
		s.pages = append(s.pages, p)
	}

	s.router = s.routes()
	s.httpServer = &http.Server{
		Addr:              config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if s.config.Metrics != nil {
		r.Method(http.MethodGet, s.config.MetricsPath, s.config.Metrics.Handler())
	}

	for _, p := range s.pages {
		r.Get(p.route.Pattern, s.pageHandler(p))
	}
	return r
}

// Handler returns the server's HTTP handler, for mounting in another router
// or for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled or Shutdown is called, then
// shuts down gracefully. It may be called once.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.config.Logger.Info("server starting", "address", s.config.Address, "routes", len(s.pages))
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully stops the HTTP server. It is safe to call from any
// goroutine, before or during ListenAndServe.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.config.Logger.Error("shutdown error", "error", err)
		return err
	}

	s.config.Logger.Info("server shutdown complete")
	return nil
}
