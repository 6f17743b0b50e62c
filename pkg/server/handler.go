package server

import (
	"maps"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/welgo/internal/errors"
	"github.com/vango-dev/welgo/pkg/document"
)

// page is a route with its loaded document. doc is nil in reload mode.
type page struct {
	route Route
	doc   *document.Document
}

func (s *Server) pageHandler(p *page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := p.doc
		if doc == nil {
			var err error
			doc, err = document.Load(p.route.Document, s.config.Registry)
			if err != nil {
				s.fail(w, r, err)
				return
			}
		}

		data := doc.Page()
		if p.route.Title != "" {
			data.Title = p.route.Title
		}
		if data.Lang == "" {
			data.Lang = s.config.Lang
		}

		html, err := s.config.Renderer.RenderPageString(r.Context(), data, s.requestContext(r, doc))
		if err != nil {
			s.fail(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
	}
}

// requestContext merges the server context, the document context and the
// request details into a fresh resolver context.
func (s *Server) requestContext(r *http.Request, doc *document.Document) map[string]any {
	rc := make(map[string]any, len(s.config.Context)+len(doc.Context)+3)
	maps.Copy(rc, s.config.Context)
	maps.Copy(rc, doc.Context)

	params := make(map[string]string)
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key != "*" {
				params[key] = rctx.URLParams.Values[i]
			}
		}
	}
	query := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	rc["path"] = r.URL.Path
	rc["params"] = params
	rc["query"] = query
	return rc
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.config.Logger.Error("render failed",
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		errors.Attr(err),
	)
	if r.Context().Err() != nil {
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// requestLogger logs each request with slog.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.config.Logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
