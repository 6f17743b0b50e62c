package server

import (
	"log/slog"
	"time"

	"github.com/vango-dev/welgo/pkg/document"
	"github.com/vango-dev/welgo/pkg/render"
	"github.com/vango-dev/welgo/pkg/telemetry"
)

// Route maps a URL pattern to a document file.
type Route struct {
	// Pattern is a chi route pattern such as "/posts/{slug}".
	Pattern string

	// Document is the path of the YAML or JSON document.
	Document string

	// Title overrides the document title when set.
	Title string
}

// Config holds the server configuration.
type Config struct {
	// Address is the listen address. Default: ":3000".
	Address string

	// Routes are the document routes.
	Routes []Route

	// Renderer renders pages. Default: a renderer with no options.
	Renderer *render.Renderer

	// Registry resolves component names used in documents.
	Registry *document.Registry

	// Context is the base resolver context for every request.
	Context map[string]any

	// Lang is used for documents that do not declare a language.
	Lang string

	// Reload re-reads documents on every request instead of once at start.
	Reload bool

	// Metrics, when set, is exposed at MetricsPath.
	Metrics *telemetry.Metrics

	// MetricsPath is the metrics endpoint. Default: "/metrics".
	MetricsPath string

	// Logger is the structured logger. Default: slog.Default().
	Logger *slog.Logger

	// ReadHeaderTimeout bounds reading request headers. Default: 10 seconds.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 30 seconds.
	ShutdownTimeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.Address == "" {
		c.Address = ":3000"
	}
	if c.Renderer == nil {
		c.Renderer = render.NewRenderer(render.RendererConfig{Logger: c.Logger})
	}
	if c.MetricsPath == "" {
		c.MetricsPath = "/metrics"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = 10 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 30 * time.Second
	}
}
