package render

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vango-dev/welgo/internal/errors"
	"github.com/vango-dev/welgo/pkg/resolve"
	"github.com/vango-dev/welgo/pkg/vdom"
)

// Observer receives render and component lifecycle notifications.
type Observer interface {
	resolve.Observer

	// BeginRender is called before a top-level render. end receives the
	// number of bytes produced and the render error, if any.
	BeginRender(ctx context.Context) (context.Context, func(bytes int, err error))
}

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// MaxDepth enables shallow rendering: components at this element depth
	// or deeper are left out. Zero renders the full tree.
	MaxDepth int

	// Concurrency bounds how many siblings resolve at once per level.
	// Zero means unbounded.
	Concurrency int

	// SanitizeRawHTML filters dangerouslySetInnerHTML content through a
	// bluemonday policy instead of emitting it verbatim.
	SanitizeRawHTML bool

	// RawHTMLPolicy is the policy used when SanitizeRawHTML is set.
	// Defaults to bluemonday.UGCPolicy().
	RawHTMLPolicy *bluemonday.Policy

	// Observer receives render and component notifications.
	Observer Observer

	// Logger is used for debug and error output. Defaults to slog.Default().
	Logger *slog.Logger
}

// Renderer resolves element trees and serializes them to HTML. It is safe
// for concurrent use.
type Renderer struct {
	config     RendererConfig
	resolver   *resolve.Resolver
	serializer Serializer
}

var defaultRenderer = NewRenderer(RendererConfig{})

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	opts := []resolve.Option{
		resolve.WithMaxDepth(config.MaxDepth),
		resolve.WithConcurrency(config.Concurrency),
	}
	if config.Observer != nil {
		opts = append(opts, resolve.WithObserver(config.Observer))
	}
	if config.Logger != nil {
		opts = append(opts, resolve.WithLogger(config.Logger))
	}

	r := &Renderer{
		config:   config,
		resolver: resolve.New(opts...),
	}
	if config.SanitizeRawHTML {
		policy := config.RawHTMLPolicy
		if policy == nil {
			policy = bluemonday.UGCPolicy()
		}
		r.serializer.Raw = policy.Sanitize
	}
	return r
}

// Render renders el with the default renderer.
func Render(ctx context.Context, el *vdom.Element, rc any) (string, error) {
	return defaultRenderer.Render(ctx, el, rc)
}

// Render resolves el with the resolver context rc and serializes the result.
// On failure no partial output is returned.
func (r *Renderer) Render(ctx context.Context, el *vdom.Element, rc any) (html string, err error) {
	if r.config.Observer != nil {
		var end func(int, error)
		ctx, end = r.config.Observer.BeginRender(ctx)
		defer func() { end(len(html), err) }()
	}

	start := time.Now()
	node, err := r.resolver.Resolve(ctx, el, rc)
	if err != nil {
		r.logger().Debug("welgo: render failed", errors.Attr(err), "duration", time.Since(start))
		return "", err
	}
	html = r.serializer.Serialize(node)
	r.logger().Debug("welgo: rendered", "bytes", len(html), "duration", time.Since(start))
	return html, nil
}

// RenderToWriter renders el and writes the markup to w. Nothing is written
// when rendering fails.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, el *vdom.Element, rc any) error {
	html, err := r.Render(ctx, el, rc)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, html); err != nil {
		return errors.New("E004").Wrap(err)
	}
	return nil
}

// Resolve exposes the first phase on its own, mainly for tests and tools
// that inspect the resolved structure.
func (r *Renderer) Resolve(ctx context.Context, el *vdom.Element, rc any) (*vdom.VNode, error) {
	return r.resolver.Resolve(ctx, el, rc)
}

// Serialize exposes the second phase with the renderer's raw HTML policy.
func (r *Renderer) Serialize(node *vdom.VNode) string {
	return r.serializer.Serialize(node)
}

func (r *Renderer) logger() *slog.Logger {
	if r.config.Logger != nil {
		return r.config.Logger
	}
	return slog.Default()
}
