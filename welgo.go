// Package welgo provides the public API for rendering element trees to HTML.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/welgo"
//
// Usage:
//
//	card := func(p welgo.Props) *welgo.Element {
//	    return welgo.H("div", welgo.Props{"className": "card"}, p.Children())
//	}
//	html, err := welgo.Render(ctx, welgo.H(card, nil, "hello"), nil)
package welgo

import (
	"context"
	"io"

	"github.com/vango-dev/welgo/pkg/render"
	"github.com/vango-dev/welgo/pkg/resolve"
	"github.com/vango-dev/welgo/pkg/vdom"
)

// =============================================================================
// Element model
// =============================================================================

// Element is an immutable description of what to render.
type Element = vdom.Element

// Props holds an element's properties.
type Props = vdom.Props

// Tag is the classified tag of an element.
type Tag = vdom.Tag

// ComponentFunc is the full component function signature.
type ComponentFunc = vdom.ComponentFunc

// Renderer is a render-capable value usable as a tag.
type Renderer = vdom.Renderer

// DataResolver lets a Renderer load props before it renders.
type DataResolver = vdom.DataResolver

// ChildContextProvider derives the resolver context for a component's
// subtree.
type ChildContextProvider = vdom.ChildContextProvider

// Constructor creates a Renderer per element.
type Constructor = vdom.Constructor

// Base is embeddable state for class-style components.
type Base = vdom.Base

// NewBase captures props and the resolver context for an embedded Base.
func NewBase(props Props, rc any) Base {
	return vdom.NewBase(props, rc)
}

// Style is an ordered list of CSS declarations.
type Style = vdom.Style

// Fragment is the tag for grouping children without an enclosing element.
var Fragment = vdom.Fragment

// H creates an element.
func H(tag any, props Props, children ...any) *Element {
	return vdom.H(tag, props, children...)
}

// CreateElement is an alias for H.
func CreateElement(tag any, props Props, children ...any) *Element {
	return vdom.H(tag, props, children...)
}

// Frag groups children without a wrapper element.
func Frag(children ...any) *Element {
	return vdom.Frag(children...)
}

// Named gives a component function a name for logs, metrics and errors.
func Named(name string, fn ComponentFunc) Tag {
	return vdom.Named(name, fn)
}

// Class returns a tag that constructs a fresh Renderer per element.
func Class(name string, ctor Constructor) Tag {
	return vdom.Class(name, ctor)
}

// InnerHTML wraps markup for the dangerouslySetInnerHTML prop.
func InnerHTML(html string) vdom.RawHTML {
	return vdom.InnerHTML(html)
}

// =============================================================================
// Rendering
// =============================================================================

// RendererConfig configures a Renderer.
type RendererConfig = render.RendererConfig

// Observer receives render and component notifications.
type Observer = render.Observer

// PageData describes a complete HTML document.
type PageData = render.PageData

// ResolvedNode is the resolved structure produced before serialization.
type ResolvedNode = vdom.VNode

// NewRenderer creates a configured renderer.
func NewRenderer(config RendererConfig) *render.Renderer {
	return render.NewRenderer(config)
}

// Render resolves el with the resolver context rc and returns its HTML.
// Nothing is returned on failure.
func Render(ctx context.Context, el *Element, rc any) (string, error) {
	return render.Render(ctx, el, rc)
}

// RenderToWriter renders el and writes the HTML to w.
func RenderToWriter(ctx context.Context, w io.Writer, el *Element, rc any) error {
	return defaultRenderer.RenderToWriter(ctx, w, el, rc)
}

// RenderPage renders a complete HTML document to w.
func RenderPage(ctx context.Context, w io.Writer, page PageData, rc any) error {
	return defaultRenderer.RenderPage(ctx, w, page, rc)
}

// Resolve runs only the resolution phase.
func Resolve(ctx context.Context, el *Element, rc any) (*ResolvedNode, error) {
	return resolve.Resolve(ctx, el, rc)
}

// Serialize turns a resolved structure into HTML.
func Serialize(node *ResolvedNode) string {
	return render.Serialize(node)
}

// EscapeHTML escapes text for inclusion in HTML.
func EscapeHTML(s string) string {
	return render.EscapeHTML(s)
}

var defaultRenderer = render.NewRenderer(render.RendererConfig{})
