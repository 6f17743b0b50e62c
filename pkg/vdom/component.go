package vdom

import "context"

// ComponentFunc is a logical component. It may block (fetching data through
// the resolver context, for example); the returned element is resolved in
// its place.
type ComponentFunc func(ctx context.Context, props Props, rc any) (*Element, error)

// Renderer is a render-capable component value.
type Renderer interface {
	Render(ctx context.Context, props Props, rc any) (*Element, error)
}

// DataResolver is implemented by renderers that load extra props before
// rendering. The returned props are merged over the element's props.
type DataResolver interface {
	ResolveData(ctx context.Context, rc any) (Props, error)
}

// ChildContextProvider is implemented by renderers that hand their subtree a
// derived resolver context. Implementations must return a new value and
// leave rc untouched.
type ChildContextProvider interface {
	ChildContext(rc any) any
}

// Constructor creates a Renderer instance for one element.
type Constructor func(props Props, rc any) (Renderer, error)

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, props Props, rc any) (*Element, error)

// Render implements Renderer.
func (f RendererFunc) Render(ctx context.Context, props Props, rc any) (*Element, error) {
	return f(ctx, props, rc)
}

// Base is embedded by class-style components to keep the props and resolver
// context they were constructed with.
type Base struct {
	props   Props
	context any
}

// NewBase returns a Base holding props and rc.
func NewBase(props Props, rc any) Base {
	return Base{props: props.Clone(), context: rc}
}

// BaseProps returns the props the component was constructed with.
func (b Base) BaseProps() Props { return b.props }

// BaseContext returns the resolver context the component was constructed with.
func (b Base) BaseContext() any { return b.context }
