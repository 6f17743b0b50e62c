package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/welgo/internal/errors"
	"github.com/vango-dev/welgo/pkg/vdom"
)

// Resolver turns element trees into resolved render structures. A Resolver
// holds no per-render state and is safe for concurrent use.
type Resolver struct {
	concurrency int
	maxDepth    int
	observer    Observer
	logger      *slog.Logger
}

var defaultResolver = New()

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve resolves el with the default Resolver.
func Resolve(ctx context.Context, el *vdom.Element, rc any) (*vdom.VNode, error) {
	return defaultResolver.Resolve(ctx, el, rc)
}

// Resolve walks el, invoking components with rc, and returns the resolved
// structure. It fails with the first error raised anywhere in the tree.
func (r *Resolver) Resolve(ctx context.Context, el *vdom.Element, rc any) (*vdom.VNode, error) {
	return r.resolve(ctx, el, rc, 0)
}

// ResolveChildren flattens and resolves a children sequence the way an
// element's children are resolved.
func (r *Resolver) ResolveChildren(ctx context.Context, children []any, rc any) ([]*vdom.VNode, error) {
	return r.resolveChildren(ctx, children, rc, 0)
}

func (r *Resolver) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// resolve dispatches on the element's tag kind.
func (r *Resolver) resolve(ctx context.Context, el *vdom.Element, rc any, depth int) (*vdom.VNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if el == nil {
		return vdom.Empty(), nil
	}

	tag := el.Tag()
	switch tag.Kind() {
	case vdom.TagEmpty:
		return vdom.Empty(), nil
	case vdom.TagName, vdom.TagFragment:
		return r.resolveMarkup(ctx, el, rc, depth)
	case vdom.TagFunc, vdom.TagObject, vdom.TagClass:
		return r.resolveComponent(ctx, el, rc, depth)
	default:
		r.log().Debug("welgo: skipping element with unknown tag", "tag", tag.Name())
		return vdom.Empty(), nil
	}
}

// resolveMarkup resolves string tags and fragments.
func (r *Resolver) resolveMarkup(ctx context.Context, el *vdom.Element, rc any, depth int) (*vdom.VNode, error) {
	tag := el.Tag()
	props := el.Props()
	processed := vdom.ProcessProps(props)

	children, err := r.resolveChildren(ctx, el.Children(), rc, depth+1)
	if err != nil {
		return nil, err
	}
	if processed.HasChildren {
		children, err = r.resolveChildren(ctx, []any{processed.Children}, rc, depth+1)
		if err != nil {
			return nil, err
		}
	}

	if tag.Kind() == vdom.TagFragment {
		return &vdom.VNode{
			Kind:     vdom.KindFragment,
			Unsafe:   props.UnsafeHTML(),
			Children: children,
		}, nil
	}

	attrs := processed.Attrs
	if attrs != "" {
		attrs = " " + attrs
	}
	return &vdom.VNode{
		Kind:     vdom.KindElement,
		Tag:      tag.Name(),
		Attrs:    attrs,
		Unsafe:   props.UnsafeHTML(),
		Children: children,
	}, nil
}

// resolveComponent resolves children, invokes the component with the
// resolved children in its props and resolves whatever it returned in place.
func (r *Resolver) resolveComponent(ctx context.Context, el *vdom.Element, rc any, depth int) (*vdom.VNode, error) {
	tag := el.Tag()
	if r.maxDepth > 0 && depth >= r.maxDepth {
		return &vdom.VNode{Kind: vdom.KindComponent, Text: tag.Name()}, nil
	}

	children, err := r.resolveChildren(ctx, el.Children(), rc, depth+1)
	if err != nil {
		return nil, err
	}
	props := el.Props().With(vdom.PropChildren, children)

	out, childRC, err := r.invoke(ctx, tag, props, rc)
	if err != nil {
		return nil, err
	}
	return r.resolve(ctx, out, childRC, depth+1)
}

// invoke runs a component and returns its element along with the resolver
// context for its subtree.
func (r *Resolver) invoke(ctx context.Context, tag vdom.Tag, props vdom.Props, rc any) (out *vdom.Element, childRC any, err error) {
	name := tag.Name()
	if r.observer != nil {
		var end func(error)
		ctx, end = r.observer.BeginComponent(ctx, name)
		defer func() { end(err) }()
	}

	defer func() {
		if p := recover(); p != nil {
			r.log().Error("welgo: component panicked", "component", name, "panic", p, "stack", string(debug.Stack()))
			out, childRC = nil, nil
			err = panicError(name, p)
		}
	}()

	r.log().Debug("welgo: invoking component", "component", name, "kind", tag.Kind().String())

	switch tag.Kind() {
	case vdom.TagFunc:
		out, err = tag.Func()(ctx, props, rc)
		return out, rc, err
	case vdom.TagClass:
		instance, err := tag.Constructor()(props, rc)
		if err != nil {
			return nil, nil, err
		}
		if isNil(instance) {
			return nil, nil, errors.New("E002").
				WithDetail(fmt.Sprintf("The constructor of %s returned a nil Renderer.", name))
		}
		return renderObject(ctx, instance, props, rc)
	default:
		return renderObject(ctx, tag.Object(), props, rc)
	}
}

// renderObject runs the optional data and child-context hooks of a Renderer
// before rendering it.
func renderObject(ctx context.Context, obj vdom.Renderer, props vdom.Props, rc any) (*vdom.Element, any, error) {
	if dr, ok := obj.(vdom.DataResolver); ok {
		extra, err := dr.ResolveData(ctx, rc)
		if err != nil {
			return nil, nil, err
		}
		props = props.Merge(extra)
	}

	childRC := rc
	if cp, ok := obj.(vdom.ChildContextProvider); ok {
		childRC = cp.ChildContext(rc)
	}

	out, err := obj.Render(ctx, props, rc)
	if err != nil {
		return nil, nil, err
	}
	return out, childRC, nil
}

func panicError(name string, p any) error {
	cause, ok := p.(error)
	if !ok {
		cause = fmt.Errorf("%v", p)
	}
	return errors.New("E003").
		WithDetail(fmt.Sprintf("Component %s panicked: %v", name, p)).
		Wrap(cause)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// slot is one position in a flattened children sequence: either an element
// still to resolve or an already resolved node.
type slot struct {
	el   *vdom.Element
	node *vdom.VNode
}

// resolveChildren flattens children and resolves every element among them
// concurrently. Results keep the declared order.
func (r *Resolver) resolveChildren(ctx context.Context, children []any, rc any, depth int) ([]*vdom.VNode, error) {
	slots, err := flatten(children, nil)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, nil
	}

	results := make([]*vdom.VNode, len(slots))
	pending := 0
	for i, s := range slots {
		if s.el == nil {
			results[i] = s.node
		} else {
			pending++
		}
	}

	switch pending {
	case 0:
		return results, nil
	case 1:
		for i, s := range slots {
			if s.el != nil {
				node, err := r.resolve(ctx, s.el, rc, depth)
				if err != nil {
					return nil, err
				}
				results[i] = node
			}
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}
	for i, s := range slots {
		if s.el == nil {
			continue
		}
		i, s := i, s
		g.Go(func() error {
			node, err := r.resolve(gctx, s.el, rc, depth)
			if err != nil {
				return err
			}
			results[i] = node
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// flatten appends the slots for children to out. Nested slices are expanded
// in place and nil entries dropped.
func flatten(children []any, out []slot) ([]slot, error) {
	for _, child := range children {
		var err error
		out, err = flattenOne(child, out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func flattenOne(child any, out []slot) ([]slot, error) {
	switch v := child.(type) {
	case nil:
		return out, nil
	case *vdom.Element:
		if v == nil {
			return out, nil
		}
		return append(out, slot{el: v}), nil
	case vdom.Element:
		return append(out, slot{el: &v}), nil
	case *vdom.VNode:
		if v == nil {
			return out, nil
		}
		return append(out, slot{node: v}), nil
	case []*vdom.VNode:
		for _, n := range v {
			if n != nil {
				out = append(out, slot{node: n})
			}
		}
		return out, nil
	case []any:
		return flatten(v, out)
	case string:
		return append(out, slot{node: vdom.Text(v)}), nil
	case bool:
		return append(out, slot{node: vdom.Bool(v)}), nil
	}

	if vdom.IsNumber(child) {
		return append(out, slot{node: vdom.Text(vdom.Stringify(child))}), nil
	}

	rv := reflect.ValueOf(child)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return out, nil
		}
		for i := 0; i < rv.Len(); i++ {
			var err error
			out, err = flattenOne(rv.Index(i).Interface(), out)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case reflect.String:
		return append(out, slot{node: vdom.Text(rv.String())}), nil
	case reflect.Bool:
		return append(out, slot{node: vdom.Bool(rv.Bool())}), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return out, nil
		}
	}

	return nil, errors.New("E001").
		WithDetail(fmt.Sprintf("Cannot render a %T as a child. You passed: %#v", child, child)).
		WithSuggestion("Pass an element, a string or a number; format values with fmt.Sprint before rendering them.")
}
