package resolve

import (
	"context"
	stderrors "errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/welgo/internal/errors"
	"github.com/vango-dev/welgo/pkg/vdom"
)

func mustResolve(t *testing.T, r *Resolver, el *vdom.Element, rc any) *vdom.VNode {
	t.Helper()
	node, err := r.Resolve(context.Background(), el, rc)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return node
}

// texts collects text leaves in document order.
func texts(n *vdom.VNode) []string {
	var out []string
	n.Walk(func(v *vdom.VNode) bool {
		if v.Kind == vdom.KindText && v.Text != "" {
			out = append(out, v.Text)
		}
		return true
	})
	return out
}

func TestResolveEmpty(t *testing.T) {
	r := New()
	for _, el := range []*vdom.Element{nil, vdom.H(nil, nil), vdom.H(42, nil, "x")} {
		node := mustResolve(t, r, el, nil)
		if node.Kind != vdom.KindText || node.Text != "" {
			t.Errorf("expected empty text, got %+v", node)
		}
	}
}

func TestResolveMarkup(t *testing.T) {
	el := vdom.H("div", vdom.Props{"className": "card", "hidden": true},
		"a",
		vdom.H("span", nil, 1),
		[]any{"b", []any{"c", nil}},
		false,
	)
	node := mustResolve(t, New(), el, nil)

	want := &vdom.VNode{
		Kind:  vdom.KindElement,
		Tag:   "div",
		Attrs: ` class="card" hidden`,
		Children: []*vdom.VNode{
			vdom.Text("a"),
			{Kind: vdom.KindElement, Tag: "span", Children: []*vdom.VNode{vdom.Text("1")}},
			vdom.Text("b"),
			vdom.Text("c"),
			vdom.Bool(false),
		},
	}
	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveFragmentAndRawHTML(t *testing.T) {
	el := vdom.H(vdom.Fragment, vdom.Props{"dangerouslySetInnerHTML": vdom.InnerHTML("<b>x</b>")},
		vdom.H("i", nil, "y"),
	)
	node := mustResolve(t, New(), el, nil)
	if node.Kind != vdom.KindFragment {
		t.Fatalf("Kind = %v, want Fragment", node.Kind)
	}
	if node.Unsafe != "<b>x</b>" {
		t.Errorf("Unsafe = %q", node.Unsafe)
	}
	if len(node.Children) != 1 || node.Children[0].Tag != "i" {
		t.Errorf("Children = %+v", node.Children)
	}
}

func TestResolveExplicitChildrenWin(t *testing.T) {
	el := vdom.H("div", vdom.Props{"children": []any{"explicit", vdom.H("b", nil)}}, "computed")
	node := mustResolve(t, New(), el, nil)

	if got := texts(node); len(got) != 1 || got[0] != "explicit" {
		t.Errorf("texts = %v, want [explicit]", got)
	}
	if len(node.Children) != 2 || node.Children[1].Tag != "b" {
		t.Errorf("explicit element child should be resolved, got %+v", node.Children)
	}
}

func TestResolveComponentReceivesResolvedChildren(t *testing.T) {
	var got []*vdom.VNode
	wrapper := func(p vdom.Props) *vdom.Element {
		got = p.Children()
		return vdom.H("section", p)
	}

	node := mustResolve(t, New(), vdom.H(wrapper, vdom.Props{"id": "w"}, vdom.H("p", nil, "inner"), "tail"), nil)

	if len(got) != 2 || got[0].Tag != "p" || got[1].Text != "tail" {
		t.Fatalf("component children = %+v", got)
	}
	if node.Tag != "section" || node.Attrs != ` id="w"` {
		t.Errorf("passthrough node = %+v", node)
	}
	if diff := cmp.Diff([]string{"inner", "tail"}, texts(node)); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNestedComponentsInline(t *testing.T) {
	inner := func() *vdom.Element { return vdom.H("div", nil, "x") }
	outer := func() *vdom.Element { return vdom.H(inner, nil) }

	node := mustResolve(t, New(), vdom.H(outer, nil), nil)
	want := &vdom.VNode{Kind: vdom.KindElement, Tag: "div", Children: []*vdom.VNode{vdom.Text("x")}}
	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveKeepsDeclaredOrder(t *testing.T) {
	fastDone := make(chan struct{})
	slow := func(ctx context.Context, _ vdom.Props, _ any) (*vdom.Element, error) {
		select {
		case <-fastDone:
		case <-time.After(2 * time.Second):
			return nil, stderrors.New("siblings did not run concurrently")
		}
		return vdom.H("span", nil, "slow"), nil
	}
	fast := func(ctx context.Context, _ vdom.Props, _ any) (*vdom.Element, error) {
		defer close(fastDone)
		return vdom.H("span", nil, "fast"), nil
	}

	el := vdom.H("div", nil, vdom.H(slow, nil), "b", vdom.H(fast, nil))
	node := mustResolve(t, New(), el, nil)

	if diff := cmp.Diff([]string{"slow", "b", "fast"}, texts(node)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolverContextPassedDown(t *testing.T) {
	type deps struct{ greeting string }
	leaf := func(_ vdom.Props, rc any) *vdom.Element {
		return vdom.H("p", nil, rc.(*deps).greeting)
	}
	page := func(_ vdom.Props, rc any) *vdom.Element {
		return vdom.H("main", nil, vdom.H(leaf, nil))
	}

	node := mustResolve(t, New(), vdom.H(page, nil), &deps{greeting: "hello"})
	if diff := cmp.Diff([]string{"hello"}, texts(node)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

type themeProvider struct{ theme string }

func (p themeProvider) ChildContext(rc any) any {
	parent := rc.(map[string]string)
	next := make(map[string]string, len(parent)+1)
	for k, v := range parent {
		next[k] = v
	}
	next["theme"] = p.theme
	return next
}

func TestResolveChildContextDerivation(t *testing.T) {
	reader := func(_ vdom.Props, rc any) *vdom.Element {
		return vdom.H("span", nil, rc.(map[string]string)["theme"])
	}
	provider := themeProvider{theme: "dark"}
	withReader := vdom.Object("Provider", struct {
		vdom.Renderer
		vdom.ChildContextProvider
	}{
		vdom.RendererFunc(func(context.Context, vdom.Props, any) (*vdom.Element, error) {
			return vdom.H(reader, nil), nil
		}),
		provider,
	})

	root := map[string]string{"theme": "light"}
	node := mustResolve(t, New(), vdom.H("div", nil, vdom.H(reader, nil), vdom.H(withReader, nil)), root)

	if diff := cmp.Diff([]string{"light", "dark"}, texts(node)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if root["theme"] != "light" || len(root) != 1 {
		t.Errorf("root context was mutated: %v", root)
	}
}

type profileCard struct {
	vdom.Base
	loads *atomic.Int32
}

func (c *profileCard) ResolveData(_ context.Context, rc any) (vdom.Props, error) {
	c.loads.Add(1)
	return vdom.Props{"name": rc.(map[string]string)["user"]}, nil
}

func (c *profileCard) Render(_ context.Context, props vdom.Props, _ any) (*vdom.Element, error) {
	return vdom.H("div", vdom.Props{"className": c.BaseProps().String("variant")}, props.String("name")), nil
}

func TestResolveClassComponent(t *testing.T) {
	var loads atomic.Int32
	card := vdom.Class("ProfileCard", func(props vdom.Props, rc any) (vdom.Renderer, error) {
		return &profileCard{Base: vdom.NewBase(props, rc), loads: &loads}, nil
	})

	el := vdom.H("div", nil, vdom.H(card, vdom.Props{"variant": "wide"}), vdom.H(card, vdom.Props{"variant": "slim"}))
	node := mustResolve(t, New(), el, map[string]string{"user": "ann"})

	if loads.Load() != 2 {
		t.Errorf("ResolveData called %d times, want one per element", loads.Load())
	}
	if node.Children[0].Attrs != ` class="wide"` || node.Children[1].Attrs != ` class="slim"` {
		t.Errorf("instances should be per element, got %q and %q", node.Children[0].Attrs, node.Children[1].Attrs)
	}
	if diff := cmp.Diff([]string{"ann", "ann"}, texts(node)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveUnconvertedConstructor(t *testing.T) {
	var loads atomic.Int32
	ctor := func(props vdom.Props, rc any) (vdom.Renderer, error) {
		return &profileCard{Base: vdom.NewBase(props, rc), loads: &loads}, nil
	}
	node := mustResolve(t, New(), vdom.H(ctor, vdom.Props{"variant": "plain"}), map[string]string{"user": "bo"})
	if node.Tag != "div" || node.Attrs != ` class="plain"` || loads.Load() != 1 {
		t.Errorf("constructor literal not rendered as a class: %+v", node)
	}
	if diff := cmp.Diff([]string{"bo"}, texts(node)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNamedNilRendersNothing(t *testing.T) {
	node, err := New().Resolve(context.Background(), vdom.H(vdom.Named("Ghost", nil), nil, "x"), nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !node.IsEmpty() {
		t.Errorf("Named with nil func should render nothing, got %+v", node)
	}
}

func TestResolveClassNilInstance(t *testing.T) {
	broken := vdom.Class("Broken", func(vdom.Props, any) (vdom.Renderer, error) {
		var c *profileCard
		return c, nil
	})
	_, err := New().Resolve(context.Background(), vdom.H(broken, nil), nil)
	if errors.CodeOf(err) != "E002" {
		t.Fatalf("error = %v, want E002", err)
	}
}

func TestResolveComponentErrorPropagates(t *testing.T) {
	errBoom := stderrors.New("boom")
	failing := func(context.Context, vdom.Props, any) (*vdom.Element, error) {
		return nil, errBoom
	}
	el := vdom.H("div", nil, vdom.H("p", nil, vdom.H(failing, nil)))

	node, err := New().Resolve(context.Background(), el, nil)
	if err != errBoom {
		t.Fatalf("error = %v, want the component's error unmodified", err)
	}
	if node != nil {
		t.Errorf("no partial output expected, got %+v", node)
	}
}

func TestResolveFailureCancelsSiblings(t *testing.T) {
	errBoom := stderrors.New("boom")
	waiter := func(ctx context.Context, _ vdom.Props, _ any) (*vdom.Element, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
			return nil, stderrors.New("sibling was not cancelled")
		}
	}
	failing := func(context.Context, vdom.Props, any) (*vdom.Element, error) {
		return nil, errBoom
	}

	_, err := New().Resolve(context.Background(), vdom.H("div", nil, vdom.H(waiter, nil), vdom.H(failing, nil)), nil)
	if !stderrors.Is(err, errBoom) {
		t.Fatalf("error = %v, want boom", err)
	}
}

func TestResolveMalformedChild(t *testing.T) {
	var calls atomic.Int32
	comp := func(context.Context, vdom.Props, any) (*vdom.Element, error) {
		calls.Add(1)
		return vdom.H("p", nil), nil
	}

	tests := []struct {
		name  string
		child any
	}{
		{"map", map[string]any{"a": 1}},
		{"struct", struct{ Name string }{"x"}},
		{"nested in slice", []any{"ok", map[string]string{"b": "c"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := vdom.H("div", nil, vdom.H(comp, nil), tt.child)
			_, err := New().Resolve(context.Background(), el, nil)
			if errors.CodeOf(err) != "E001" {
				t.Fatalf("error = %v, want E001", err)
			}
		})
	}
	if calls.Load() != 0 {
		t.Errorf("siblings should not resolve once a malformed child is found, got %d calls", calls.Load())
	}
}

func TestResolvePanicRecovered(t *testing.T) {
	panicking := vdom.Named("Exploding", func(context.Context, vdom.Props, any) (*vdom.Element, error) {
		panic("kaboom")
	})

	_, err := New().Resolve(context.Background(), vdom.H("div", nil, vdom.H(panicking, nil), "x"), nil)
	if errors.CodeOf(err) != "E003" {
		t.Fatalf("error = %v, want E003", err)
	}
	var we *errors.WelgoError
	if !stderrors.As(err, &we) || we.Wrapped == nil || we.Wrapped.Error() != "kaboom" {
		t.Errorf("panic value should be wrapped, got %+v", we)
	}
}

func TestResolveCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Resolve(ctx, vdom.H("div", nil), nil)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestResolveMaxDepth(t *testing.T) {
	var calls atomic.Int32
	leaf := vdom.Named("Leaf", func(context.Context, vdom.Props, any) (*vdom.Element, error) {
		calls.Add(1)
		return vdom.H("i", nil, "deep"), nil
	})
	page := vdom.Named("Page", func(context.Context, vdom.Props, any) (*vdom.Element, error) {
		return vdom.H("main", nil, vdom.H(leaf, nil)), nil
	})

	node := mustResolve(t, New(WithMaxDepth(2)), vdom.H(page, nil), nil)
	if node.Tag != "main" {
		t.Fatalf("top component should render, got %+v", node)
	}
	placeholder := node.Children[0]
	if placeholder.Kind != vdom.KindComponent || placeholder.Text != "Leaf" {
		t.Errorf("expected Leaf placeholder, got %+v", placeholder)
	}
	if calls.Load() != 0 {
		t.Error("components beyond the depth limit must not run")
	}

	full := mustResolve(t, New(), vdom.H(page, nil), nil)
	if diff := cmp.Diff([]string{"deep"}, texts(full)); diff != "" {
		t.Errorf("unlimited resolution mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveConcurrencyLimit(t *testing.T) {
	var running, peak atomic.Int32
	var mu sync.Mutex
	item := func(context.Context, vdom.Props, any) (*vdom.Element, error) {
		n := running.Add(1)
		mu.Lock()
		if n > peak.Load() {
			peak.Store(n)
		}
		mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return vdom.H("li", nil), nil
	}

	children := make([]any, 8)
	for i := range children {
		children[i] = vdom.H(item, nil)
	}
	node := mustResolve(t, New(WithConcurrency(2)), vdom.H("ul", nil, children), nil)

	if len(node.Children) != 8 {
		t.Errorf("children = %d, want 8", len(node.Children))
	}
	if peak.Load() > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak.Load())
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	names  []string
	failed []string
}

func (o *recordingObserver) BeginComponent(ctx context.Context, name string) (context.Context, func(error)) {
	return ctx, func(err error) {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.names = append(o.names, name)
		if err != nil {
			o.failed = append(o.failed, name)
		}
	}
}

func TestResolveObserver(t *testing.T) {
	obs := &recordingObserver{}
	ok := vdom.Named("Ok", func(context.Context, vdom.Props, any) (*vdom.Element, error) {
		return vdom.H("p", nil), nil
	})
	bad := vdom.Named("Bad", func(context.Context, vdom.Props, any) (*vdom.Element, error) {
		return nil, stderrors.New("nope")
	})

	r := New(WithObserver(obs))
	mustResolve(t, r, vdom.H(ok, nil), nil)
	if _, err := r.Resolve(context.Background(), vdom.H(bad, nil), nil); err == nil {
		t.Fatal("expected error")
	}

	if diff := cmp.Diff([]string{"Ok", "Bad"}, obs.names); diff != "" {
		t.Errorf("observed names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Bad"}, obs.failed); diff != "" {
		t.Errorf("observed failures mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveDoesNotMutateElement(t *testing.T) {
	comp := func(p vdom.Props) *vdom.Element {
		p["id"] = "changed"
		return vdom.H("div", p)
	}
	el := vdom.H(comp, vdom.Props{"id": "orig"}, "child")
	mustResolve(t, New(), el, nil)

	if v, _ := el.Prop("id"); v != "orig" {
		t.Errorf("element props mutated: id = %v", v)
	}
	if _, ok := el.Prop("children"); ok {
		t.Error("resolved children leaked into the element's props")
	}
}

func TestResolveChildrenPassesResolvedNodes(t *testing.T) {
	pre := []*vdom.VNode{vdom.Text("a"), nil, vdom.Text("b")}
	nodes, err := New().ResolveChildren(context.Background(), []any{pre, vdom.H("br", nil)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 3 || nodes[0].Text != "a" || nodes[1].Text != "b" || nodes[2].Tag != "br" {
		t.Errorf("nodes = %+v", nodes)
	}
}
