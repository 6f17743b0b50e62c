package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/vango-dev/welgo/pkg/vdom"
)

// RegisterBuiltins adds the components every document can use:
//
//	Value  renders a value from the resolver context: {tag: Value, props: {key: user.name}}
//	Each   renders its template once per item of a context list, exposing
//	       the item under the name given by "as" (default "item")
//	Raw    emits props.html without escaping
func RegisterBuiltins(reg *Registry) {
	reg.Register("Value", vdom.Named("Value", valueComponent))
	reg.Register("Each", vdom.Object("Each", eachComponent{}))
	reg.Register("Raw", vdom.Named("Raw", rawComponent))
}

func valueComponent(_ context.Context, props vdom.Props, rc any) (*vdom.Element, error) {
	v, ok := lookup(rc, props.String("key"))
	if !ok {
		return vdom.Frag(props.String("default")), nil
	}
	switch v.(type) {
	case string, bool, nil:
		return vdom.Frag(v), nil
	}
	if vdom.IsNumber(v) {
		return vdom.Frag(v), nil
	}
	return vdom.Frag(fmt.Sprint(v)), nil
}

func rawComponent(_ context.Context, props vdom.Props, _ any) (*vdom.Element, error) {
	return vdom.H(vdom.Fragment, vdom.Props{vdom.PropInnerHTML: vdom.InnerHTML(props.String("html"))}), nil
}

// eachComponent renders its unresolved template once per item, each copy
// under a derived context. Children cannot serve here: they are resolved
// before the component runs.
type eachComponent struct{}

func (eachComponent) Render(_ context.Context, props vdom.Props, rc any) (*vdom.Element, error) {
	items, _ := lookup(rc, props.String("items"))
	list, ok := items.([]any)
	if !ok {
		return vdom.Frag(), nil
	}
	as := props.String("as")
	if as == "" {
		as = "item"
	}
	template := props[PropTemplate]

	out := make([]any, 0, len(list))
	for i, item := range list {
		if template == nil {
			out = append(out, fmt.Sprint(item))
			continue
		}
		out = append(out, vdom.H(withContext{as: as, item: item, index: i}, vdom.Props{PropTemplate: template}))
	}
	return vdom.Frag(out), nil
}

// withContext renders a template with an extra key in the resolver
// context.
type withContext struct {
	as    string
	item  any
	index int
}

func (w withContext) Render(_ context.Context, props vdom.Props, _ any) (*vdom.Element, error) {
	return vdom.Frag(props[PropTemplate]), nil
}

func (w withContext) ChildContext(rc any) any {
	m := make(map[string]any)
	if parent, ok := rc.(map[string]any); ok {
		for k, v := range parent {
			m[k] = v
		}
	}
	m[w.as] = w.item
	m[w.as+"Index"] = w.index
	return m
}

// lookup resolves a dotted key against nested maps. Request params and
// query values arrive as map[string]string.
func lookup(rc any, key string) (any, bool) {
	if key == "" {
		return nil, false
	}
	cur := rc
	for _, part := range strings.Split(key, ".") {
		var ok bool
		switch m := cur.(type) {
		case map[string]any:
			cur, ok = m[part]
		case map[string]string:
			cur, ok = m[part]
		}
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
