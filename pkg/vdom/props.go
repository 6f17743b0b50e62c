package vdom

import (
	"maps"
	"sort"
)

// Reserved prop keys.
const (
	PropChildren  = "children"
	PropClassName = "className"
	PropStyle     = "style"
	PropInnerHTML = "dangerouslySetInnerHTML"
	rawHTMLMapKey = "__html"
)

// Props holds an element's properties.
type Props map[string]any

// Clone returns a shallow copy. A nil Props clones to an empty map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	maps.Copy(out, p)
	return out
}

// With returns a copy of p with key set to value.
func (p Props) With(key string, value any) Props {
	out := p.Clone()
	out[key] = value
	return out
}

// Merge returns a copy of p with every entry of other applied on top.
func (p Props) Merge(other Props) Props {
	out := p.Clone()
	maps.Copy(out, other)
	return out
}

// Get returns the value for key.
func (p Props) Get(key string) any {
	return p[key]
}

// String returns the value for key if it is a string.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Children returns the resolved children a component receives. It is nil
// for props that did not come from the resolver.
func (p Props) Children() []*VNode {
	switch v := p[PropChildren].(type) {
	case []*VNode:
		return v
	case *VNode:
		if v != nil {
			return []*VNode{v}
		}
	}
	return nil
}

// Keys returns the keys in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RawHTML is the dangerouslySetInnerHTML payload. Its content is emitted
// without escaping.
type RawHTML struct {
	HTML string
}

// InnerHTML returns a RawHTML marker for use as the dangerouslySetInnerHTML
// prop.
func InnerHTML(html string) RawHTML {
	return RawHTML{HTML: html}
}

// rawHTMLOf extracts the raw markup from a dangerouslySetInnerHTML value.
func rawHTMLOf(v any) string {
	switch h := v.(type) {
	case RawHTML:
		return h.HTML
	case *RawHTML:
		if h != nil {
			return h.HTML
		}
	case string:
		return h
	case map[string]any:
		s, _ := h[rawHTMLMapKey].(string)
		return s
	case map[string]string:
		return h[rawHTMLMapKey]
	}
	return ""
}

// UnsafeHTML returns the raw markup carried by props, if any.
func (p Props) UnsafeHTML() string {
	return rawHTMLOf(p[PropInnerHTML])
}

// StyleDecl is a single CSS declaration.
type StyleDecl struct {
	Property string
	Value    any
}

// Style is an ordered style mapping. Unlike a Go map it keeps declaration
// order in the serialized attribute.
type Style []StyleDecl
