package vdom

// VKind is the resolved node type discriminator.
type VKind uint8

const (
	KindText      VKind = iota // Escaped text (strings and numbers)
	KindBool                   // Boolean child, renders as nothing
	KindSequence               // Ordered list without wrapper
	KindElement                // <div>, <span>, etc.
	KindFragment               // Grouping without wrapper, may carry raw HTML
	KindComponent              // Unresolved component left by shallow resolution
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindBool:
		return "Bool"
	case KindSequence:
		return "Sequence"
	case KindElement:
		return "Element"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the resolved, component-free render structure consumed by the
// serializer. It never references user code.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (KindElement)
	Attrs    string   // Serialized attributes, leading space included when non-empty
	Unsafe   string   // Raw HTML emitted without escaping (KindElement, KindFragment)
	Text     string   // KindText content; component name for KindComponent
	Bool     bool     // KindBool value
	Children []*VNode // Resolved children
}

// Text creates a text node. Escaping happens at serialization.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Bool creates a boolean leaf.
func Bool(v bool) *VNode {
	return &VNode{Kind: KindBool, Bool: v}
}

// Sequence groups resolved nodes in order.
func Sequence(items ...*VNode) *VNode {
	return &VNode{Kind: KindSequence, Children: items}
}

// Empty returns the node an empty tree resolves to.
func Empty() *VNode {
	return Text("")
}

// IsEmpty reports whether the node renders nothing.
func (v *VNode) IsEmpty() bool {
	if v == nil {
		return true
	}
	switch v.Kind {
	case KindText:
		return v.Text == ""
	case KindBool, KindComponent:
		return true
	case KindSequence:
		for _, c := range v.Children {
			if !c.IsEmpty() {
				return false
			}
		}
		return true
	case KindFragment:
		if v.Unsafe != "" {
			return false
		}
		for _, c := range v.Children {
			if !c.IsEmpty() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Walk calls fn for v and every descendant in document order. Returning
// false from fn skips the node's children.
func (v *VNode) Walk(fn func(*VNode) bool) {
	if v == nil {
		return
	}
	if !fn(v) {
		return
	}
	for _, c := range v.Children {
		c.Walk(fn)
	}
}
