// Package vdom provides the element model and the resolved render structure
// for welgo.
//
// # Elements
//
// An Element describes what to render: a tag, props and children. Elements
// are created with H and are immutable once built:
//
//	H("div", Props{"className": "card"},
//	    H("h1", nil, "Title"),
//	    H(Greeting, Props{"name": "Ann"}),
//	)
//
// The tag is classified when the element is built. A string is a markup tag,
// Fragment groups children without a wrapper, and functions, Renderer values
// and Class constructors are components resolved on the server.
//
// # Props
//
// ProcessProps turns props into serialized attributes. className becomes
// class, style accepts a string or a mapping, true renders a bare attribute
// and false or nil omit it. dangerouslySetInnerHTML carries raw markup and
// children overrides the element's own children.
//
// # Resolved Structure
//
// VNode is the component-free tree produced by the resolver and consumed by
// the serializer: text, boolean leaves, sequences, elements and fragments.
package vdom
