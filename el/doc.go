// Package el provides the element DSL for welgo.
//
// It wraps vdom.H with one constructor per HTML tag, plus a few helpers for
// conditional and repeated children.
//
// Typical usage:
//
//	import . "github.com/vango-dev/welgo/el"
//
//	page := Div(Attrs("className", "card"),
//	    H2(nil, "Title"),
//	    Range(items, func(item string, _ int) any { return Li(nil, item) }),
//	)
package el
