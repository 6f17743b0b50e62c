package el

import (
	"fmt"

	"github.com/vango-dev/welgo/pkg/vdom"
)

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *Element {
	return vdom.Frag(children...)
}

// Component creates an element for a component tag. c may be any value
// accepted as a tag by vdom.H.
func Component(c any, props Props, children ...any) *Element {
	return vdom.H(c, props, children...)
}

// Textf formats a text child.
func Textf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// If returns child when condition holds and nil otherwise.
func If(condition bool, child any) any {
	if condition {
		return child
	}
	return nil
}

// IfElse returns one of two children.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When calls fn only when condition holds.
func When(condition bool, fn func() *Element) any {
	if condition {
		return fn()
	}
	return nil
}

// Range maps items to children, preserving order.
func Range[T any](items []T, fn func(item T, index int) any) []any {
	out := make([]any, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// Repeat calls fn n times.
func Repeat(n int, fn func(i int) any) []any {
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}
