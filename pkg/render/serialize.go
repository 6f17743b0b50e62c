package render

import (
	"strings"

	"github.com/vango-dev/welgo/pkg/vdom"
)

// Serializer turns resolved structures into HTML. The zero value emits raw
// HTML untouched.
type Serializer struct {
	// Raw, when set, filters raw HTML (dangerouslySetInnerHTML) before it is
	// written.
	Raw func(string) string
}

// Serialize renders node with the zero Serializer.
func Serialize(node *vdom.VNode) string {
	return Serializer{}.Serialize(node)
}

// Serialize renders node to an HTML string. It never fails and never calls
// user code.
func (s Serializer) Serialize(node *vdom.VNode) string {
	var b strings.Builder
	s.write(&b, node)
	return b.String()
}

func (s Serializer) write(b *strings.Builder, node *vdom.VNode) {
	if node == nil {
		return
	}

	switch node.Kind {
	case vdom.KindText:
		writeEscaped(b, node.Text)
	case vdom.KindBool, vdom.KindComponent:
		// Renders nothing.
	case vdom.KindSequence:
		s.writeChildren(b, node.Children)
	case vdom.KindFragment:
		s.writeRaw(b, node.Unsafe)
		s.writeChildren(b, node.Children)
	case vdom.KindElement:
		b.WriteByte('<')
		b.WriteString(node.Tag)
		b.WriteString(node.Attrs)
		if IsVoidElement(node.Tag) {
			b.WriteString(" />")
			return
		}
		b.WriteByte('>')
		s.writeRaw(b, node.Unsafe)
		s.writeChildren(b, node.Children)
		b.WriteString("</")
		b.WriteString(node.Tag)
		b.WriteByte('>')
	}
}

func (s Serializer) writeChildren(b *strings.Builder, children []*vdom.VNode) {
	for _, child := range children {
		s.write(b, child)
	}
}

func (s Serializer) writeRaw(b *strings.Builder, html string) {
	if html == "" {
		return
	}
	if s.Raw != nil {
		html = s.Raw(html)
	}
	b.WriteString(html)
}
