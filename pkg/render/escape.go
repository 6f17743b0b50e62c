package render

import "strings"

// EscapeHTML escapes text for inclusion in HTML content. Only &, <, >, "
// and ' are replaced; / and ` pass through. Escaped input is escaped again.
// Every other byte, including invalid UTF-8, is copied unchanged.
func EscapeHTML(s string) string {
	if strings.IndexAny(s, `&<>"'`) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	writeEscaped(&b, s)
	return b.String()
}

func writeEscaped(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		if ent := textEntity(s[i]); ent != "" {
			b.WriteString(ent)
		} else {
			b.WriteByte(s[i])
		}
	}
}

func textEntity(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&quot;"
	case '\'':
		return "&#39;"
	}
	return ""
}

// escapeAttr escapes page metadata for a quoted attribute value. Line
// breaks and tabs become numeric references as well. Element props are not
// passed through it.
func escapeAttr(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			b.WriteString("&#10;")
		case '\r':
			b.WriteString("&#13;")
		case '\t':
			b.WriteString("&#9;")
		default:
			if ent := textEntity(c); ent != "" {
				b.WriteString(ent)
			} else {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}
