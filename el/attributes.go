package el

import (
	"strings"

	"github.com/vango-dev/welgo/pkg/vdom"
)

// Attrs builds props from alternating key/value pairs. A trailing key
// without a value is set to true.
func Attrs(kv ...any) Props {
	props := make(Props, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		if i+1 < len(kv) {
			props[key] = kv[i+1]
		} else {
			props[key] = true
		}
	}
	return props
}

// Classes joins the non-empty class names with a space, for use as the
// className prop.
func Classes(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// Styles builds an ordered style declaration list from property/value
// pairs.
func Styles(kv ...string) vdom.Style {
	style := make(vdom.Style, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		style = append(style, StyleDecl{Property: kv[i], Value: kv[i+1]})
	}
	return style
}

// Raw returns props that set the element's inner HTML without escaping.
func Raw(html string) Props {
	return Props{vdom.PropInnerHTML: vdom.InnerHTML(html)}
}
