package vdom

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ProcessedProps is the result of transforming props into markup.
type ProcessedProps struct {
	// Attrs is the space-joined attribute list, without a leading space.
	Attrs string

	// Children is the explicit children override from props.children.
	Children any

	// HasChildren reports whether props carried a non-nil children value.
	HasChildren bool
}

// ProcessProps serializes props into attributes and extracts the explicit
// children override. Attribute values are not entity-escaped.
//
// Keys are visited in sorted order; children and dangerouslySetInnerHTML
// never become attributes.
func ProcessProps(props Props) ProcessedProps {
	var out ProcessedProps
	if props == nil {
		return out
	}

	if c, ok := props[PropChildren]; ok && c != nil {
		out.Children = c
		out.HasChildren = true
	}

	attrs := make([]string, 0, len(props))
	for _, key := range props.Keys() {
		if key == PropChildren || key == PropInnerHTML {
			continue
		}
		value := props[key]

		switch key {
		case PropClassName:
			if value != nil && value != false {
				attrs = append(attrs, `class="`+Stringify(value)+`"`)
			}
			continue
		case PropStyle:
			if s, ok := styleAttr(value); ok {
				attrs = append(attrs, `style="`+s+`"`)
			}
			continue
		}

		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if v {
				attrs = append(attrs, key)
			}
			continue
		}
		if isFunc(value) {
			continue
		}
		attrs = append(attrs, key+`="`+Stringify(value)+`"`)
	}

	out.Attrs = strings.Join(attrs, " ")
	return out
}

// styleAttr renders a style prop. The second result is false when the
// attribute should be omitted.
func styleAttr(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case Style:
		var b strings.Builder
		for _, d := range v {
			writeDecl(&b, d.Property, d.Value)
		}
		return b.String(), b.Len() > 0
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		for _, k := range keys {
			writeDecl(&b, k, v[k])
		}
		return b.String(), b.Len() > 0
	case map[string]any:
		return styleAttr(Props(v))
	case Props:
		var b strings.Builder
		for _, k := range v.Keys() {
			writeDecl(&b, k, v[k])
		}
		return b.String(), b.Len() > 0
	default:
		return "", false
	}
}

func writeDecl(b *strings.Builder, prop string, value any) {
	if !Truthy(value) {
		return
	}
	b.WriteString(prop)
	b.WriteByte(':')
	b.WriteString(Stringify(value))
	b.WriteByte(';')
}

// Truthy reports whether a value counts as set: nil, false, zero numbers,
// NaN and empty strings do not.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// Stringify formats a prop or child value the way it appears in markup.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case fmt.Stringer:
		return x.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

// IsNumber reports whether v is a Go numeric value.
func IsNumber(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isFunc(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Func
}
