package vdom

import (
	"context"
	"reflect"
	"runtime"
	"strings"
)

// TagKind discriminates what an Element's tag refers to.
type TagKind uint8

const (
	TagEmpty    TagKind = iota // No tag; resolves to nothing
	TagName                    // Concrete markup tag such as "div"
	TagFragment                // Children without a wrapper
	TagFunc                    // Component function
	TagObject                  // Value implementing Renderer
	TagClass                   // Constructor producing a Renderer per element
	TagUnknown                 // Unrecognized shape; resolves to nothing
)

// String returns the string representation of the TagKind.
func (k TagKind) String() string {
	switch k {
	case TagEmpty:
		return "Empty"
	case TagName:
		return "Name"
	case TagFragment:
		return "Fragment"
	case TagFunc:
		return "Func"
	case TagObject:
		return "Object"
	case TagClass:
		return "Class"
	default:
		return "Unknown"
	}
}

// Tag is the classified tag of an Element. The zero value is TagEmpty.
type Tag struct {
	kind   TagKind
	name   string
	fn     ComponentFunc
	object Renderer
	ctor   Constructor
}

// Fragment is the tag for grouping children without an enclosing element.
var Fragment = Tag{kind: TagFragment, name: "Fragment"}

// Kind returns the tag kind.
func (t Tag) Kind() TagKind { return t.kind }

// Name returns the markup tag for TagName and a descriptive name for
// components.
func (t Tag) Name() string { return t.name }

// Func returns the component function of a TagFunc.
func (t Tag) Func() ComponentFunc { return t.fn }

// Object returns the renderer of a TagObject.
func (t Tag) Object() Renderer { return t.object }

// Constructor returns the constructor of a TagClass.
func (t Tag) Constructor() Constructor { return t.ctor }

// IsComponent reports whether resolving the tag invokes user code.
func (t Tag) IsComponent() bool {
	return t.kind == TagFunc || t.kind == TagObject || t.kind == TagClass
}

// Named wraps a component function with an explicit name used in logs,
// metrics and errors. A nil fn yields an empty tag.
func Named(name string, fn ComponentFunc) Tag {
	if fn == nil {
		return Tag{kind: TagEmpty}
	}
	return Tag{kind: TagFunc, name: name, fn: fn}
}

// Class returns a tag whose elements construct a fresh Renderer from their
// props and the resolver context before rendering. A nil ctor yields an
// empty tag.
func Class(name string, ctor Constructor) Tag {
	if ctor == nil {
		return Tag{kind: TagEmpty}
	}
	return Tag{kind: TagClass, name: name, ctor: ctor}
}

// Object returns a tag for a stateless render-capable value.
func Object(name string, r Renderer) Tag {
	if r == nil {
		return Tag{kind: TagEmpty}
	}
	if name == "" {
		name = typeName(r)
	}
	return Tag{kind: TagObject, name: name, object: r}
}

// TagOf classifies a value into a Tag.
func TagOf(tag any) Tag {
	switch v := tag.(type) {
	case nil:
		return Tag{kind: TagEmpty}
	case Tag:
		return v
	case *Tag:
		if v == nil {
			return Tag{kind: TagEmpty}
		}
		return *v
	case string:
		if v == "" {
			return Tag{kind: TagEmpty}
		}
		return Tag{kind: TagName, name: v}
	case ComponentFunc:
		if v == nil {
			return Tag{kind: TagEmpty}
		}
		return Tag{kind: TagFunc, name: funcName(v), fn: v}
	case func(context.Context, Props, any) (*Element, error):
		if v == nil {
			return Tag{kind: TagEmpty}
		}
		return Tag{kind: TagFunc, name: funcName(v), fn: v}
	case func(Props, any) *Element:
		if v == nil {
			return Tag{kind: TagEmpty}
		}
		return Tag{kind: TagFunc, name: funcName(v), fn: func(_ context.Context, p Props, rc any) (*Element, error) {
			return v(p, rc), nil
		}}
	case func(Props) *Element:
		if v == nil {
			return Tag{kind: TagEmpty}
		}
		return Tag{kind: TagFunc, name: funcName(v), fn: func(_ context.Context, p Props, _ any) (*Element, error) {
			return v(p), nil
		}}
	case func() *Element:
		if v == nil {
			return Tag{kind: TagEmpty}
		}
		return Tag{kind: TagFunc, name: funcName(v), fn: func(context.Context, Props, any) (*Element, error) {
			return v(), nil
		}}
	case Constructor:
		if v == nil {
			return Tag{kind: TagEmpty}
		}
		return Tag{kind: TagClass, name: funcName(v), ctor: v}
	case func(Props, any) (Renderer, error):
		if v == nil {
			return Tag{kind: TagEmpty}
		}
		return Tag{kind: TagClass, name: funcName(v), ctor: v}
	case Renderer:
		return Object("", v)
	default:
		return Tag{kind: TagUnknown, name: typeName(tag)}
	}
}

// Element is an immutable description of what to render.
type Element struct {
	tag      Tag
	props    Props
	children []any
}

// H creates an Element. Children may be passed variadically or as a single
// slice; both produce the same stored sequence. Nothing is validated until
// resolution.
func H(tag any, props Props, children ...any) *Element {
	if len(children) == 1 {
		if list, ok := children[0].([]any); ok {
			children = list
		}
	}
	stored := make([]any, len(children))
	copy(stored, children)
	return &Element{
		tag:      TagOf(tag),
		props:    props.Clone(),
		children: stored,
	}
}

// CreateElement is an alias for H.
func CreateElement(tag any, props Props, children ...any) *Element {
	return H(tag, props, children...)
}

// Frag groups children without a wrapper element.
func Frag(children ...any) *Element {
	return H(Fragment, nil, children...)
}

// Tag returns the element's tag.
func (e *Element) Tag() Tag {
	if e == nil {
		return Tag{}
	}
	return e.tag
}

// Props returns a copy of the element's props.
func (e *Element) Props() Props {
	if e == nil {
		return Props{}
	}
	return e.props.Clone()
}

// Prop returns a single prop value.
func (e *Element) Prop(key string) (any, bool) {
	if e == nil {
		return nil, false
	}
	v, ok := e.props[key]
	return v, ok
}

// Children returns a copy of the element's children.
func (e *Element) Children() []any {
	if e == nil {
		return nil
	}
	out := make([]any, len(e.children))
	copy(out, e.children)
	return out
}

// funcName returns a short name for a Go function value.
func funcName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
