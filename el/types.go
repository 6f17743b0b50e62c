package el

import "github.com/vango-dev/welgo/pkg/vdom"

// Type aliases for the element model used by the DSL.
type Element = vdom.Element
type Props = vdom.Props
type Tag = vdom.Tag
type StyleDecl = vdom.StyleDecl
type ComponentFunc = vdom.ComponentFunc
type Renderer = vdom.Renderer
