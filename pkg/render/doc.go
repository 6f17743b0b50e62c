// Package render provides server-side rendering (SSR) for welgo elements.
//
// Rendering happens in two phases. The resolver (package resolve) walks the
// element tree, runs every component and produces a component-free VNode
// tree. The Serializer then turns that tree into HTML:
//
//   - text is escaped (&, <, >, " and ')
//   - raw HTML from dangerouslySetInnerHTML is written as is, or through a
//     bluemonday policy when SanitizeRawHTML is set
//   - void elements (input, br, img, ...) render as <tag /> and drop their
//     children
//   - fragments contribute their children without a wrapper
//   - booleans render as nothing
//
// # Basic Usage
//
// To render an element tree to a string:
//
//	html, err := render.Render(ctx, vdom.H("div", nil, "hello"), nil)
//
// With configuration:
//
//	renderer := render.NewRenderer(render.RendererConfig{Concurrency: 8})
//	err := renderer.RenderToWriter(ctx, w, page, deps)
//
// # Full Page Rendering
//
// To render a complete HTML document:
//
//	page := render.PageData{
//	    Title: "My Page",
//	    Body:  bodyElement,
//	}
//	err := renderer.RenderPage(ctx, w, page, deps)
//
// Output is produced in one piece: when any component fails, nothing is
// written.
//
// # Security
//
// Text content is always escaped. Attribute values are emitted as given;
// never pass untrusted input as a prop without escaping it first.
package render
