// Package resolve walks an element tree and produces the component-free
// render structure.
//
// Resolution invokes every component (functions, Renderer values and Class
// constructors), threads the caller's resolver context down the tree and
// flattens nested children. Sibling elements are resolved concurrently and
// reassembled in declared order, so output order never depends on which
// component finishes first.
//
//	node, err := resolve.Resolve(ctx, vdom.H(Page, nil), deps)
//	if err != nil {
//	    return err
//	}
//	html := render.Serialize(node)
//
// Errors returned by components propagate unchanged and abort the whole
// resolution. Children that cannot be rendered (maps, structs) fail with
// error E001 before any sibling starts resolving, and component panics are
// recovered as error E003.
package resolve
