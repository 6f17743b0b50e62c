// Package errors provides coded errors for welgo.
//
// A WelgoError carries a registered code, a category, a short message and
// optionally the document location that caused it and a hint. Errors wrap
// their cause and work with errors.Is and errors.As.
//
// Codes are grouped by category:
//
//   - E001-E019 render: malformed children, component panics, write failures
//   - E020-E039 document: unknown components, bad nodes, parse errors
//   - E040-E059 config: welgo.yaml / welgo.json problems
//   - E060-E079 publish: writing pages to disk or S3
//   - E080-E099 cli
//
// The CLI prints errors with Fprint; servers log them with Attr, which
// expands a WelgoError into a structured slog group.
//
//	err := errors.New("E020").
//	    WithLocation("pages/index.yaml", 4, 10).
//	    WithSuggestion("Registered components: Each, Raw, Value")
//	errors.Fprint(os.Stderr, err, false)
package errors
