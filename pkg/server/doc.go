// Package server serves rendered documents over HTTP.
//
// Each configured route maps a chi pattern to a document. Requests render
// the document's page with a resolver context built from the server
// context, the document context and the request:
//
//	rc["path"]   the request path
//	rc["params"] chi URL parameters (map[string]string)
//	rc["query"]  first value of each query parameter (map[string]string)
//
// The server also answers /healthz and, when metrics are configured,
// exposes Prometheus metrics.
package server
