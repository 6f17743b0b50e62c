package publish

import (
	"context"
	"mime"
	"path"
	"path/filepath"
	"strings"
)

// Sink is the interface for publishing destinations.
type Sink interface {
	// Put stores content under key, replacing what was there.
	Put(ctx context.Context, key string, content []byte) error

	// Location describes where key ends up, for logs and CLI output.
	Location(key string) string
}

// KeyForRoute maps a URL path to the object key of its page:
// "/" becomes "index.html" and "/docs/intro" becomes
// "docs/intro/index.html". Paths with a file extension are kept as is.
func KeyForRoute(route string) string {
	clean := strings.Trim(path.Clean("/"+route), "/")
	if clean == "" {
		return "index.html"
	}
	if path.Ext(clean) != "" {
		return clean
	}
	return clean + "/index.html"
}

// ContentType returns the MIME type for key, defaulting to HTML.
func ContentType(key string) string {
	if t := mime.TypeByExtension(filepath.Ext(key)); t != "" {
		return t
	}
	return "text/html; charset=utf-8"
}
