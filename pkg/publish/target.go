package publish

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/vango-dev/welgo/internal/errors"
)

// Target is a parsed output destination: a directory or an S3 location.
type Target struct {
	// Dir is set for filesystem targets.
	Dir string

	// Bucket and Prefix are set for s3:// targets.
	Bucket string
	Prefix string
}

// IsS3 reports whether the target is an S3 location.
func (t Target) IsS3() bool { return t.Bucket != "" }

// ParseTarget parses a file path or an s3://bucket/prefix URL.
func ParseTarget(raw string) (Target, error) {
	if raw == "" {
		return Target{}, errors.New("E062").WithDetail("Empty output target.")
	}
	if !strings.Contains(raw, "://") {
		return Target{Dir: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Target{}, errors.New("E062").Wrap(err)
	}
	if u.Scheme != "s3" {
		return Target{}, errors.New("E062").
			WithDetail(fmt.Sprintf("Unsupported scheme %q.", u.Scheme))
	}
	if u.Host == "" {
		return Target{}, errors.New("E062").
			WithDetail(fmt.Sprintf("%q has no bucket.", raw))
	}
	return Target{Bucket: u.Host, Prefix: strings.Trim(u.Path, "/")}, nil
}

// Split separates a single-file target into its parent target and key, so
// "s3://b/p/page.html" publishes page.html under prefix p.
func (t Target) Split() (Target, string) {
	if t.IsS3() {
		dir, key := path.Split(t.Prefix)
		return Target{Bucket: t.Bucket, Prefix: strings.Trim(dir, "/")}, key
	}
	dir, key := path.Split(strings.ReplaceAll(t.Dir, "\\", "/"))
	if dir == "" {
		dir = "."
	}
	return Target{Dir: dir}, key
}

// Open creates the sink for the target. S3 targets build a client with
// opts.
func (t Target) Open(opts S3Options) (Sink, error) {
	if !t.IsS3() {
		return NewFileSink(t.Dir)
	}
	client, err := NewS3Client(opts)
	if err != nil {
		return nil, err
	}
	return NewS3Sink(client, t.Bucket, t.Prefix), nil
}

// Publish stores rendered pages keyed by route in sink, in route order,
// stopping at the first failure. It returns the locations written.
func Publish(ctx context.Context, sink Sink, pages map[string][]byte) ([]string, error) {
	routes := make([]string, 0, len(pages))
	for route := range pages {
		routes = append(routes, route)
	}
	sort.Strings(routes)

	locations := make([]string, 0, len(routes))
	for _, route := range routes {
		key := KeyForRoute(route)
		if err := sink.Put(ctx, key, pages[route]); err != nil {
			return locations, err
		}
		locations = append(locations, sink.Location(key))
	}
	return locations, nil
}
