package document

import (
	"sort"
	"sync"

	"github.com/vango-dev/welgo/pkg/vdom"
)

// Registry maps component names used in documents to tags. It is safe for
// concurrent use.
type Registry struct {
	mu   sync.RWMutex
	tags map[string]vdom.Tag
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tags: make(map[string]vdom.Tag)}
}

// Register adds a component under name. component may be anything vdom.H
// accepts as a tag. Unnamed function components take the registered name.
func (r *Registry) Register(name string, component any) {
	tag := vdom.TagOf(component)
	if tag.Kind() == vdom.TagFunc && tag.Name() != name {
		tag = vdom.Named(name, tag.Func())
	}
	r.mu.Lock()
	r.tags[name] = tag
	r.mu.Unlock()
}

// Lookup returns the tag registered under name.
func (r *Registry) Lookup(name string) (vdom.Tag, bool) {
	if r == nil {
		return vdom.Tag{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tag, ok := r.tags[name]
	return tag, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tags))
	for name := range r.tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
