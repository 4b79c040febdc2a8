package anchor

import (
	"sort"
	"strings"
)

// OffsetFunc reports an element's top offset in content coordinates, and
// whether the element currently exists.
type OffsetFunc func() (float64, bool)

// Registry maps element ids to their offsets.
type Registry struct {
	offsets map[string]OffsetFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		offsets: make(map[string]OffsetFunc),
	}
}

// Register adds or replaces the element with the given id.
func (r *Registry) Register(id string, fn OffsetFunc) *Registry {
	r.offsets[id] = fn
	return r
}

// RegisterStatic registers an element whose offset never changes.
func (r *Registry) RegisterStatic(id string, top float64) *Registry {
	return r.Register(id, func() (float64, bool) { return top, true })
}

// ElementOffset returns the element's top offset.
func (r *Registry) ElementOffset(id string) (float64, bool) {
	fn, ok := r.offsets[id]
	if !ok || fn == nil {
		return 0, false
	}
	return fn()
}

// Resolve turns a link href into the id and offset of the element it points
// at. It reports false for anything that is not a local fragment naming a
// registered element.
func (r *Registry) Resolve(href string) (string, float64, bool) {
	id, ok := FragmentID(href)
	if !ok {
		return "", 0, false
	}
	top, ok := r.ElementOffset(id)
	if !ok {
		return "", 0, false
	}
	return id, top, true
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.offsets))
	for id := range r.offsets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FragmentID extracts the id from a local fragment href ("#about" -> "about").
func FragmentID(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if !strings.HasPrefix(href, "#") || len(href) == 1 {
		return "", false
	}
	return href[1:], true
}
