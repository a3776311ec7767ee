// Package template turns a canonical menu into a markup fragment through a
// registry of pluggable renderers.
package template

import (
	"sort"

	"github.com/clientfirst-digital/menuengine/internal/menu"
)

// Renderer is the contract every template implementation satisfies: given
// a canonical menu, synchronously produce a self-contained markup fragment
// with its own embedded presentation rules and no external references.
type Renderer interface {
	Render(m *menu.Menu) (string, error)
}

// Factory constructs a renderer. It runs at most once per registry entry;
// the manager caches the result keyed by the entry's location.
type Factory func() (Renderer, error)

// Default is the process-wide fallback template name.
const Default = "two-col"

type entry struct {
	location string
	factory  Factory
}

// Registry maps symbolic template names to renderer factories.
type Registry struct {
	def     string
	entries map[string]entry
}

// NewRegistry returns a registry pre-populated with the two reference
// templates, with Default as the fallback.
func NewRegistry() *Registry {
	r := &Registry{def: Default, entries: map[string]entry{}}
	r.Register("two-col", "builtin:two-col", func() (Renderer, error) { return &TwoCol{}, nil })
	r.Register("grid", "builtin:grid", func() (Renderer, error) { return &Grid{}, nil })
	return r
}

// Register adds or replaces a template under the given symbolic name.
// location is the cache key for the constructed renderer.
func (r *Registry) Register(name, location string, f Factory) {
	r.entries[name] = entry{location: location, factory: f}
}

// Resolve returns name if it is a known template, else the default.
// It always returns a valid key.
func (r *Registry) Resolve(name string) string {
	if _, ok := r.entries[name]; ok && name != "" {
		return name
	}
	return r.def
}

// Names lists the registered template names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
