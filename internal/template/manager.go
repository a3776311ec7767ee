package template

import (
	"errors"
	"fmt"
	"html"
	"log"
	"sync"

	"github.com/clientfirst-digital/menuengine/internal/menu"
)

// ErrTemplateLoad is wrapped into all renderer construction failures.
var ErrTemplateLoad = errors.New("template load failed")

// Manager resolves template names through a registry and caches each
// constructed renderer once per process, keyed by its registry location.
// Rendering never fails outward: load or render errors are logged and a
// visually distinct inline error fragment is returned instead, so the
// caller's mount area is never left blank.
type Manager struct {
	reg *Registry

	mu    sync.Mutex
	cache map[string]Renderer
}

// NewManager creates a Manager over the given registry.
func NewManager(reg *Registry) *Manager {
	return &Manager{reg: reg, cache: map[string]Renderer{}}
}

// Render resolves name (falling back to the default for unknown names),
// loads the renderer on first use, and produces the markup fragment.
func (m *Manager) Render(name string, mn *menu.Menu) string {
	key := m.reg.Resolve(name)
	r, err := m.renderer(key)
	if err != nil {
		log.Printf("template: loading %q: %v", key, err)
		return errorBox(fmt.Sprintf("Failed to load template %q.", key))
	}
	out, err := r.Render(mn)
	if err != nil {
		log.Printf("template: rendering %q: %v", key, err)
		return errorBox(fmt.Sprintf("Template %q failed to render.", key))
	}
	return out
}

// renderer returns the cached renderer for the resolved name, constructing
// it under the lock so each distinct template loads exactly once.
func (m *Manager) renderer(name string) (Renderer, error) {
	ent := m.reg.entries[name]

	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.cache[ent.location]; ok {
		return r, nil
	}
	if ent.factory == nil {
		return nil, fmt.Errorf("%w: %q has no factory", ErrTemplateLoad, name)
	}
	r, err := ent.factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %q factory returned no renderer", ErrTemplateLoad, name)
	}
	m.cache[ent.location] = r
	return r, nil
}

// errorBox is the inline failure fragment shown in place of a template.
func errorBox(msg string) string {
	return `<div style="padding:12px;border:1px solid #ef4444;color:#ef4444;border-radius:8px;background:#1b1111">` +
		html.EscapeString(msg) + `</div>`
}
