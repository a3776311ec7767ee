// Package theme resolves symbolic theme names to flat variable sets and
// tracks the variables currently applied to the visual context.
package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Default is the process-wide fallback theme name.
const Default = "classic"

// ErrThemeFetch is wrapped into all theme resource failures.
var ErrThemeFetch = errors.New("theme fetch failed")

// Vars is a flat mapping of styling variable name to value.
type Vars map[string]string

// VarNames enumerates the variables snapshotted into exported viewers.
var VarNames = []string{"bg", "ink", "muted", "brand", "accent"}

// builtinVars holds the variable sets that ship with the tool.
var builtinVars = map[string]Vars{
	"classic": {
		"bg":     "#0b0f14",
		"ink":    "#e6edf3",
		"muted":  "#9aa3ad",
		"brand":  "#f59e0b",
		"accent": "#22d3ee",
	},
	"neon": {
		"bg":     "#0a0014",
		"ink":    "#f0f0ff",
		"muted":  "#8b8ba3",
		"brand":  "#ff2bd6",
		"accent": "#00ffd1",
	},
}

// Registry maps symbolic theme names to resource locations: "builtin:x"
// for shipped themes, or a file path or http(s) URL.
type Registry struct {
	def       string
	locations map[string]string
}

// NewRegistry returns a registry pre-populated with the built-in themes.
func NewRegistry() *Registry {
	return &Registry{
		def: Default,
		locations: map[string]string{
			"classic": "builtin:classic",
			"neon":    "builtin:neon",
		},
	}
}

// Register adds or replaces a theme under the given symbolic name.
func (r *Registry) Register(name, location string) {
	r.locations[name] = location
}

// Resolve returns name if it is a known theme, else the default.
// It always returns a valid key.
func (r *Registry) Resolve(name string) string {
	if _, ok := r.locations[name]; ok && name != "" {
		return name
	}
	return r.def
}

// Names lists the registered theme names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.locations))
	for name := range r.locations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Applier loads theme variable sets and applies them to the active visual
// context. A failed load is logged and ignored; the previously applied
// variables stay in effect.
type Applier struct {
	reg    *Registry
	client *http.Client

	mu     sync.Mutex
	active string
	vars   Vars
}

// NewApplier creates an Applier over the registry, starting from the
// default theme's built-in variables.
func NewApplier(reg *Registry) *Applier {
	return &Applier{
		reg:    reg,
		client: &http.Client{Timeout: 10 * time.Second},
		active: reg.def,
		vars:   cloneVars(builtinVars[reg.def]),
	}
}

// Apply resolves name, loads its variable set, and makes it active. It
// never fails outward: on fetch or parse errors the previous variables
// remain and the active identifier is unchanged.
func (a *Applier) Apply(ctx context.Context, name string) {
	key := a.reg.Resolve(name)
	vars, err := a.load(ctx, key)
	if err != nil {
		log.Printf("theme: applying %q: %v", key, err)
		return
	}
	a.mu.Lock()
	a.active = key
	a.vars = vars
	a.mu.Unlock()
}

// Active returns the identifier of the currently applied theme.
func (a *Applier) Active() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Snapshot returns the enumerated exportable variables from the live
// context, falling back to the default theme for any that are unset.
func (a *Applier) Snapshot() Vars {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(Vars, len(VarNames))
	for _, name := range VarNames {
		if v, ok := a.vars[name]; ok && v != "" {
			out[name] = v
			continue
		}
		out[name] = builtinVars[Default][name]
	}
	return out
}

// load fetches and parses the variable set for a resolved theme name.
func (a *Applier) load(ctx context.Context, name string) (Vars, error) {
	location := a.reg.locations[name]

	switch {
	case strings.HasPrefix(location, "builtin:"):
		vars, ok := builtinVars[strings.TrimPrefix(location, "builtin:")]
		if !ok {
			return nil, fmt.Errorf("%w: unknown builtin %q", ErrThemeFetch, location)
		}
		return cloneVars(vars), nil

	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrThemeFetch, err)
		}
		resp, err := a.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrThemeFetch, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: %s returned %s", ErrThemeFetch, location, resp.Status)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrThemeFetch, err)
		}
		return parseVars(body)

	default:
		body, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrThemeFetch, err)
		}
		return parseVars(body)
	}
}

func parseVars(body []byte) (Vars, error) {
	var vars Vars
	if err := json.Unmarshal(body, &vars); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrThemeFetch, err)
	}
	return vars, nil
}

func cloneVars(v Vars) Vars {
	out := make(Vars, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
