// Package state owns the single in-memory menu document and the active
// template/theme selections. All mutation goes through setters that
// replace state wholesale; there are no ambient globals.
package state

import (
	"strings"
	"sync"

	"github.com/clientfirst-digital/menuengine/internal/menu"
	"github.com/clientfirst-digital/menuengine/internal/template"
	"github.com/clientfirst-digital/menuengine/internal/theme"
)

// App holds the current session's menu, template, and theme.
type App struct {
	templates *template.Registry
	themes    *theme.Registry

	mu   sync.Mutex
	menu *menu.Menu
	tpl  string
	thm  string
}

// New creates an App with no menu loaded and the registries' defaults
// selected. tpl and thm seed the selections (e.g. from persisted state)
// and are validated against the registries.
func New(templates *template.Registry, themes *theme.Registry, tpl, thm string) *App {
	return &App{
		templates: templates,
		themes:    themes,
		tpl:       templates.Resolve(tpl),
		thm:       themes.Resolve(thm),
	}
}

// Menu returns the current canonical menu, or nil if none is loaded.
func (a *App) Menu() *menu.Menu {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.menu
}

// Template returns the active template name. Always a valid registry key.
func (a *App) Template() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tpl
}

// Theme returns the active theme name. Always a valid registry key.
func (a *App) Theme() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.thm
}

// SetMenu normalizes raw and replaces the current menu wholesale. The
// document's own template/theme selections win when valid; otherwise the
// prior selections stay. Returns the new menu and the normalization report.
func (a *App) SetMenu(raw any) (*menu.Menu, menu.Report) {
	a.mu.Lock()
	defer a.mu.Unlock()

	m, report := menu.NormalizeWithReport(raw, a.tpl, a.thm)
	a.tpl = a.templates.Resolve(m.Template)
	a.thm = a.themes.Resolve(m.Theme)
	m.Template = a.tpl
	m.Theme = a.thm
	a.menu = m
	return m, report
}

// SetTemplate switches the active template, falling back to the default
// for unknown names. Returns the resolved name.
func (a *App) SetTemplate(name string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tpl = a.templates.Resolve(name)
	if a.menu != nil {
		a.menu.Template = a.tpl
	}
	return a.tpl
}

// SetTheme switches the active theme, falling back to the default for
// unknown names. Returns the resolved name.
func (a *App) SetTheme(name string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.thm = a.themes.Resolve(name)
	if a.menu != nil {
		a.menu.Theme = a.thm
	}
	return a.thm
}

// Business carries the top-level fields editable from the builder form.
type Business struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
	Maps     string `json:"maps"`
}

// UpdateBusiness mutates the current menu's top-level business fields
// only; categories and items are untouched. Starts from an empty canonical
// menu when none is loaded.
func (a *App) UpdateBusiness(b Business) *menu.Menu {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.menu == nil {
		a.menu = menu.Normalize(nil, a.tpl, a.thm)
	}
	a.menu.Name = strings.TrimSpace(b.Name)
	a.menu.Address = strings.TrimSpace(b.Address)
	a.menu.Phone = strings.TrimSpace(b.Phone)
	a.menu.Whatsapp = onlyDigits(b.Whatsapp)
	a.menu.Maps = strings.TrimSpace(b.Maps)
	return a.menu
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
