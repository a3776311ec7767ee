// Package viewer composes the exported standalone menu document: rendered
// fragment, theme variables, business header, chip toolbar, live search,
// and the bottom action bar, all in one dependency-free HTML file.
package viewer

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	htmltemplate "html/template"
	"net/url"
	"strings"

	"github.com/clientfirst-digital/menuengine/internal/menu"
	"github.com/clientfirst-digital/menuengine/internal/template"
	"github.com/clientfirst-digital/menuengine/internal/theme"
)

// ErrNoMenuLoaded is returned when an export is attempted with no menu.
var ErrNoMenuLoaded = errors.New("no menu loaded")

// Options control optional parts of the exported document.
type Options struct {
	// About is pre-rendered trusted HTML for an optional about section.
	About string

	// Features gates the action bar when non-nil: the "whatsapp" and
	// "map" links additionally require their feature to be present.
	// A nil slice leaves everything ungated.
	Features []string
}

// Exporter builds viewer artifacts through a template manager.
type Exporter struct {
	templates *template.Manager
}

// NewExporter creates an Exporter rendering through mgr.
func NewExporter(mgr *template.Manager) *Exporter {
	return &Exporter{templates: mgr}
}

type shellData struct {
	Title    string
	Subtitle string
	CSSVars  htmltemplate.CSS
	Chips    htmltemplate.HTML
	Fragment htmltemplate.HTML
	About    htmltemplate.HTML
	CTAs     htmltemplate.HTML
	Script   htmltemplate.JS
}

// Export renders m through the named template and composes the complete
// standalone document. vars is the snapshot of the active theme's
// variables. The menu is trusted to satisfy the canonical invariants;
// no normalization happens here.
func (e *Exporter) Export(tplName string, m *menu.Menu, vars theme.Vars, opts Options) ([]byte, error) {
	if m == nil {
		return nil, ErrNoMenuLoaded
	}

	fragment := e.templates.Render(tplName, m)

	// The template auto-escapes Title and Subtitle on insertion.
	subtitle := m.Address
	if m.Phone != "" {
		subtitle += " · " + m.Phone
	}

	data := shellData{
		Title:    m.Name,
		Subtitle: subtitle,
		CSSVars:  htmltemplate.CSS(cssVars(vars)),
		Chips:    htmltemplate.HTML(chipsHTML(m.Categories)),
		Fragment: htmltemplate.HTML(fragment),
		About:    htmltemplate.HTML(opts.About),
		CTAs:     htmltemplate.HTML(ctaHTML(m, opts.Features)),
		Script:   htmltemplate.JS(viewerScript),
	}

	tmpl, err := htmltemplate.New("viewer").Parse(shellTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing viewer shell: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("composing viewer: %w", err)
	}
	return buf.Bytes(), nil
}

// cssVars serializes the theme snapshot as :root custom properties in the
// canonical variable order.
func cssVars(vars theme.Vars) string {
	var b strings.Builder
	for _, name := range theme.VarNames {
		fmt.Fprintf(&b, "--%s: %s;", name, vars[name])
	}
	return b.String()
}

// chipsHTML renders one navigation chip per category, bound to the
// category's slug anchor.
func chipsHTML(cats []menu.Category) string {
	var b strings.Builder
	for _, cat := range cats {
		fmt.Fprintf(&b, `<button class="chip" data-target="%s">%s</button>`,
			template.Slugify(cat.Name), html.EscapeString(cat.Name))
	}
	return b.String()
}

// ctaHTML builds the fixed bottom action bar. Each link is omitted
// entirely when its backing field is empty, and the whatsapp/map links
// honor the plan feature set when one is given.
func ctaHTML(m *menu.Menu, features []string) string {
	allowed := func(feature string) bool {
		if features == nil {
			return true
		}
		for _, f := range features {
			if f == feature {
				return true
			}
		}
		return false
	}

	var b strings.Builder
	if m.Phone != "" {
		tel := strings.Map(func(r rune) rune {
			if r == ' ' {
				return -1
			}
			return r
		}, m.Phone)
		fmt.Fprintf(&b, `<a class="cta" href="tel:%s">Call</a>`, html.EscapeString(tel))
	}
	if m.Whatsapp != "" && allowed("whatsapp") {
		msg := url.QueryEscape(m.Name + " - Requesting today menu/prices")
		fmt.Fprintf(&b, `<a class="cta" href="https://wa.me/%s?text=%s">WhatsApp</a>`, m.Whatsapp, msg)
	}
	if m.Maps != "" && allowed("map") {
		fmt.Fprintf(&b, `<a class="cta" href="%s">Map</a>`, html.EscapeString(m.Maps))
	}
	return b.String()
}
