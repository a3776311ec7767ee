package template

import (
	"html"
	"strings"

	"github.com/clientfirst-digital/menuengine/internal/menu"
)

// headerBlock renders the shared business header: menu name, address, and
// phone, with a separator before the phone only when one is present.
func headerBlock(m *menu.Menu, class string) string {
	var b strings.Builder
	b.WriteString(`<header class="` + class + `"><h2>`)
	b.WriteString(html.EscapeString(m.Name))
	b.WriteString(`</h2><div class="muted">`)
	b.WriteString(html.EscapeString(m.Address))
	if m.Phone != "" {
		b.WriteString(" · " + html.EscapeString(m.Phone))
	}
	b.WriteString(`</div></header>`)
	return b.String()
}

// itemRow renders one menu entry: name, optional description, and a
// right-aligned currency-prefixed price (blank when the price is empty).
func itemRow(it menu.Item, rowClass, priceClass string) string {
	var b strings.Builder
	b.WriteString(`<div class="` + rowClass + `"><span>`)
	b.WriteString(html.EscapeString(it.Name))
	if it.Desc != "" {
		b.WriteString(` <small class="muted">– ` + html.EscapeString(it.Desc) + `</small>`)
	}
	b.WriteString(`</span><span class="` + priceClass + `">`)
	if it.Price.Set {
		b.WriteString("₹ " + it.Price.String())
	}
	b.WriteString(`</span></div>`)
	return b.String()
}

// splitColumns splits categories into two halves, the first receiving the
// ceiling of half the count.
func splitColumns(cats []menu.Category) ([]menu.Category, []menu.Category) {
	mid := (len(cats) + 1) / 2
	return cats[:mid], cats[mid:]
}
