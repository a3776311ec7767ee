package template

import (
	"html"
	"strings"

	"github.com/clientfirst-digital/menuengine/internal/menu"
)

// Grid renders each category as an independent card in a responsive
// multi-column grid.
type Grid struct{}

const gridCSS = `<style>
.hdr-c{text-align:center;margin-bottom:12px}
.hdr-c h2{margin:0}
.muted{color:var(--muted,#9aa3ad)}
.cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:14px}
.card-cat{border:1px dashed #2a3240;border-radius:12px;padding:10px}
.card-cat h3{margin:0 0 6px;text-transform:uppercase;letter-spacing:.4px}
.row{display:flex;justify-content:space-between;padding:4px 0;border-bottom:1px dotted #2a3240}
.row:last-child{border-bottom:0}
.rp{margin-left:12px;white-space:nowrap}
</style>`

func (Grid) Render(m *menu.Menu) (string, error) {
	var b strings.Builder
	b.WriteString(gridCSS)
	b.WriteString(headerBlock(m, "hdr-c"))

	b.WriteString(`<div class="cards">`)
	for _, cat := range m.Categories {
		b.WriteString(`<div class="card-cat" id="cat-` + Slugify(cat.Name) + `"><h3>`)
		b.WriteString(html.EscapeString(cat.Name))
		b.WriteString(`</h3>`)
		for _, it := range cat.Items {
			b.WriteString(itemRow(it, "row", "rp"))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String(), nil
}
