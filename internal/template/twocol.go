package template

import (
	"html"
	"strings"

	"github.com/clientfirst-digital/menuengine/internal/menu"
)

// TwoCol lays categories out side by side in two roughly equal columns.
type TwoCol struct{}

const twoColCSS = `<style>
.hdr{display:flex;justify-content:space-between;align-items:flex-start;margin-bottom:8px}
.hdr h2{margin:0}
.muted{color:var(--muted,#9aa3ad)}
.cols{display:grid;grid-template-columns:1fr 1fr;gap:16px}
.cat h3{margin:8px 0 6px;text-transform:uppercase;letter-spacing:.4px}
.item{display:flex;justify-content:space-between;border-bottom:1px dashed #2a3240;padding:6px 0}
.p{margin-left:12px;white-space:nowrap}
</style>`

func (TwoCol) Render(m *menu.Menu) (string, error) {
	var b strings.Builder
	b.WriteString(twoColCSS)
	b.WriteString(headerBlock(m, "hdr"))

	left, right := splitColumns(m.Categories)
	b.WriteString(`<div class="cols">`)
	writeColumn(&b, left)
	writeColumn(&b, right)
	b.WriteString(`</div>`)
	return b.String(), nil
}

func writeColumn(b *strings.Builder, cats []menu.Category) {
	b.WriteString(`<div>`)
	for _, cat := range cats {
		b.WriteString(`<section class="cat" id="cat-` + Slugify(cat.Name) + `"><h3>`)
		b.WriteString(html.EscapeString(cat.Name))
		b.WriteString(`</h3>`)
		for _, it := range cat.Items {
			b.WriteString(itemRow(it, "item", "p"))
		}
		b.WriteString(`</section>`)
	}
	b.WriteString(`</div>`)
}
