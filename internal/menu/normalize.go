package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Synonym tables: the ordered accessor rules per canonical field. The
// canonical name comes first in each list so that feeding a Menu's own
// JSON back through Normalize is a no-op.
var (
	nameKeys     = []string{"name", "restaurant", "title"}
	addressKeys  = []string{"address", "location"}
	phoneKeys    = []string{"phone", "contact", "mobile"}
	mapsKeys     = []string{"maps", "map"}
	templateKeys = []string{"template"}
	themeKeys    = []string{"theme"}

	categoryKeys = []string{"sections", "category", "groups", "menus"}
	catNameKeys  = []string{"name", "title", "category", "heading"}
	itemListKeys = []string{"dishes", "entries", "menu", "products", "list"}
	itemNameKeys = []string{"name", "title", "item", "dish", "product", "label"}
	priceKeys    = []string{"price", "cost", "rate", "amount", "mrp"}
	descKeys     = []string{"desc", "description", "details", "about"}
)

// DefaultName is the placeholder used when no name synonym resolves.
const DefaultName = "Menu"

// Report carries diagnostics from a normalization pass.
type Report struct {
	// DroppedItems counts source items excluded because no name synonym
	// resolved to a non-empty value.
	DroppedItems int
}

// Normalize maps a raw parsed document into a canonical Menu. It accepts
// any structurally odd input and degrades to defaults or empty sequences;
// it never fails. currentTemplate and currentTheme seed the template and
// theme fields when the document does not select its own.
func Normalize(raw any, currentTemplate, currentTheme string) *Menu {
	m, _ := NormalizeWithReport(raw, currentTemplate, currentTheme)
	return m
}

// NormalizeWithReport is Normalize plus a diagnostic report.
func NormalizeWithReport(raw any, currentTemplate, currentTheme string) (*Menu, Report) {
	src := asMap(raw)
	// Documents may wrap the payload under a "menu" key.
	if inner, ok := src["menu"].(map[string]any); ok {
		src = inner
	}

	out := &Menu{
		Name:     firstString(src, nameKeys),
		Address:  firstString(src, addressKeys),
		Phone:    firstString(src, phoneKeys),
		Whatsapp: digitsOnly(firstString(src, []string{"whatsapp"})),
		Maps:     firstString(src, mapsKeys),
		Template: firstString(src, templateKeys),
		Theme:    firstString(src, themeKeys),
	}
	if out.Name == "" {
		out.Name = DefaultName
	}
	if out.Template == "" {
		out.Template = currentTemplate
	}
	if out.Theme == "" {
		out.Theme = currentTheme
	}

	var report Report
	out.Categories = normalizeCategories(src, &report)
	return out, report
}

func normalizeCategories(src map[string]any, report *Report) []Category {
	cats, ok := src["categories"].([]any)
	if !ok {
		for _, key := range categoryKeys {
			if alt, isArr := src[key].([]any); isArr && len(alt) > 0 {
				cats = alt
				break
			}
		}
	}

	out := make([]Category, 0, len(cats))
	for i, rawCat := range cats {
		sec := asMap(rawCat)
		name := firstString(sec, catNameKeys)
		if name == "" {
			name = fmt.Sprintf("Category %d", i+1)
		}
		out = append(out, Category{
			Name:  name,
			Items: normalizeItems(sec, report),
		})
	}
	return out
}

func normalizeItems(sec map[string]any, report *Report) []Item {
	items, ok := sec["items"].([]any)
	if !ok {
		for _, key := range itemListKeys {
			if alt, isArr := sec[key].([]any); isArr {
				items = alt
				break
			}
		}
	}

	out := make([]Item, 0, len(items))
	for _, rawItem := range items {
		it := asMap(rawItem)
		name := firstString(it, itemNameKeys)
		if name == "" {
			// Lenient by intent: nameless entries are excluded, never
			// null-padded. The count is surfaced for diagnostics.
			report.DroppedItems++
			continue
		}
		out = append(out, Item{
			Name:  name,
			Price: coercePrice(firstValue(it, priceKeys)),
			Desc:  firstString(it, descKeys),
		})
	}
	return out
}

// asMap coerces a raw value to an object, treating nil and non-objects as
// an empty object.
func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// firstString resolves a field through its ordered synonym list: the first
// present key with a non-empty scalar value wins.
func firstString(m map[string]any, keys []string) string {
	for _, key := range keys {
		if s := toString(m[key]); s != "" {
			return s
		}
	}
	return ""
}

// firstValue returns the first present, non-nil value among the keys.
func firstValue(m map[string]any, keys []string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// toString renders scalar values as display strings. JSON numbers drop
// their trailing zeros; objects and arrays are not display values.
func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// coercePrice applies the price rules: numbers pass through, strings are
// stripped down to digits and the decimal point and parsed, everything
// else stays empty.
func coercePrice(v any) Price {
	switch t := v.(type) {
	case float64:
		return PriceOf(t)
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, t)
		if cleaned == "" {
			return Price{}
		}
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return Price{}
		}
		return PriceOf(n)
	default:
		return Price{}
	}
}

// digitsOnly strips every non-digit character.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
