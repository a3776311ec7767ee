// Package menu defines the canonical menu model and the normalizer that
// maps arbitrarily shaped raw documents into it.
package menu

import (
	"encoding/json"
	"strconv"
)

// Menu is the canonical, normalized representation of a restaurant menu,
// independent of the shape of the input document.
type Menu struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"` // digits only, or empty
	Maps     string `json:"maps"`
	Template string `json:"template"`
	Theme    string `json:"theme"`

	// Categories render in insertion order; the order defines both the
	// layout and the navigation chips in the exported viewer.
	Categories []Category `json:"categories"`
}

// Category is an ordered group of items under a display heading.
type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Item is a single menu entry. Every item in a canonical Menu has a
// non-empty Name; the normalizer drops entries that cannot resolve one.
type Item struct {
	Name  string `json:"name"`
	Price Price  `json:"price"`
	Desc  string `json:"desc"`
}

// Price is a numeric value that may be absent. Absent is distinct from
// zero: an unparseable or missing source price stays empty rather than
// becoming 0. It marshals as a JSON number, or as "" when empty.
type Price struct {
	Value float64
	Set   bool
}

// PriceOf returns a set Price with the given value.
func PriceOf(v float64) Price {
	return Price{Value: v, Set: true}
}

// String formats the price without trailing zeros, or "" when empty.
func (p Price) String() string {
	if !p.Set {
		return ""
	}
	return strconv.FormatFloat(p.Value, 'f', -1, 64)
}

// MarshalJSON writes the numeric value, or an empty string when unset,
// matching the shape the normalizer accepts back (idempotence).
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Set {
		return []byte(`""`), nil
	}
	return []byte(strconv.FormatFloat(p.Value, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts a number, a numeric string, or anything else
// (which leaves the price empty).
func (p *Price) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = coercePrice(v)
	return nil
}
