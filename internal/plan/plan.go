// Package plan maps a subscription plan name to the set of features
// visible in the builder and the exported viewer.
package plan

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default is the plan assumed when none is configured.
const Default = "premium"

// Table maps plan names to their feature lists.
type Table map[string][]string

// DefaultTable returns the shipped plan definitions.
func DefaultTable() Table {
	return Table{
		"basic":    {"qr", "basic-menu"},
		"standard": {"qr", "whatsapp", "map", "reviews"},
		"premium":  {"qr", "whatsapp", "map", "reviews", "banner", "themes"},
	}
}

// Features returns the feature list for the named plan. Unknown plans get
// the basic feature set.
func (t Table) Features(name string) []string {
	if features, ok := t[name]; ok {
		return features
	}
	return t["basic"]
}

// Allowed reports whether the named plan includes the feature.
func (t Table) Allowed(name, feature string) bool {
	for _, f := range t.Features(name) {
		if f == feature {
			return true
		}
	}
	return false
}

// planFile is the on-disk shape of a single plan definition.
type planFile struct {
	Features []string `json:"features"`
}

// LoadFile reads a plan definition document and installs it in the table
// under the given plan name.
func (t Table) LoadFile(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading plan %s: %w", name, err)
	}
	var pf planFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parsing plan %s: %w", name, err)
	}
	if pf.Features == nil {
		return fmt.Errorf("plan %s: missing features list", name)
	}
	t[name] = pf.Features
	return nil
}
