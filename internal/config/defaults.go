package config

import (
	"github.com/clientfirst-digital/menuengine/internal/plan"
	"github.com/clientfirst-digital/menuengine/internal/template"
	"github.com/clientfirst-digital/menuengine/internal/theme"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Template:  template.Default,
		Theme:     theme.Default,
		OutputDir: "dist",
		DraftDB:   ".menuengine/drafts.db",
		Plan:      plan.Default,
		Port:      8080,
	}
}
