package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Template != "two-col" || cfg.Theme != "classic" {
		t.Errorf("defaults = %q/%q", cfg.Template, cfg.Theme)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("OutputDir = %q, want dist", cfg.OutputDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".menuengine.yml")
	content := `template: grid
theme: neon
output_dir: out
plan: standard
themes:
  amber: ./themes/amber.json
domain: https://menu.example.com
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Template != "grid" || cfg.Theme != "neon" {
		t.Errorf("selections = %q/%q", cfg.Template, cfg.Theme)
	}
	if cfg.OutputDir != "out" || cfg.Plan != "standard" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Themes["amber"] != "./themes/amber.json" {
		t.Errorf("Themes = %v", cfg.Themes)
	}
	// Values the file does not set keep their defaults.
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want default", cfg.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MENUENGINE_TEMPLATE", "grid")
	t.Setenv("MENUENGINE_PORT", "9000")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Template != "grid" {
		t.Errorf("Template = %q, want env override", cfg.Template)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want env override", cfg.Port)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".menuengine.yml")

	cfg := DefaultConfig()
	cfg.Template = "grid"
	cfg.Domain = "https://menu.example.com"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Template != "grid" || loaded.Domain != "https://menu.example.com" {
		t.Errorf("round-trip = %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	bad := DefaultConfig()
	bad.OutputDir = ""
	if err := bad.Validate(); err == nil {
		t.Error("empty output_dir should fail validation")
	}

	bad = DefaultConfig()
	bad.Port = -1
	if err := bad.Validate(); err == nil {
		t.Error("negative port should fail validation")
	}
}
