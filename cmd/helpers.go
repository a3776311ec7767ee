package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/yuin/goldmark"

	"github.com/clientfirst-digital/menuengine/internal/config"
	"github.com/clientfirst-digital/menuengine/internal/export"
	"github.com/clientfirst-digital/menuengine/internal/plan"
	"github.com/clientfirst-digital/menuengine/internal/template"
	"github.com/clientfirst-digital/menuengine/internal/theme"
	"github.com/clientfirst-digital/menuengine/internal/viewer"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `menuengine init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// pipeline bundles the registries and pipeline pieces most commands need.
type pipeline struct {
	templates *template.Registry
	themes    *theme.Registry
	manager   *template.Manager
	applier   *theme.Applier
	plans     plan.Table
	runner    *export.Runner
}

// newPipeline wires the rendering pipeline from config: built-in
// templates and themes, plus any extra themes the config points at.
func newPipeline(cfg *config.Config) *pipeline {
	templates := template.NewRegistry()
	themes := theme.NewRegistry()
	for name, location := range cfg.Themes {
		themes.Register(name, location)
	}

	manager := template.NewManager(templates)
	applier := theme.NewApplier(themes)

	plans := plan.DefaultTable()
	for name, path := range cfg.Plans {
		if err := plans.LoadFile(name, path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: plan %s: %v\n", name, err)
		}
	}

	return &pipeline{
		templates: templates,
		themes:    themes,
		manager:   manager,
		applier:   applier,
		plans:     plans,
		runner: &export.Runner{
			Templates:       templates,
			Themes:          themes,
			Applier:         applier,
			Exporter:        viewer.NewExporter(manager),
			DefaultTemplate: cfg.Template,
			DefaultTheme:    cfg.Theme,
			Features:        plans.Features(cfg.Plan),
		},
	}
}

// renderAbout converts a markdown file to HTML for the viewer's about
// section.
func renderAbout(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading about file: %w", err)
	}
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("rendering about markdown: %w", err)
	}
	return buf.String(), nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
