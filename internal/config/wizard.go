package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/clientfirst-digital/menuengine/internal/template"
	"github.com/clientfirst-digital/menuengine/internal/theme"
)

// RunWizard runs an interactive configuration wizard and saves the
// resulting Config to .menuengine.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to menuengine! Let's set up your menu project.")
	fmt.Println()

	cfg := DefaultConfig()

	templatePrompt := promptui.Select{
		Label: "Default template",
		Items: template.NewRegistry().Names(),
	}
	_, tpl, err := templatePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("template selection: %w", err)
	}
	cfg.Template = tpl

	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: theme.NewRegistry().Names(),
	}
	_, thm, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Theme = thm

	planPrompt := promptui.Select{
		Label: "Plan",
		Items: []string{"basic", "standard", "premium"},
	}
	_, planName, err := planPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("plan selection: %w", err)
	}
	cfg.Plan = planName

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for exported viewers",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	domainPrompt := promptui.Prompt{
		Label:   "Published base URL for QR codes (leave blank to skip)",
		Default: "",
	}
	domain, err := domainPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("domain: %w", err)
	}
	cfg.Domain = domain

	portPrompt := promptui.Prompt{
		Label:   "Preview server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			_, convErr := strconv.Atoi(s)
			return convErr
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	configPath := ".menuengine.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
