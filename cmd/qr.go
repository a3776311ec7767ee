package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clientfirst-digital/menuengine/internal/menu"
	"github.com/clientfirst-digital/menuengine/internal/qr"
	"github.com/clientfirst-digital/menuengine/internal/relaxed"
	"github.com/clientfirst-digital/menuengine/internal/template"
	"github.com/clientfirst-digital/menuengine/internal/theme"
)

var qrCmd = &cobra.Command{
	Use:   "qr [menu.json]",
	Short: "Generate a QR code PNG pointing at the published menu",
	Long: `Generates a QR code for the published menu URL. The target is either an
explicit --url, or built from the configured domain and the menu's slug
(domain/<slug>/index.html).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQR,
}

func init() {
	qrCmd.Flags().String("url", "", "exact URL to encode")
	qrCmd.Flags().String("slug", "", "published slug (overrides the menu name's slug)")
	qrCmd.Flags().String("domain", "", "published base URL (overrides config)")
	qrCmd.Flags().Int("size", 256, "image size in pixels")
	qrCmd.Flags().StringP("output", "o", "menu-qr.png", "output PNG path")
	rootCmd.AddCommand(qrCmd)
}

func runQR(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("url")

	if target == "" {
		domain, _ := cmd.Flags().GetString("domain")
		if domain == "" {
			if cfg, err := loadConfig(); err == nil {
				domain = cfg.Domain
			}
		}

		slug, _ := cmd.Flags().GetString("slug")
		if slug == "" && len(args) == 1 {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			raw, err := relaxed.Parse(string(text))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			m := menu.Normalize(raw, template.Default, theme.Default)
			slug = template.Slugify(m.Name)
		}

		if domain == "" || slug == "" {
			return qr.ErrNoTarget
		}
		target = qr.PublishedURL(domain, slug)
	}

	size, _ := cmd.Flags().GetInt("size")
	png, err := qr.PNG(target, size)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if err := os.WriteFile(out, png, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Wrote %s -> %s\n", out, target)
	return nil
}
