package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clientfirst-digital/menuengine/internal/menu"
	"github.com/clientfirst-digital/menuengine/internal/relaxed"
	"github.com/clientfirst-digital/menuengine/internal/template"
	"github.com/clientfirst-digital/menuengine/internal/theme"
)

var validateCmd = &cobra.Command{
	Use:   "validate <menu.json>",
	Short: "Check a menu document and report what normalization would change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		raw, err := relaxed.Parse(string(text))
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		m, report := menu.NormalizeWithReport(raw, template.Default, theme.Default)

		items := 0
		for _, cat := range m.Categories {
			items += len(cat.Items)
		}

		fmt.Printf("%s: OK\n", args[0])
		fmt.Printf("  name:       %s\n", m.Name)
		fmt.Printf("  categories: %d\n", len(m.Categories))
		fmt.Printf("  items:      %d\n", items)
		fmt.Printf("  template:   %s\n", m.Template)
		fmt.Printf("  theme:      %s\n", m.Theme)
		if report.DroppedItems > 0 {
			fmt.Printf("  dropped:    %d item(s) without a name\n", report.DroppedItems)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
