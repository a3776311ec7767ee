package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clientfirst-digital/menuengine/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .menuengine.yml config file interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard()
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println("Config written to .menuengine.yml")
		fmt.Printf("Next: put your menu in a JSON file and run `menuengine build menu.json` (output goes to %s/)\n", cfg.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
