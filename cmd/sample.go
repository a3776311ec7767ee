package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/clientfirst-digital/menuengine/internal/menu"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a starter menu document",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := menu.Sample()

		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}

		if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
			// Round-trip through the JSON shape so prices keep their
			// number-or-empty-string form.
			var doc any
			if err := json.Unmarshal(data, &doc); err != nil {
				return err
			}
			data, err = yamlv3.Marshal(doc)
			if err != nil {
				return err
			}
		} else {
			data = append(data, '\n')
		}

		if out, _ := cmd.Flags().GetString("output"); out != "" {
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		}
		os.Stdout.Write(data)
		return nil
	},
}

func init() {
	sampleCmd.Flags().StringP("output", "o", "", "write the sample to a file instead of stdout")
	sampleCmd.Flags().Bool("yaml", false, "emit YAML instead of JSON")
	rootCmd.AddCommand(sampleCmd)
}
