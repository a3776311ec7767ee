package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build [menu.json]",
	Short: "Export one or many menus as single-file offline viewers",
	Long: `Reads a menu document (JSON, with comments, trailing commas and curly
quotes allowed), normalizes it, and writes a self-contained HTML viewer
with no external references. Use --glob to export a whole set of menus
in one run.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("glob", "", "export every menu matching this glob (e.g. 'menus/**/*.json')")
	buildCmd.Flags().String("template", "", "template to render with (overrides config and document)")
	buildCmd.Flags().String("theme", "", "theme to apply (overrides config and document)")
	buildCmd.Flags().StringP("output", "o", "", "output directory (overrides config)")
	buildCmd.Flags().String("about", "", "markdown file rendered into the viewer's about section")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if tpl, _ := cmd.Flags().GetString("template"); tpl != "" {
		cfg.Template = tpl
	}
	if thm, _ := cmd.Flags().GetString("theme"); thm != "" {
		cfg.Theme = thm
	}
	outDir := cfg.OutputDir
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		outDir = out
	}

	p := newPipeline(cfg)

	if aboutFile, _ := cmd.Flags().GetString("about"); aboutFile != "" {
		about, err := renderAbout(aboutFile)
		if err != nil {
			return err
		}
		p.runner.About = about
	}

	pattern, _ := cmd.Flags().GetString("glob")
	if pattern != "" {
		return runBatch(ctx, p, pattern, outDir)
	}

	if len(args) != 1 {
		return fmt.Errorf("expected a menu file argument (or --glob)")
	}

	artifact, name, report, err := p.runner.File(ctx, args[0])
	if err != nil {
		return err
	}
	if report.DroppedItems > 0 {
		fmt.Fprintf(os.Stderr, "Warning: dropped %d item(s) without a name\n", report.DroppedItems)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	outPath := filepath.Join(outDir, name)
	if err := os.WriteFile(outPath, artifact, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(artifact))
	return nil
}

func runBatch(ctx context.Context, p *pipeline, pattern, outDir string) error {
	results, err := p.runner.Batch(ctx, pattern, outDir)
	if err != nil {
		return err
	}

	ok := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Failed: %s: %v\n", res.Source, res.Err)
			continue
		}
		ok++
		if verbose {
			fmt.Printf("  %s -> %s\n", res.Source, res.Output)
		}
	}
	fmt.Printf("Exported %d/%d menu(s) to %s\n", ok, len(results), outDir)
	if ok < len(results) {
		return fmt.Errorf("%d menu(s) failed to export", len(results)-ok)
	}
	return nil
}
