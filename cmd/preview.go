package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/clientfirst-digital/menuengine/internal/preview"
	"github.com/clientfirst-digital/menuengine/internal/relaxed"
	"github.com/clientfirst-digital/menuengine/internal/state"
)

var previewCmd = &cobra.Command{
	Use:   "preview <menu.json>",
	Short: "Serve a live builder preview that reloads on file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	previewCmd.Flags().Bool("open", false, "open the builder page in a browser")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}

	p := newPipeline(cfg)
	app := state.New(p.templates, p.themes, cfg.Template, cfg.Theme)

	// Initial load; a broken document is reported but the server still
	// starts so edits can fix it live.
	menuPath := args[0]
	text, err := os.ReadFile(menuPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", menuPath, err)
	}
	if raw, perr := relaxed.Parse(string(text)); perr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", menuPath, perr)
	} else {
		_, report := app.SetMenu(raw)
		if report.DroppedItems > 0 {
			fmt.Fprintf(os.Stderr, "Warning: dropped %d item(s) without a name\n", report.DroppedItems)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p.applier.Apply(ctx, app.Theme())

	srv := preview.New(app, p.manager, p.themes, p.applier, p.plans, cfg.Plan)
	srv.MenuPath = menuPath

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Printf("Builder preview on %s (watching %s, Ctrl+C to stop)\n", url, menuPath)

	if open, _ := cmd.Flags().GetBool("open"); open {
		go func() {
			time.Sleep(300 * time.Millisecond)
			openBrowser(url)
		}()
	}

	return srv.Run(ctx, fmt.Sprintf(":%d", cfg.Port))
}
