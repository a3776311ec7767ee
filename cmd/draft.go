package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clientfirst-digital/menuengine/internal/draft"
	"github.com/clientfirst-digital/menuengine/internal/menu"
	"github.com/clientfirst-digital/menuengine/internal/relaxed"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Save, load and snapshot work-in-progress menus locally",
}

var draftSaveCmd = &cobra.Command{
	Use:   "save <menu.json>",
	Short: "Normalize a menu document and store it as the current draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		text, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		raw, err := relaxed.Parse(string(text))
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		m, report := menu.NormalizeWithReport(raw, cfg.Template, cfg.Theme)
		if report.DroppedItems > 0 {
			fmt.Fprintf(os.Stderr, "Warning: dropped %d item(s) without a name\n", report.DroppedItems)
		}

		store, err := draft.Open(cfg.DraftDB)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SaveMenu(m); err != nil {
			return err
		}
		if err := store.SaveSelections(m.Template, m.Theme); err != nil {
			return err
		}
		fmt.Printf("Draft saved (%s, %d categories)\n", m.Name, len(m.Categories))
		return nil
	},
}

var draftLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Print the current draft menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := draft.Open(cfg.DraftDB)
		if err != nil {
			return err
		}
		defer store.Close()

		blob, err := store.LoadMenu()
		if errors.Is(err, draft.ErrNoDraft) {
			return fmt.Errorf("no draft saved yet; run `menuengine draft save <menu.json>` first")
		}
		if err != nil {
			return err
		}

		if out, _ := cmd.Flags().GetString("output"); out != "" {
			if err := os.WriteFile(out, []byte(blob+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		}
		fmt.Println(blob)
		return nil
	},
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the current draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := draft.Open(cfg.DraftDB)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ClearMenu(); err != nil {
			return err
		}
		fmt.Println("Draft cleared")
		return nil
	},
}

var draftSnapshotCmd = &cobra.Command{
	Use:   "snapshot [name]",
	Short: "Store a named point-in-time copy of the current draft",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := draft.Open(cfg.DraftDB)
		if err != nil {
			return err
		}
		defer store.Close()

		blob, err := store.LoadMenu()
		if errors.Is(err, draft.ErrNoDraft) {
			return fmt.Errorf("no draft to snapshot; run `menuengine draft save <menu.json>` first")
		}
		if err != nil {
			return err
		}
		raw, err := relaxed.Parse(blob)
		if err != nil {
			return fmt.Errorf("stored draft is unreadable: %w", err)
		}
		m := menu.Normalize(raw, cfg.Template, cfg.Theme)

		name := m.Name
		if len(args) == 1 {
			name = args[0]
		}
		id, err := store.Snapshot(m, name)
		if err != nil {
			return err
		}
		fmt.Printf("Snapshot %q stored (%s)\n", name, id)
		return nil
	},
}

var draftSnapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List stored snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := draft.Open(cfg.DraftDB)
		if err != nil {
			return err
		}
		defer store.Close()

		infos, err := store.Snapshots()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("No snapshots stored")
			return nil
		}
		for _, info := range infos {
			fmt.Printf("%s  %s  %s\n", info.ID, info.CreatedAt.Format("2006-01-02 15:04"), info.Name)
		}
		return nil
	},
}

var draftRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Make a snapshot the current draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := draft.Open(cfg.DraftDB)
		if err != nil {
			return err
		}
		defer store.Close()

		blob, err := store.LoadSnapshot(args[0])
		if errors.Is(err, draft.ErrNoDraft) {
			return fmt.Errorf("no snapshot with id %s", args[0])
		}
		if err != nil {
			return err
		}
		raw, err := relaxed.Parse(blob)
		if err != nil {
			return fmt.Errorf("stored snapshot is unreadable: %w", err)
		}
		m := menu.Normalize(raw, cfg.Template, cfg.Theme)
		if err := store.SaveMenu(m); err != nil {
			return err
		}
		fmt.Printf("Restored %q as the current draft\n", m.Name)
		return nil
	},
}

func init() {
	draftLoadCmd.Flags().StringP("output", "o", "", "write the draft to a file instead of stdout")
	draftCmd.AddCommand(draftSaveCmd, draftLoadCmd, draftClearCmd, draftSnapshotCmd, draftSnapshotsCmd, draftRestoreCmd)
	rootCmd.AddCommand(draftCmd)
}
