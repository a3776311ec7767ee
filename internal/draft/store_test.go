package draft

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/clientfirst-digital/menuengine/internal/menu"
	"github.com/clientfirst-digital/menuengine/internal/relaxed"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadMenu(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveMenu(menu.Sample()); err != nil {
		t.Fatalf("SaveMenu: %v", err)
	}
	blob, err := s.LoadMenu()
	if err != nil {
		t.Fatalf("LoadMenu: %v", err)
	}

	// The blob round-trips through the normal load pipeline.
	raw, err := relaxed.Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := menu.Normalize(raw, "", "")
	if m.Name != "Junk House" {
		t.Errorf("Name = %q, want Junk House", m.Name)
	}
	if len(m.Categories) != 2 {
		t.Errorf("categories = %d, want 2", len(m.Categories))
	}
}

func TestLoadMenuEmpty(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.LoadMenu(); !errors.Is(err, ErrNoDraft) {
		t.Errorf("LoadMenu on empty store = %v, want ErrNoDraft", err)
	}
}

func TestClearMenu(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveMenu(menu.Sample()); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearMenu(); err != nil {
		t.Fatalf("ClearMenu: %v", err)
	}
	if _, err := s.LoadMenu(); !errors.Is(err, ErrNoDraft) {
		t.Errorf("after clear = %v, want ErrNoDraft", err)
	}
}

func TestSaveMenuOverwrites(t *testing.T) {
	s := openTestStore(t)
	first := menu.Sample()
	if err := s.SaveMenu(first); err != nil {
		t.Fatal(err)
	}
	second := menu.Sample()
	second.Name = "Replaced"
	if err := s.SaveMenu(second); err != nil {
		t.Fatal(err)
	}

	blob, err := s.LoadMenu()
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := relaxed.Parse(blob)
	if m := menu.Normalize(raw, "", ""); m.Name != "Replaced" {
		t.Errorf("Name = %q, want Replaced", m.Name)
	}
}

func TestSelections(t *testing.T) {
	s := openTestStore(t)

	tpl, thm, err := s.Selections()
	if err != nil {
		t.Fatalf("Selections: %v", err)
	}
	if tpl != "" || thm != "" {
		t.Errorf("unset selections = %q/%q, want empty", tpl, thm)
	}

	if err := s.SaveSelections("grid", "neon"); err != nil {
		t.Fatalf("SaveSelections: %v", err)
	}
	tpl, thm, err = s.Selections()
	if err != nil {
		t.Fatal(err)
	}
	if tpl != "grid" || thm != "neon" {
		t.Errorf("selections = %q/%q, want grid/neon", tpl, thm)
	}
}

func TestSnapshots(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Snapshot(menu.Sample(), "before-diwali-prices")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if id == "" {
		t.Fatal("snapshot id is empty")
	}

	list, err := s.Snapshots()
	if err != nil {
		t.Fatalf("Snapshots: %v", err)
	}
	if len(list) != 1 || list[0].ID != id || list[0].Name != "before-diwali-prices" {
		t.Errorf("snapshots = %+v", list)
	}

	blob, err := s.LoadSnapshot(id)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	raw, _ := relaxed.Parse(blob)
	if m := menu.Normalize(raw, "", ""); m.Name != "Junk House" {
		t.Errorf("snapshot Name = %q", m.Name)
	}

	if _, err := s.LoadSnapshot("missing-id"); !errors.Is(err, ErrNoDraft) {
		t.Errorf("LoadSnapshot(missing) = %v, want ErrNoDraft", err)
	}
}

func TestOpenOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts", "menuengine.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.SaveMenu(menu.Sample()); err != nil {
		t.Fatalf("SaveMenu: %v", err)
	}
	if _, err := s.LoadMenu(); err != nil {
		t.Fatalf("LoadMenu: %v", err)
	}
}
