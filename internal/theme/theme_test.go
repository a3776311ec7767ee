package theme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()
	tests := []struct {
		in, want string
	}{
		{"classic", "classic"},
		{"neon", "neon"},
		{"no-such-theme", "classic"},
		{"", "classic"},
	}
	for _, tt := range tests {
		if got := reg.Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyBuiltin(t *testing.T) {
	a := NewApplier(NewRegistry())
	a.Apply(context.Background(), "neon")

	if a.Active() != "neon" {
		t.Errorf("Active = %q, want neon", a.Active())
	}
	if got := a.Snapshot()["bg"]; got != "#0a0014" {
		t.Errorf("bg = %q, want neon background", got)
	}
}

func TestApplyUnknownFallsBackToDefault(t *testing.T) {
	a := NewApplier(NewRegistry())
	a.Apply(context.Background(), "does-not-exist")
	if a.Active() != "classic" {
		t.Errorf("Active = %q, want classic", a.Active())
	}
}

func TestApplyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amber.json")
	if err := os.WriteFile(path, []byte(`{"bg":"#111","ink":"#eee","brand":"#fa0"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry()
	reg.Register("amber", path)
	a := NewApplier(reg)
	a.Apply(context.Background(), "amber")

	if a.Active() != "amber" {
		t.Fatalf("Active = %q, want amber", a.Active())
	}
	snap := a.Snapshot()
	if snap["bg"] != "#111" || snap["brand"] != "#fa0" {
		t.Errorf("snapshot = %v", snap)
	}
	// Variables the theme does not set fall back to the defaults.
	if snap["muted"] == "" {
		t.Error("unset variable should fall back, not vanish")
	}
}

func TestApplyFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bg":"#222222","accent":"#00ff00"}`))
	}))
	defer srv.Close()

	reg := NewRegistry()
	reg.Register("remote", srv.URL)
	a := NewApplier(reg)
	a.Apply(context.Background(), "remote")

	if got := a.Snapshot()["accent"]; got != "#00ff00" {
		t.Errorf("accent = %q, want remote value", got)
	}
}

func TestApplyFailureKeepsPreviousVars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	reg := NewRegistry()
	reg.Register("broken", srv.URL)
	a := NewApplier(reg)
	a.Apply(context.Background(), "neon")
	before := a.Snapshot()

	a.Apply(context.Background(), "broken")

	if a.Active() != "neon" {
		t.Errorf("Active = %q, want neon (failed apply must not switch)", a.Active())
	}
	after := a.Snapshot()
	for _, name := range VarNames {
		if before[name] != after[name] {
			t.Errorf("var %s changed on failed apply: %q -> %q", name, before[name], after[name])
		}
	}
}

func TestSnapshotEnumeratesAllVarNames(t *testing.T) {
	snap := NewApplier(NewRegistry()).Snapshot()
	if len(snap) != len(VarNames) {
		t.Fatalf("snapshot has %d vars, want %d", len(snap), len(VarNames))
	}
	for _, name := range VarNames {
		if snap[name] == "" {
			t.Errorf("var %s missing from snapshot", name)
		}
	}
}
