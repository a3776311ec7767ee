package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/clientfirst-digital/menuengine/internal/menu"
	"github.com/clientfirst-digital/menuengine/internal/plan"
	"github.com/clientfirst-digital/menuengine/internal/state"
	"github.com/clientfirst-digital/menuengine/internal/template"
	"github.com/clientfirst-digital/menuengine/internal/theme"
)

func newTestServer(t *testing.T) (*Server, *state.App) {
	t.Helper()
	templates := template.NewRegistry()
	themes := theme.NewRegistry()
	app := state.New(templates, themes, template.Default, theme.Default)
	applier := theme.NewApplier(themes)
	applier.Apply(context.Background(), theme.Default)
	srv := New(app, template.NewManager(templates), themes, applier, plan.DefaultTable(), "premium")
	return srv, app
}

func loadSample(app *state.App) {
	raw, _ := json.Marshal(menu.Sample())
	var doc any
	json.Unmarshal(raw, &doc)
	app.SetMenu(doc)
}

func TestIndexServesBuilderPage(t *testing.T) {
	srv, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	if !strings.Contains(buf.String(), "Menu Engine") {
		t.Error("builder page missing title")
	}
}

func TestMenuEndpointWithoutMenu(t *testing.T) {
	srv, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/menu")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRenderEndpoint(t *testing.T) {
	srv, app := newTestServer(t)
	loadSample(app)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/render")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	if !strings.Contains(buf.String(), "Junk House") {
		t.Error("rendered fragment missing restaurant name")
	}
}

func TestBusinessUpdate(t *testing.T) {
	srv, app := newTestServer(t)
	loadSample(app)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	body := `{"name":"Cafe X","phone":"+91 98765 43210","whatsapp":"+91 98765-43210"}`
	resp, err := http.Post(ts.URL+"/api/business", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	m := app.Menu()
	if m.Name != "Cafe X" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Whatsapp != "919876543210" {
		t.Errorf("Whatsapp = %q, want digits only", m.Whatsapp)
	}
}

func TestSelectSwitchesTemplateAndTheme(t *testing.T) {
	srv, app := newTestServer(t)
	loadSample(app)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/select", "application/json",
		strings.NewReader(`{"template":"grid","theme":"neon"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var got map[string]string
	json.NewDecoder(resp.Body).Decode(&got)
	if got["template"] != "grid" || got["theme"] != "neon" {
		t.Errorf("select response = %v", got)
	}
	if app.Template() != "grid" {
		t.Errorf("app template = %q", app.Template())
	}
	if srv.applier.Active() != "neon" {
		t.Errorf("active theme = %q", srv.applier.Active())
	}
}

func TestSelectUnknownFallsBack(t *testing.T) {
	srv, app := newTestServer(t)
	loadSample(app)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/select", "application/json",
		strings.NewReader(`{"template":"holographic"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var got map[string]string
	json.NewDecoder(resp.Body).Decode(&got)
	if got["template"] != template.Default {
		t.Errorf("template = %q, want default", got["template"])
	}
	if app.Template() != template.Default {
		t.Errorf("app template = %q", app.Template())
	}
}

func TestExportEndpoint(t *testing.T) {
	srv, app := newTestServer(t)
	loadSample(app)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/export")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	doc := buf.String()
	if !strings.Contains(doc, "<!doctype html>") {
		t.Error("export missing document shell")
	}
	if strings.Contains(doc, "<script src=") {
		t.Error("export references external script")
	}
}

func TestExportWithoutMenuConflicts(t *testing.T) {
	srv, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/export")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want 409", resp.StatusCode)
	}
}

func TestWebsocketReceivesReload(t *testing.T) {
	srv, app := newTestServer(t)
	loadSample(app)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	// Give the server a moment to register the connection.
	time.Sleep(50 * time.Millisecond)
	srv.broadcast("reload")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if string(msg) != "reload" {
		t.Errorf("message = %q", msg)
	}
}

func TestReloadMenuFromDisk(t *testing.T) {
	srv, app := newTestServer(t)
	loadSample(app)

	path := filepath.Join(t.TempDir(), "menu.json")
	doc := `{
  // trailing commas and comments are fine
  "restaurant": "Cafe X",
  "sections": [
    {"title": "Drinks", "dishes": [{"item": "Tea", "cost": "₹20"}]},
  ],
}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	srv.MenuPath = path

	srv.reloadMenu()
	m := app.Menu()
	if m.Name != "Cafe X" {
		t.Errorf("Name = %q", m.Name)
	}
	if len(m.Categories) != 1 || m.Categories[0].Name != "Drinks" {
		t.Fatalf("categories = %+v", m.Categories)
	}
}

func TestReloadKeepsPreviousOnParseFailure(t *testing.T) {
	srv, app := newTestServer(t)
	loadSample(app)
	before := app.Menu().Name

	path := filepath.Join(t.TempDir(), "menu.json")
	if err := os.WriteFile(path, []byte("{{{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv.MenuPath = path

	srv.reloadMenu()
	if app.Menu().Name != before {
		t.Errorf("menu replaced despite parse failure")
	}
}
