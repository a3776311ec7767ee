// Package preview serves the owner's builder page: a live-rendering
// preview of the current menu that reloads when the source document
// changes on disk.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"

	"github.com/clientfirst-digital/menuengine/internal/plan"
	"github.com/clientfirst-digital/menuengine/internal/state"
	"github.com/clientfirst-digital/menuengine/internal/template"
	"github.com/clientfirst-digital/menuengine/internal/theme"
	"github.com/clientfirst-digital/menuengine/internal/viewer"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server is the builder preview HTTP server.
type Server struct {
	app      *state.App
	manager  *template.Manager
	applier  *theme.Applier
	themes   *theme.Registry
	exporter *viewer.Exporter
	plans    plan.Table
	planName string

	// MenuPath is the watched source document; empty disables watching.
	MenuPath string

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// New creates a Server around the shared application state.
func New(app *state.App, manager *template.Manager, themes *theme.Registry, applier *theme.Applier, plans plan.Table, planName string) *Server {
	return &Server{
		app:      app,
		manager:  manager,
		applier:  applier,
		themes:   themes,
		exporter: viewer.NewExporter(manager),
		plans:    plans,
		planName: planName,
		conns:    map[*websocket.Conn]bool{},
	}
}

// Router builds the preview route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}))

	r.Get("/", s.handleIndex)
	r.Get("/api/menu", s.handleMenu)
	r.Get("/api/render", s.handleRender)
	r.Post("/api/business", s.handleBusiness)
	r.Post("/api/select", s.handleSelect)
	r.Get("/api/themes", s.handleThemes)
	r.Get("/export", s.handleExport)
	r.Get("/ws", s.handleWS)
	return r
}

// Run serves until ctx is cancelled, watching MenuPath when set.
func (s *Server) Run(ctx context.Context, addr string) error {
	if s.MenuPath != "" {
		go s.watch(ctx)
	}

	srv := &http.Server{Addr: addr, Handler: s.Router()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(builderPage))
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	m := s.app.Menu()
	if m == nil {
		http.Error(w, `{"error":"no menu loaded"}`, http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(m)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	m := s.app.Menu()
	if m == nil {
		http.Error(w, "no menu loaded", http.StatusNotFound)
		return
	}
	w.Write([]byte(s.manager.Render(s.app.Template(), m)))
}

func (s *Server) handleBusiness(w http.ResponseWriter, r *http.Request) {
	var b state.Business
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	m := s.app.UpdateBusiness(b)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
	s.broadcast("reload")
}

// selectRequest switches the active template and/or theme.
type selectRequest struct {
	Template string `json:"template,omitempty"`
	Theme    string `json:"theme,omitempty"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	resp := map[string]string{}
	if req.Template != "" {
		resp["template"] = s.app.SetTemplate(req.Template)
	}
	if req.Theme != "" {
		resp["theme"] = s.app.SetTheme(req.Theme)
		s.applier.Apply(r.Context(), resp["theme"])
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
	s.broadcast("reload")
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"themes": s.themes.Names(),
		"active": s.applier.Active(),
		"vars":   s.applier.Snapshot(),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	m := s.app.Menu()
	artifact, err := s.exporter.Export(s.app.Template(), m, s.applier.Snapshot(), viewer.Options{
		Features: s.plans.Features(s.planName),
	})
	if errors.Is(err, viewer.ErrNoMenuLoaded) {
		http.Error(w, "Load a menu first", http.StatusConflict)
		return
	}
	if err != nil {
		log.Printf("preview: export: %v", err)
		http.Error(w, "Export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="viewer.html"`)
	w.Write(artifact)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("preview: websocket upgrade: %v", err)
		return
	}

	s.mu.Lock()
	s.conns[conn] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	// Drain control frames until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("preview: websocket read: %v", err)
			}
			return
		}
	}
}

// broadcast pushes a text message to every connected builder page.
func (s *Server) broadcast(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			delete(s.conns, conn)
			conn.Close()
		}
	}
}
