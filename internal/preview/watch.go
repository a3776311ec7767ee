package preview

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/clientfirst-digital/menuengine/internal/relaxed"
)

// watch re-reads MenuPath whenever it changes and pushes a reload to
// connected builder pages. A document that no longer parses is logged
// and the previously loaded menu stays in place.
func (s *Server) watch(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("preview: watcher: %v", err)
		return
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file atomically
	// (write to temp, rename over) keep triggering events.
	dir := filepath.Dir(s.MenuPath)
	if err := watcher.Add(dir); err != nil {
		log.Printf("preview: watch %s: %v", dir, err)
		return
	}

	target, _ := filepath.Abs(s.MenuPath)

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			abs, _ := filepath.Abs(ev.Name)
			if abs != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Editors fire bursts of events per save; coalesce them.
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(150*time.Millisecond, s.reloadMenu)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("preview: watcher: %v", err)
		}
	}
}

func (s *Server) reloadMenu() {
	data, err := os.ReadFile(s.MenuPath)
	if err != nil {
		log.Printf("preview: read %s: %v", s.MenuPath, err)
		return
	}
	raw, err := relaxed.Parse(string(data))
	if err != nil {
		log.Printf("preview: %s: %v (keeping previous menu)", s.MenuPath, err)
		return
	}
	_, report := s.app.SetMenu(raw)
	if report.DroppedItems > 0 {
		log.Printf("preview: %s: dropped %d item(s) without a name", s.MenuPath, report.DroppedItems)
	}
	s.applier.Apply(context.Background(), s.app.Theme())
	s.broadcast("reload")
}
