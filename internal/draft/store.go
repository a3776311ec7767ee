// Package draft persists menu drafts between sessions: one current draft
// blob under a fixed key, the last-selected theme and template, and named
// snapshots for point-in-time copies.
package draft

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/clientfirst-digital/menuengine/internal/menu"
)

// ErrNoDraft is returned when no draft exists under the requested key.
var ErrNoDraft = errors.New("no draft found")

// Fixed keys for the persisted session state.
const (
	keyMenu     = "menu_v1"
	keyTheme    = "theme"
	keyTemplate = "template"
)

// Store is a SQLite-backed draft store.
type Store struct {
	db *sql.DB
}

// Open creates or opens the draft database at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating draft directory: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening draft store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging draft store: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating draft store: %w", err)
	}
	return s, nil
}

// OpenMemory creates an in-memory store, useful for tests.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory draft store: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating draft store: %w", err)
	}
	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS drafts (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
CREATE TABLE IF NOT EXISTS snapshots (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    value TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// SaveMenu serializes the canonical menu into the fixed draft slot.
func (s *Store) SaveMenu(m *menu.Menu) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("serializing draft: %w", err)
	}
	return s.put(keyMenu, string(data))
}

// LoadMenu returns the raw draft blob. The caller runs it back through the
// relaxed parser and the normalizer; the store does not interpret it.
func (s *Store) LoadMenu() (string, error) {
	return s.get(keyMenu)
}

// ClearMenu removes the current draft.
func (s *Store) ClearMenu() error {
	_, err := s.db.Exec(`DELETE FROM drafts WHERE key = ?`, keyMenu)
	return err
}

// SaveSelections remembers the last-selected template and theme.
func (s *Store) SaveSelections(tpl, thm string) error {
	if err := s.put(keyTemplate, tpl); err != nil {
		return err
	}
	return s.put(keyTheme, thm)
}

// Selections returns the remembered template and theme, empty when unset.
func (s *Store) Selections() (tpl, thm string, err error) {
	tpl, err = s.get(keyTemplate)
	if err != nil && !errors.Is(err, ErrNoDraft) {
		return "", "", err
	}
	thm, err = s.get(keyTheme)
	if err != nil && !errors.Is(err, ErrNoDraft) {
		return "", "", err
	}
	return tpl, thm, nil
}

// SnapshotInfo describes a stored snapshot.
type SnapshotInfo struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Snapshot stores a named point-in-time copy of the menu and returns its
// generated ID.
func (s *Store) Snapshot(m *menu.Menu, name string) (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("serializing snapshot: %w", err)
	}
	id := uuid.NewString()
	_, err = s.db.Exec(`INSERT INTO snapshots (id, name, value) VALUES (?, ?, ?)`, id, name, string(data))
	if err != nil {
		return "", fmt.Errorf("storing snapshot: %w", err)
	}
	return id, nil
}

// Snapshots lists stored snapshots, newest first.
func (s *Store) Snapshots() ([]SnapshotInfo, error) {
	rows, err := s.db.Query(`SELECT id, name, created_at FROM snapshots ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// LoadSnapshot returns the raw blob of the snapshot with the given ID.
func (s *Store) LoadSnapshot(id string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM snapshots WHERE id = ?`, id).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoDraft
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO drafts (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	return err
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM drafts WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoDraft
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
