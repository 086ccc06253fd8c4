// Package sqlite implements the durable snapshot store on SQLite.
// One row per key in a plain key-value table; the whole AppState lives
// under a single key, so a save is one UPSERT and a load is one SELECT.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/fabrica-tools/costbook/pkg/types"
)

// DBFileName is the SQLite database file created inside the data directory.
const DBFileName = "costbook.db"

// The database is the source of truth and must survive restarts, so the
// schema is created idempotently and the file is never removed on attach.
const schemaSQL = `CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

// Store implements types.Store on a SQLite database file.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// Compile-time interface check.
var _ types.Store = (*Store)(nil)

// NewStore creates an unattached Store; call Attach with a Config.
func NewStore() *Store {
	return &Store{}
}

// Attach opens (or creates) the database under config.DataDir and prepares
// the schema. Returns types.ErrAlreadyAttached on a second call.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return &types.StorageError{Op: "attach", Err: err}
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return &types.StorageError{Op: "attach", Err: err}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return &types.StorageError{Op: "attach", Err: err}
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent; after Detach all operations
// return types.ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return &types.StorageError{Op: "detach", Err: err}
		}
		s.db = nil
	}

	s.attached = false
	return nil
}

// Get returns the value stored under key, or ok=false when absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, false, types.ErrStoreDetached
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM app_state WHERE key = ?", key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &types.StorageError{Op: "get", Err: err}
	}
	return []byte(value), true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	if err != nil {
		return &types.StorageError{Op: "put", Err: err}
	}
	return nil
}

// Clear removes every stored value.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM app_state"); err != nil {
		return &types.StorageError{Op: "clear", Err: err}
	}
	return nil
}
