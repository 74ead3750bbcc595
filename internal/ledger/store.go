// Package ledger persists the engine's cross-run state in SQLite: the
// uniqueness ledger of every name ever emitted, and the cycle → event
// cache shared by all cultures. Both are write-through — each accepted
// name or assigned event is committed before the call returns, so a
// crash loses at most the in-flight name.
package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store wraps a SQLite connection holding engine state. The engine
// assumes exclusive ownership of the file for the duration of a run.
type Store struct {
	conn  *sqlx.DB
	names map[string]struct{}
}

// Open opens or creates the state database at path and loads the
// emitted-name set into memory.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	s := &Store{conn: conn, names: make(map[string]struct{})}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate state db: %w", err)
	}
	if err := s.loadNames(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS names (
		name TEXT PRIMARY KEY,
		culture TEXT NOT NULL,
		batch_id TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cycles (
		cycle INTEGER PRIMARY KEY,
		event TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_names_batch ON names(batch_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

func (s *Store) loadNames() error {
	var names []string
	if err := s.conn.Select(&names, "SELECT name FROM names"); err != nil {
		return err
	}
	for _, n := range names {
		s.names[n] = struct{}{}
	}
	return nil
}

// Contains reports whether the name was ever emitted, by any culture
// or strategy. The ledger is one namespace.
func (s *Store) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Commit records an accepted name, updating the in-memory set and the
// database in the same call. The ledger never shrinks.
func (s *Store) Commit(name, culture, batchID string) error {
	_, err := s.conn.Exec(
		"INSERT INTO names (name, culture, batch_id, created_at) VALUES (?, ?, ?, ?)",
		name, culture, batchID, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("commit name %q: %w", name, err)
	}
	s.names[name] = struct{}{}
	return nil
}

// Len returns the number of names ever committed.
func (s *Store) Len() int {
	return len(s.names)
}

// CycleEvent looks up the stored event for a cycle number.
func (s *Store) CycleEvent(cycle int) (string, bool, error) {
	var event string
	err := s.conn.Get(&event, "SELECT event FROM cycles WHERE cycle = ?", cycle)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup cycle %d: %w", cycle, err)
	}
	return event, true, nil
}

// PutCycleEvent stores a cycle → event assignment. INSERT OR IGNORE
// keeps the first assignment authoritative if a cycle is ever written
// twice.
func (s *Store) PutCycleEvent(cycle int, event string) error {
	_, err := s.conn.Exec(
		"INSERT OR IGNORE INTO cycles (cycle, event) VALUES (?, ?)",
		cycle, event,
	)
	if err != nil {
		return fmt.Errorf("store cycle %d: %w", cycle, err)
	}
	return nil
}
