// Package store provides SQLite-backed persistence for ttrack: a shared
// database handle plus the Days and Tasks repositories built on top of it.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store holds the database handle shared by the repositories. One command
// invocation opens one Store and owns it for its lifetime.
type Store struct {
	db *sql.DB
}

// Open opens the database at dbPath, creating the file and its directory
// if needed, and runs migrations.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	// Open with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer at a time
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs idempotent schema migrations.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS days (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day_id INTEGER NOT NULL,
		start TEXT NOT NULL,
		end TEXT,
		description TEXT NOT NULL,
		FOREIGN KEY (day_id) REFERENCES days(id)
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_day_id ON tasks(day_id);
	`

	_, err := s.db.Exec(schema)
	return err
}
