// Package store persists transactions, user overrides, category labels
// and archived statement files in a single SQLite database, and seeds
// the category knowledge the categorization engine reads.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schema string

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store wraps the SQLite handle. OnCategoriesChanged, when set, is
// called after any write that can shift embedding centroids so the
// engine can drop its cache.
type Store struct {
	db *sql.DB

	OnCategoriesChanged func()
}

// Open opens or creates the database at the given path, applies the
// schema and seeds the default category knowledge.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	if err := s.seed(); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) notifyCategoriesChanged() {
	if s.OnCategoriesChanged != nil {
		s.OnCategoriesChanged()
	}
}
