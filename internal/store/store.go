// Package store persists the listening log and the per-artist genre cache in
// a local SQLite database, and loads them back as an in-memory dataset.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	query := `
CREATE TABLE IF NOT EXISTS Listen (
  ts TEXT NOT NULL,
  track TEXT NOT NULL,
  artist TEXT NOT NULL,
  album TEXT,
  ms_played INTEGER NOT NULL,
  PRIMARY KEY (ts, track, artist)
);

CREATE TABLE IF NOT EXISTS ArtistGenre (
  artist TEXT PRIMARY KEY,
  genres TEXT NOT NULL,
  updated DATETIME
);
`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}
