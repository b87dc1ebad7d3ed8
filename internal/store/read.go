package store

import (
	"fmt"
	"time"

	"spotiquery/internal/dataset"
	"spotiquery/internal/model"
)

// LoadDataset reads the full listening log into memory, joined with the
// per-artist genre cache. Rows come back in insertion order, which becomes
// the dataset's store order for the lifetime of the session.
func (s *Store) LoadDataset() (*dataset.Dataset, error) {
	query := `
		SELECT l.ts, l.track, l.artist, COALESCE(l.album, ''), l.ms_played,
		       COALESCE(g.genres, '')
		FROM Listen l
		LEFT JOIN ArtistGenre g ON g.artist = l.artist
		ORDER BY l.rowid
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying listens: %w", err)
	}
	defer rows.Close()

	var events []model.Listen
	for rows.Next() {
		var ts string
		var e model.Listen
		var ms int64
		if err := rows.Scan(&ts, &e.Track, &e.Artist, &e.Album, &ms, &e.Genres); err != nil {
			return nil, fmt.Errorf("scanning listen: %w", err)
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		e.Time = t
		e.Played = time.Duration(ms) * time.Millisecond
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading listens: %w", err)
	}

	return dataset.New(events), nil
}

// ArtistsNeedingGenres returns the distinct artists in the listening log
// whose genre entry is missing or older than the given interval.
func (s *Store) ArtistsNeedingGenres(interval time.Duration) ([]string, error) {
	threshold := time.Now().Add(-interval)
	query := `
		SELECT DISTINCT l.artist
		FROM Listen l
		LEFT JOIN ArtistGenre g ON g.artist = l.artist
		WHERE g.artist IS NULL OR g.updated IS NULL OR g.updated < ?
		ORDER BY l.artist
	`
	rows, err := s.db.Query(query, threshold)
	if err != nil {
		return nil, fmt.Errorf("querying artists needing genres: %w", err)
	}
	defer rows.Close()

	var artists []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}
