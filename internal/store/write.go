package store

import (
	"fmt"
	"strings"
	"time"
)

// Plays shorter than this are considered skips and are not recorded.
const minPlayed = 30 * time.Second

// ListenImport is one playback record from a streaming-history export or the
// recently-played API.
type ListenImport struct {
	Time     time.Time
	Track    string
	Artist   string
	Album    string
	PlayedMS int64
}

// ImportListens inserts a batch of playback records transactionally. Records
// below the minimum play duration are skipped, and records already present
// (same timestamp, track, and artist) are ignored, so re-importing the same
// export files is idempotent. Returns the number of rows actually added.
func (s *Store) ImportListens(records []ListenImport) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR IGNORE INTO Listen (ts, track, artist, album, ms_played) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, r := range records {
		if time.Duration(r.PlayedMS)*time.Millisecond < minPlayed {
			continue
		}
		if r.Track == "" || r.Artist == "" {
			continue
		}
		res, err := stmt.Exec(r.Time.Format(time.RFC3339), r.Track, r.Artist, r.Album, r.PlayedMS)
		if err != nil {
			return 0, fmt.Errorf("inserting listen: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return added, nil
}

// SetArtistGenres records the genre labels for an artist. An empty list is
// stored as "Unknown" so the artist is not re-fetched on every enrichment
// run.
func (s *Store) SetArtistGenres(artist string, genres []string) error {
	joined := "Unknown"
	if len(genres) > 0 {
		joined = strings.Join(genres, ", ")
	}
	_, err := s.db.Exec(
		"INSERT INTO ArtistGenre (artist, genres, updated) VALUES (?, ?, ?) "+
			"ON CONFLICT(artist) DO UPDATE SET genres = excluded.genres, updated = excluded.updated",
		artist, joined, time.Now())
	if err != nil {
		return fmt.Errorf("storing genres for %q: %w", artist, err)
	}
	return nil
}
