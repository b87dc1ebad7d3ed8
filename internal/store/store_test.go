package store

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func record(ts, track, artist string, playedMS int64) ListenImport {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return ListenImport{Time: parsed, Track: track, Artist: artist, PlayedMS: playedMS}
}

func TestImportListens(t *testing.T) {
	s := setupTestStore(t)

	added, err := s.ImportListens([]ListenImport{
		record("2021-01-05T10:00:00Z", "Water", "Tyla", 180000),
		record("2021-01-06T10:00:00Z", "Jump", "Tyla", 180000),
	})
	if err != nil {
		t.Fatalf("ImportListens: %v", err)
	}
	if added != 2 {
		t.Fatalf("added = %d, want 2", added)
	}
}

func TestImportListensIdempotent(t *testing.T) {
	s := setupTestStore(t)

	records := []ListenImport{
		record("2021-01-05T10:00:00Z", "Water", "Tyla", 180000),
	}
	if _, err := s.ImportListens(records); err != nil {
		t.Fatalf("first import: %v", err)
	}

	added, err := s.ImportListens(records)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if added != 0 {
		t.Errorf("re-import added %d rows, want 0", added)
	}
}

func TestImportListensSkipsShortAndEmpty(t *testing.T) {
	s := setupTestStore(t)

	added, err := s.ImportListens([]ListenImport{
		record("2021-01-05T10:00:00Z", "Skipped", "Tyla", 5000),
		record("2021-01-05T11:00:00Z", "", "Tyla", 180000),
		record("2021-01-05T12:00:00Z", "Podcastless", "", 180000),
		record("2021-01-05T13:00:00Z", "Kept", "Tyla", 180000),
	})
	if err != nil {
		t.Fatalf("ImportListens: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
}

func TestLoadDatasetPreservesInsertionOrder(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.ImportListens([]ListenImport{
		record("2021-06-01T10:00:00Z", "Later", "B", 180000),
		record("2021-01-01T10:00:00Z", "Earlier", "A", 180000),
	})
	if err != nil {
		t.Fatalf("ImportListens: %v", err)
	}

	data, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	events := data.Events()
	if len(events) != 2 {
		t.Fatalf("loaded %d events", len(events))
	}
	if events[0].Track != "Later" || events[1].Track != "Earlier" {
		t.Errorf("events out of insertion order: %q, %q", events[0].Track, events[1].Track)
	}
	if events[0].Played != 3*time.Minute {
		t.Errorf("Played = %v", events[0].Played)
	}
}

func TestLoadDatasetJoinsGenres(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.ImportListens([]ListenImport{
		record("2021-01-05T10:00:00Z", "Water", "Tyla", 180000),
		record("2021-01-06T10:00:00Z", "Song", "Unenriched", 180000),
	}); err != nil {
		t.Fatalf("ImportListens: %v", err)
	}
	if err := s.SetArtistGenres("Tyla", []string{"amapiano", "pop"}); err != nil {
		t.Fatalf("SetArtistGenres: %v", err)
	}

	data, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	events := data.Events()
	if events[0].Genres != "amapiano, pop" {
		t.Errorf("Genres = %q", events[0].Genres)
	}
	if events[1].Genres != "" {
		t.Errorf("unenriched artist Genres = %q, want empty", events[1].Genres)
	}
}

func TestSetArtistGenresEmptyBecomesUnknown(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.ImportListens([]ListenImport{
		record("2021-01-05T10:00:00Z", "Song", "Obscure", 180000),
	}); err != nil {
		t.Fatalf("ImportListens: %v", err)
	}
	if err := s.SetArtistGenres("Obscure", nil); err != nil {
		t.Fatalf("SetArtistGenres: %v", err)
	}

	data, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if data.Events()[0].Genres != "Unknown" {
		t.Errorf("Genres = %q, want Unknown", data.Events()[0].Genres)
	}
}

func TestArtistsNeedingGenres(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.ImportListens([]ListenImport{
		record("2021-01-05T10:00:00Z", "Water", "Tyla", 180000),
		record("2021-01-06T10:00:00Z", "Passionfruit", "Drake", 180000),
	}); err != nil {
		t.Fatalf("ImportListens: %v", err)
	}
	if err := s.SetArtistGenres("Tyla", []string{"amapiano"}); err != nil {
		t.Fatalf("SetArtistGenres: %v", err)
	}

	artists, err := s.ArtistsNeedingGenres(24 * time.Hour)
	if err != nil {
		t.Fatalf("ArtistsNeedingGenres: %v", err)
	}
	if len(artists) != 1 || artists[0] != "Drake" {
		t.Errorf("artists = %v, want [Drake]", artists)
	}

	// With a zero interval even the fresh entry is stale.
	artists, err = s.ArtistsNeedingGenres(0)
	if err != nil {
		t.Fatalf("ArtistsNeedingGenres: %v", err)
	}
	if len(artists) != 2 {
		t.Errorf("artists = %v, want both", artists)
	}
}
