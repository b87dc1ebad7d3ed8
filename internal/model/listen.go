// Package model defines the listen event, the single record type the rest of
// the system aggregates over.
package model

import (
	"strings"
	"time"
)

// Listen is one recorded playback of a track. Events are immutable once
// loaded; plays shorter than 30 seconds are dropped at ingestion and never
// appear here.
type Listen struct {
	Time   time.Time
	Track  string
	Artist string
	Album  string
	Played time.Duration

	// Genres is the comma-joined per-artist genre string from enrichment.
	// May be empty or "Unknown" when no genre data exists for the artist.
	Genres string
}

// Date returns the event's calendar date, truncated in the event's location.
func (l Listen) Date() time.Time {
	y, m, d := l.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, l.Time.Location())
}

func (l Listen) Year() int {
	return l.Time.Year()
}

func (l Listen) Hour() int {
	return l.Time.Hour()
}

// Weekday returns the English weekday name, e.g. "Monday".
func (l Listen) Weekday() string {
	return l.Time.Weekday().String()
}

// Hours returns the played duration in hours.
func (l Listen) Hours() float64 {
	return l.Played.Hours()
}

// GenreList splits the comma-joined genre string into trimmed labels.
// An empty or "Unknown" genre string contributes nothing.
func (l Listen) GenreList() []string {
	if l.Genres == "" || l.Genres == "Unknown" {
		return nil
	}
	var genres []string
	for _, g := range strings.Split(l.Genres, ",") {
		g = strings.TrimSpace(g)
		if g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
