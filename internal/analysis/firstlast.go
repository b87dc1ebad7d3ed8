package analysis

import (
	"time"

	"spotiquery/internal/dataset"
	"spotiquery/internal/model"
)

// GetFirstSongByArtist returns the earliest listen for the artist within the
// view. Identical timestamps resolve to the first event in store order.
func GetFirstSongByArtist(view *dataset.Dataset, label, artist string) Payload {
	first, ok := byArtist(view, artist).Earliest()
	if !ok {
		return Errorf("No songs found for %s", artist)
	}
	return firstLastPayload(first, artist, "")
}

// GetLastSongByArtist returns the most recent listen for the artist within
// the view.
func GetLastSongByArtist(view *dataset.Dataset, label, artist string) Payload {
	last, ok := byArtist(view, artist).Latest()
	if !ok {
		return Errorf("No songs found for %s", artist)
	}
	return firstLastPayload(last, artist, "")
}

// GetFirstSongByGenre returns the earliest listen carrying the genre label
// within the view.
func GetFirstSongByGenre(view *dataset.Dataset, label, genre string) Payload {
	first, ok := byGenre(view, genre).Earliest()
	if !ok {
		return Errorf("No songs found for genre %s", genre)
	}
	return firstLastPayload(first, first.Artist, genre)
}

// GetLastSongByGenre returns the most recent listen carrying the genre label
// within the view.
func GetLastSongByGenre(view *dataset.Dataset, label, genre string) Payload {
	last, ok := byGenre(view, genre).Latest()
	if !ok {
		return Errorf("No songs found for genre %s", genre)
	}
	return firstLastPayload(last, last.Artist, genre)
}

func firstLastPayload(e model.Listen, artist, genre string) *FirstLastSong {
	return &FirstLastSong{
		Artist:    artist,
		Genre:     genre,
		Song:      e.Track,
		Date:      e.Time.Format(dateFormat),
		Time:      e.Time.Format(timeFormat),
		Timestamp: e.Time.Format(time.RFC3339),
	}
}
