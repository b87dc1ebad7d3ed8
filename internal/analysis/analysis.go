// Package analysis computes the aggregate shapes the query engine can
// answer with. Every routine is a pure function of an already time-scoped
// view; an empty input yields an Error payload, never a fault.
package analysis

import (
	"fmt"
	"strings"

	"spotiquery/internal/dataset"
	"spotiquery/internal/model"
)

const (
	dateFormat = "January 02, 2006"
	timeFormat = "15:04"
)

// GetSongByArtist confirms whether an exact song/artist pairing exists
// anywhere in the log, ignoring any time scope. Returns the payload and a
// period label describing when the pairing was first played.
func GetSongByArtist(full *dataset.Dataset, song, artist string) (Payload, string) {
	matches := full.Filter(func(e model.Listen) bool {
		return strings.EqualFold(e.Track, song) && strings.EqualFold(e.Artist, artist)
	})

	if matches.Empty() {
		songMatches := full.Filter(func(e model.Listen) bool {
			return strings.EqualFold(e.Track, song)
		})
		artistMatches := full.Filter(func(e model.Listen) bool {
			return strings.EqualFold(e.Artist, artist)
		})

		switch {
		case !songMatches.Empty():
			actual := songMatches.Events()[0].Artist
			return Errorf("You have listened to %q but by %s, not %s", song, actual, artist), ""
		case !artistMatches.Empty():
			return Errorf("You listen to %s, but not the song %q", artist, song), ""
		default:
			return Errorf("No data found for %q by %s", song, artist), ""
		}
	}

	first, _ := matches.Earliest()
	last, _ := matches.Latest()

	years := fmt.Sprintf("%d", first.Year())
	if last.Year() != first.Year() {
		years = fmt.Sprintf("%d-%d", first.Year(), last.Year())
	}

	found := matches.Events()[0]
	payload := &SongByArtist{
		Song:            found.Track,
		Artist:          found.Artist,
		FirstListenDate: first.Time.Format(dateFormat),
		FirstListenTime: first.Time.Format(timeFormat),
		LastListenDate:  last.Time.Format(dateFormat),
		TotalPlays:      matches.Len(),
		YearsActive:     years,
	}
	return payload, "First played: " + first.Time.Format(dateFormat)
}

// GetArtistSongs ranks the songs played for one artist within the view.
func GetArtistSongs(view *dataset.Dataset, label, artist string) Payload {
	artistView := byArtist(view, artist)
	if artistView.Empty() {
		return Errorf("No songs found for %s in %s", artist, label)
	}

	return &ArtistSongs{
		Artist:     artist,
		TopSongs:   rankBy(artistView.Events(), trackKey, 10),
		TotalPlays: artistView.Len(),
		TotalHours: sumHours(artistView.Events()),
	}
}

// GetFavoriteSong returns the most-played song in the view, with the artist
// of its first occurrence.
func GetFavoriteSong(view *dataset.Dataset, label string) Payload {
	if view.Empty() {
		return Errorf("No data found for %s", label)
	}

	songs := rankBy(view.Events(), trackKey, 0)
	top := songs[0]

	artist := ""
	for _, e := range view.Events() {
		if e.Track == top.Name {
			artist = e.Artist
			break
		}
	}

	return &FavoriteSong{
		TopSongs: RankedList{top},
		Artist:   artist,
		Period:   label,
	}
}

// GetFavoriteArtist returns the most-played artist in the view.
func GetFavoriteArtist(view *dataset.Dataset, label string) Payload {
	if view.Empty() {
		return Errorf("No data found for %s", label)
	}

	artists := rankBy(view.Events(), artistKey, 0)
	return &FavoriteArtist{
		TopArtists: RankedList{artists[0]},
		Period:     label,
	}
}

// GetFavoriteGenre returns the most-listened genre in the view. Events
// without genre data contribute nothing; if none carry genres the result is
// an error payload.
func GetFavoriteGenre(view *dataset.Dataset, label string) Payload {
	if view.Empty() {
		return Errorf("No data found for %s", label)
	}

	genres := rankGenres(view.Events(), 0)
	if len(genres) == 0 {
		return Errorf("No genre data found for %s", label)
	}

	top := genres[0]
	if len(genres) > 5 {
		genres = genres[:5]
	}
	return &FavoriteGenre{
		TopGenre:   top.Name,
		TrackCount: top.Count,
		TopGenres:  genres,
		Period:     label,
	}
}

// GetMultipleFavorites computes the requested subset of favorite song,
// artist, and genre over the same view. A sub-aggregate with no data is
// omitted rather than failing the whole result.
func GetMultipleFavorites(view *dataset.Dataset, label string, wantSong, wantArtist, wantGenre bool) Payload {
	if view.Empty() {
		return Errorf("No data found for %s", label)
	}

	result := &MultipleFavorites{}

	if wantSong {
		songs := rankBy(view.Events(), trackKey, 0)
		top := songs[0]
		artist := ""
		for _, e := range view.Events() {
			if e.Track == top.Name {
				artist = e.Artist
				break
			}
		}
		result.TopSong = &SongPick{Name: top.Name, Artist: artist, Plays: top.Count}
	}

	if wantArtist {
		artists := rankBy(view.Events(), artistKey, 0)
		result.TopArtist = &ArtistPick{Name: artists[0].Name, Plays: artists[0].Count}
	}

	if wantGenre {
		genres := rankGenres(view.Events(), 0)
		if len(genres) > 0 {
			result.TopGenre = &GenrePick{Name: genres[0].Name, Tracks: genres[0].Count}
		}
	}

	return result
}

// byArtist narrows a view to one artist's events. The artist name is the
// canonical store value produced by resolution, so plain equality suffices.
func byArtist(view *dataset.Dataset, artist string) *dataset.Dataset {
	return view.Filter(func(e model.Listen) bool {
		return e.Artist == artist
	})
}

// byGenre narrows a view to events whose genre labels include the given
// canonical label.
func byGenre(view *dataset.Dataset, genre string) *dataset.Dataset {
	return view.Filter(func(e model.Listen) bool {
		for _, g := range e.GenreList() {
			if g == genre {
				return true
			}
		}
		return false
	})
}
