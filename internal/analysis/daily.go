package analysis

import "spotiquery/internal/dataset"

// Single-day listings are capped to the first tracks by time.
const maxDailyTracks = 20

// GetDailyListening returns the chronological play-by-play for a view that
// spans a single calendar date, plus the day's top artist and song.
func GetDailyListening(view *dataset.Dataset, label string) Payload {
	if view.Empty() {
		return Errorf("No listening data found for %s", label)
	}

	var tracks []TrackPlay
	for _, e := range view.Chronological() {
		tracks = append(tracks, TrackPlay{
			Time:   e.Time.Format(timeFormat),
			Song:   e.Track,
			Artist: e.Artist,
		})
		if len(tracks) == maxDailyTracks {
			break
		}
	}

	events := view.Events()
	return &DailyListening{
		Date:           label,
		TotalTracks:    view.Len(),
		TotalHours:     sumHours(events),
		Tracks:         tracks,
		TopArtist:      rankBy(events, artistKey, 1)[0].Name,
		MostPlayedSong: rankBy(events, trackKey, 1)[0].Name,
	}
}

// GetPeriodSummary is the multi-day counterpart of GetDailyListening: a
// compact summary instead of a chronological listing.
func GetPeriodSummary(view *dataset.Dataset, label string) Payload {
	if view.Empty() {
		return Errorf("No listening data found for %s", label)
	}

	events := view.Events()
	return &PeriodSummary{
		Stats: Stats{
			TotalPlays:    view.Len(),
			TotalHours:    sumHours(events),
			UniqueArtists: len(view.Artists()),
			UniqueSongs:   len(rankBy(events, trackKey, 0)),
		},
		TopArtists: rankBy(events, artistKey, 5),
		TopSongs:   rankBy(events, trackKey, 5),
		TopGenres:  rankGenres(events, 5),
		TimePatterns: TimePatterns{
			PeakListeningHour: modalHour(events),
			PeakListeningDay:  modalWeekday(events),
		},
	}
}
