package analysis

import (
	"fmt"
	"time"

	"spotiquery/internal/dataset"
	"spotiquery/internal/model"
)

// GetGeneralStats computes the omnibus fallback summary over the view.
func GetGeneralStats(view *dataset.Dataset, label string) Payload {
	if view.Empty() {
		return Errorf("No data found for %s", label)
	}

	events := view.Events()
	day := modalWeekday(events)
	hour := modalHour(events)

	return &GeneralStats{
		Stats: Stats{
			TotalPlays:     view.Len(),
			TotalHours:     sumHours(events),
			UniqueArtists:  len(view.Artists()),
			UniqueSongs:    len(rankBy(events, trackKey, 0)),
			DateRange:      dateRange(view),
			AvgDailyHours:  avgDailyHours(events),
			MostActiveDay:  day,
			MostActiveHour: hour,
		},
		TopArtists: rankBy(events, artistKey, 10),
		TopSongs:   rankBy(events, trackKey, 10),
		TopGenres:  rankGenres(events, 5),
		TimePatterns: TimePatterns{
			PeakListeningHour: hour,
			PeakListeningDay:  day,
		},
		TotalTracksInPeriod: view.Len(),
	}
}

func dateRange(view *dataset.Dataset) string {
	return fmt.Sprintf("%s to %s",
		view.MinTime().Format("2006-01-02"), view.MaxTime().Format("2006-01-02"))
}

// avgDailyHours averages total listening hours over the distinct days that
// have any listening, not over the whole calendar span.
func avgDailyHours(events []model.Listen) float64 {
	perDay := make(map[time.Time]float64)
	for _, e := range events {
		perDay[e.Date()] += e.Hours()
	}
	if len(perDay) == 0 {
		return 0
	}
	var total float64
	for _, h := range perDay {
		total += h
	}
	return total / float64(len(perDay))
}

// modalWeekday returns the weekday with the most plays. Ties resolve in
// calendar order starting from Sunday.
func modalWeekday(events []model.Listen) string {
	var counts [7]int
	for _, e := range events {
		counts[e.Time.Weekday()]++
	}
	best := time.Sunday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best.String()
}

// modalHour returns the hour of day with the most plays, ties resolving to
// the earliest hour.
func modalHour(events []model.Listen) int {
	var counts [24]int
	for _, e := range events {
		counts[e.Hour()]++
	}
	best := 0
	for h := 1; h < 24; h++ {
		if counts[h] > counts[best] {
			best = h
		}
	}
	return best
}
