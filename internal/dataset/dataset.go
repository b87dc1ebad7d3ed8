// Package dataset holds the in-memory event store: an ordered, read-only
// collection of listen events. All filtering operations return new views and
// never mutate the source, so a single dataset can safely back any number of
// independent queries. The internal order is the load order of the underlying
// snapshot; operations that care about time order sort explicitly.
package dataset

import (
	"sort"
	"time"

	"spotiquery/internal/model"
)

// Dataset is an immutable view over listen events.
type Dataset struct {
	events []model.Listen
}

// New wraps events in a dataset. The caller must not modify the slice
// afterwards.
func New(events []model.Listen) *Dataset {
	return &Dataset{events: events}
}

// Events returns the underlying events in store order. Callers must treat the
// slice as read-only.
func (d *Dataset) Events() []model.Listen {
	return d.events
}

func (d *Dataset) Len() int {
	return len(d.events)
}

func (d *Dataset) Empty() bool {
	return len(d.events) == 0
}

// Filter returns a new view containing the events for which keep returns
// true, preserving store order.
func (d *Dataset) Filter(keep func(model.Listen) bool) *Dataset {
	var out []model.Listen
	for _, e := range d.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return &Dataset{events: out}
}

// Years returns the distinct event years in ascending order.
func (d *Dataset) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, e := range d.events {
		if !seen[e.Year()] {
			seen[e.Year()] = true
			years = append(years, e.Year())
		}
	}
	sort.Ints(years)
	return years
}

// Artists returns the distinct artist names in first-encounter order.
func (d *Dataset) Artists() []string {
	seen := make(map[string]bool)
	var artists []string
	for _, e := range d.events {
		if e.Artist != "" && !seen[e.Artist] {
			seen[e.Artist] = true
			artists = append(artists, e.Artist)
		}
	}
	return artists
}

// Genres returns the distinct genre labels in first-encounter order,
// excluding "Unknown" and empty values.
func (d *Dataset) Genres() []string {
	seen := make(map[string]bool)
	var genres []string
	for _, e := range d.events {
		for _, g := range e.GenreList() {
			if !seen[g] {
				seen[g] = true
				genres = append(genres, g)
			}
		}
	}
	return genres
}

// MaxTime returns the latest event timestamp, or the zero time for an empty
// dataset.
func (d *Dataset) MaxTime() time.Time {
	var max time.Time
	for _, e := range d.events {
		if e.Time.After(max) {
			max = e.Time
		}
	}
	return max
}

// MinTime returns the earliest event timestamp, or the zero time for an empty
// dataset.
func (d *Dataset) MinTime() time.Time {
	var min time.Time
	for i, e := range d.events {
		if i == 0 || e.Time.Before(min) {
			min = e.Time
		}
	}
	return min
}

// Earliest returns the event with the minimum timestamp. Ties resolve to the
// first such event in store order. ok is false for an empty dataset.
func (d *Dataset) Earliest() (model.Listen, bool) {
	if len(d.events) == 0 {
		return model.Listen{}, false
	}
	best := d.events[0]
	for _, e := range d.events[1:] {
		if e.Time.Before(best.Time) {
			best = e
		}
	}
	return best, true
}

// Latest returns the event with the maximum timestamp. Ties resolve to the
// first such event in store order. ok is false for an empty dataset.
func (d *Dataset) Latest() (model.Listen, bool) {
	if len(d.events) == 0 {
		return model.Listen{}, false
	}
	best := d.events[0]
	for _, e := range d.events[1:] {
		if e.Time.After(best.Time) {
			best = e
		}
	}
	return best, true
}

// Chronological returns a new slice of the events sorted by timestamp
// ascending. The sort is stable, so equal timestamps keep store order.
func (d *Dataset) Chronological() []model.Listen {
	out := make([]model.Listen, len(d.events))
	copy(out, d.events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.Before(out[j].Time)
	})
	return out
}

// Dates returns the distinct calendar dates present, in first-encounter
// order.
func (d *Dataset) Dates() []time.Time {
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, e := range d.events {
		day := e.Date()
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}
	return dates
}
