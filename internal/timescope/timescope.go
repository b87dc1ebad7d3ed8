// Package timescope resolves time references in a query ("in 2022", "march
// 2021", "17th of september", "recently") to a filtered view of the dataset
// plus a human-readable period label.
package timescope

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"spotiquery/internal/dataset"
	"spotiquery/internal/model"
)

// AllTime is the period label used when the query carries no time reference.
const AllTime = "All time"

var months = []time.Month{
	time.January, time.February, time.March, time.April, time.May, time.June,
	time.July, time.August, time.September, time.October, time.November, time.December,
}

// Day references come in a few shapes. Patterns are tried in order and the
// first one yielding a value in [1,31] wins.
var dayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)\s+of\b`), // "17th of September"
	regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\b`),     // "15th", "3rd", "22"
	regexp.MustCompile(`\b(\d{1,2})\s*,?\s*\d{4}`),          // "15, 2020"
}

// Extract narrows the dataset to the time window referenced in the query.
// Missing or malformed fragments degrade tier by tier: exact date, month,
// year, last 30 days, all time. The returned view never shares mutable state
// with the input; an empty view is a valid outcome.
func Extract(query string, d *dataset.Dataset) (*dataset.Dataset, string) {
	lower := strings.ToLower(query)

	year := 0
	for _, y := range d.Years() {
		if strings.Contains(query, strconv.Itoa(y)) {
			year = y
			break
		}
	}

	var month time.Month
	for _, m := range months {
		if strings.Contains(lower, strings.ToLower(m.String())) {
			month = m
			break
		}
	}

	day := findDay(query)

	switch {
	case year != 0 && month != 0 && day != 0:
		view := d.Filter(func(e model.Listen) bool {
			return e.Year() == year && e.Time.Month() == month && e.Time.Day() == day
		})
		return view, fmt.Sprintf("%s %d, %d", month, day, year)

	case year != 0 && month != 0:
		view := d.Filter(func(e model.Listen) bool {
			return e.Year() == year && e.Time.Month() == month
		})
		return view, fmt.Sprintf("%s %d", month, year)

	case year != 0:
		view := d.Filter(func(e model.Listen) bool {
			return e.Year() == year
		})
		return view, fmt.Sprintf("Year %d", year)

	case strings.Contains(lower, "recent") || strings.Contains(lower, "lately"):
		max := d.MaxTime()
		cutoff := time.Date(max.Year(), max.Month(), max.Day(), 0, 0, 0, 0, max.Location()).AddDate(0, 0, -30)
		view := d.Filter(func(e model.Listen) bool {
			return !e.Date().Before(cutoff)
		})
		return view, "Last 30 days"
	}

	return d, AllTime
}

func findDay(query string) int {
	for _, pattern := range dayPatterns {
		for _, m := range pattern.FindAllStringSubmatch(query, -1) {
			day, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if day >= 1 && day <= 31 {
				return day
			}
		}
	}
	return 0
}
