package cmd

import (
	"fmt"
	"regexp"
	"time"
)

// ParsedDate is a datestring argument plus the resolution it was given at.
type ParsedDate struct {
	Date  time.Time
	Year  bool
	Month bool
	Day   bool
}

// parseDateRangeFromArgs turns one or two datestring arguments into a
// half-open [start, end) range. A single argument covers its whole year,
// month, or day.
func parseDateRangeFromArgs(args []string) (start time.Time, end time.Time, err error) {
	switch len(args) {
	case 1:
		start, end, err = getImplicitDateRange(args[0])

	case 2:
		var startParsed, endParsed ParsedDate
		startParsed, err = parseSingleDatestring(args[0])
		if err != nil {
			return
		}
		endParsed, err = parseSingleDatestring(args[1])
		if err != nil {
			return
		}
		start, end = startParsed.Date, endParsed.Date

	default:
		err = fmt.Errorf("expected one or two date arguments")
	}
	return
}

func getImplicitDateRange(ds string) (start time.Time, end time.Time, err error) {
	date, err := parseSingleDatestring(ds)
	if err != nil {
		return
	}

	start = date.Date
	switch {
	case date.Day:
		end = start.AddDate(0, 0, 1)

	case date.Month:
		end = start.AddDate(0, 1, 0)

	case date.Year:
		end = start.AddDate(1, 0, 0)

	default:
		err = fmt.Errorf("invalid format: %q", ds)
	}

	return
}

var datestringFormats = []struct {
	pattern *regexp.Regexp
	layout  string
	set     func(*ParsedDate)
}{
	{regexp.MustCompile(`^\d{4}$`), "2006", func(d *ParsedDate) { d.Year = true }},
	{regexp.MustCompile(`^\d{4}-\d{2}$`), "2006-01", func(d *ParsedDate) { d.Month = true }},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "2006-01-02", func(d *ParsedDate) { d.Day = true }},
}

func parseSingleDatestring(ds string) (ParsedDate, error) {
	for _, f := range datestringFormats {
		if !f.pattern.MatchString(ds) {
			continue
		}
		date, err := time.Parse(f.layout, ds)
		if err != nil {
			return ParsedDate{}, fmt.Errorf("parsing datestring %q: %w", ds, err)
		}
		parsed := ParsedDate{Date: date}
		f.set(&parsed)
		return parsed, nil
	}
	return ParsedDate{}, fmt.Errorf("invalid format: %q", ds)
}
