package timescope

import (
	"testing"
	"time"

	"spotiquery/internal/dataset"
	"spotiquery/internal/model"
)

func listen(ts, track string) model.Listen {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return model.Listen{Time: parsed, Track: track, Artist: "A"}
}

func testData() *dataset.Dataset {
	return dataset.New([]model.Listen{
		listen("2021-03-05T10:00:00Z", "march-2021"),
		listen("2021-09-17T22:00:00Z", "sept-17-2021"),
		listen("2021-09-20T09:00:00Z", "sept-20-2021"),
		listen("2022-01-10T08:00:00Z", "jan-2022"),
		listen("2022-03-01T08:00:00Z", "march-2022"),
	})
}

func TestExtract_exactDate(t *testing.T) {
	view, label := Extract("what did I listen to on the 17th of September 2021", testData())
	if label != "September 17, 2021" {
		t.Fatalf("label = %q", label)
	}
	if view.Len() != 1 || view.Events()[0].Track != "sept-17-2021" {
		t.Fatalf("view has %d events", view.Len())
	}
}

func TestExtract_monthAndYear(t *testing.T) {
	view, label := Extract("my top songs in march 2021", testData())
	if label != "March 2021" {
		t.Fatalf("label = %q", label)
	}
	if view.Len() != 1 || view.Events()[0].Track != "march-2021" {
		t.Fatalf("view has %d events", view.Len())
	}
}

func TestExtract_yearOnly(t *testing.T) {
	view, label := Extract("my favorite song in 2021", testData())
	if label != "Year 2021" {
		t.Fatalf("label = %q", label)
	}
	if view.Len() != 3 {
		t.Fatalf("view has %d events, want 3", view.Len())
	}
	for _, e := range view.Events() {
		if e.Year() != 2021 {
			t.Errorf("event %q has year %d", e.Track, e.Year())
		}
	}
}

func TestExtract_yearNotInStore(t *testing.T) {
	view, label := Extract("my favorite song in 1999", testData())
	if label != AllTime {
		t.Fatalf("label = %q, want %q", label, AllTime)
	}
	if view.Len() != testData().Len() {
		t.Fatalf("view has %d events", view.Len())
	}
}

func TestExtract_recent(t *testing.T) {
	// The newest event is 2022-03-01, so the 30-day window starts 2022-01-30
	// and excludes the January event.
	view, label := Extract("what have I been listening to recently", testData())
	if label != "Last 30 days" {
		t.Fatalf("label = %q", label)
	}
	if view.Len() != 1 || view.Events()[0].Track != "march-2022" {
		t.Fatalf("view has %d events", view.Len())
	}
}

func TestExtract_noTimeReference(t *testing.T) {
	view, label := Extract("my favorite artist", testData())
	if label != AllTime {
		t.Fatalf("label = %q", label)
	}
	if view.Len() != testData().Len() {
		t.Fatalf("view has %d events", view.Len())
	}
}

func TestExtract_dayWithoutMonthFallsBack(t *testing.T) {
	// A bare day reference without a month and year cannot anchor a date.
	_, label := Extract("what did I play on the 17th", testData())
	if label != AllTime {
		t.Fatalf("label = %q, want %q", label, AllTime)
	}
}

func TestFindDay(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"the 17th of september", 17},
		{"march 3rd 2023", 3},
		{"september 15, 2020", 15},
		{"on the 32nd", 0},
		{"in 2021", 0},
		{"no digits here", 0},
	}
	for _, tc := range tests {
		if got := findDay(tc.query); got != tc.want {
			t.Errorf("findDay(%q) = %d, want %d", tc.query, got, tc.want)
		}
	}
}
