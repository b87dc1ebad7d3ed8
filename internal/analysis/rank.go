package analysis

import (
	"sort"

	"spotiquery/internal/model"
)

// rankBy tallies key occurrences and returns them sorted by count
// descending. The sort is stable over first-encounter order, so ties resolve
// to whichever key the view encounters first — the documented tie-break for
// all frequency rankings. A limit of 0 means no truncation.
func rankBy(events []model.Listen, key func(model.Listen) string, limit int) RankedList {
	counts := make(map[string]int)
	var order []string
	for _, e := range events {
		k := key(e)
		if k == "" {
			continue
		}
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	ranked := make(RankedList, 0, len(order))
	for _, k := range order {
		ranked = append(ranked, RankEntry{Name: k, Count: counts[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func trackKey(e model.Listen) string  { return e.Track }
func artistKey(e model.Listen) string { return e.Artist }

// rankGenres counts individual genre labels across events. Events without
// genre data (empty or "Unknown") contribute nothing.
func rankGenres(events []model.Listen, limit int) RankedList {
	counts := make(map[string]int)
	var order []string
	for _, e := range events {
		for _, g := range e.GenreList() {
			if counts[g] == 0 {
				order = append(order, g)
			}
			counts[g]++
		}
	}

	ranked := make(RankedList, 0, len(order))
	for _, k := range order {
		ranked = append(ranked, RankEntry{Name: k, Count: counts[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func sumHours(events []model.Listen) float64 {
	var total float64
	for _, e := range events {
		total += e.Hours()
	}
	return total
}
