// Package query turns a free-text question about the listening history into
// a structured result. The engine is a pure function of (query text, loaded
// dataset): it keeps no per-query state, performs no I/O, and never mutates
// the dataset, so one engine can serve any number of sequential or
// independent queries.
package query

import (
	"strings"

	"spotiquery/internal/analysis"
	"spotiquery/internal/dataset"
	"spotiquery/internal/resolve"
	"spotiquery/internal/timescope"
)

// Engine classifies queries against one loaded dataset. The artist and genre
// indexes are built once at construction over the full (unfiltered) store,
// since entity existence is independent of any requested period.
type Engine struct {
	data    *dataset.Dataset
	artists *resolve.Index
	genres  *resolve.Index
}

func New(data *dataset.Dataset) *Engine {
	return &Engine{
		data:    data,
		artists: resolve.NewIndex(data.Artists()),
		genres:  resolve.NewIndex(data.Genres()),
	}
}

// scopedView pairs a time-filtered view with its period label.
type scopedView struct {
	view  *dataset.Dataset
	label string
}

// Analyze resolves the query's time scope, walks the rule cascade, and
// returns the resulting envelope. It never fails: unparseable or unanswerable
// queries come back as the general shape, possibly with an error payload.
func (e *Engine) Analyze(queryText string) *Result {
	view, label := timescope.Extract(queryText, e.data)

	if e.data.Empty() {
		return newResult(queryText, TypeGeneral,
			analysis.Errorf("No data found for %s", label), label)
	}

	req := request{
		raw:    queryText,
		lower:  strings.ToLower(queryText),
		scoped: &scopedView{view: view, label: label},
	}

	for _, r := range rules {
		if res := r.apply(e, req); res != nil {
			return res
		}
	}

	// Unreachable: the general rule always produces a result.
	return newResult(queryText, TypeGeneral,
		analysis.Errorf("No data found for %s", label), label)
}
