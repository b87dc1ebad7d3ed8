package query

import (
	"regexp"
	"strings"

	"spotiquery/internal/analysis"
)

// rules is the classification cascade. Rules are evaluated in slice order
// and the first one returning a non-nil result wins, so priority is visible
// here rather than buried in control flow. Each rule's internal patterns are
// likewise tried in listed order, first match wins.
var rules = []rule{
	{"song-by-artist", (*Engine).songByArtist},
	{"artist-songs", (*Engine).artistSongs},
	{"first-song-by-artist", (*Engine).firstSongByArtist},
	{"first-song-by-genre", (*Engine).firstSongByGenre},
	{"last-song-by-artist", (*Engine).lastSongByArtist},
	{"last-song-by-genre", (*Engine).lastSongByGenre},
	{"multiple-favorites", (*Engine).multipleFavorites},
	{"single-favorite", (*Engine).singleFavorite},
	{"daily-listening", (*Engine).dailyListening},
	{"general", (*Engine).general},
}

type rule struct {
	name  string
	apply func(*Engine, request) *Result
}

// request carries one query through the cascade.
type request struct {
	raw    string
	lower  string
	scoped *scopedView
}

// Generic filler words that can never be entity names.
var stopwords = map[string]bool{
	"my": true, "me": true, "favorite": true, "top": true,
	"best": true, "fave": true, "all": true, "the": true,
}

var (
	songByArtistPattern = regexp.MustCompile(`(?i)^\s*(.+?)\s+by\s+(.+?)\s*$`)

	artistSongPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:top|favorite|best|fave)\s+\d+\s+([a-z]+(?:\s+[a-z]+)*)\s+songs?`),
		regexp.MustCompile(`(?:top|favorite|best|fave)\s+([a-z]+(?:\s+[a-z]+)*)\s+songs?`),
		regexp.MustCompile(`(?:my|give me|show me)\s+(?:my\s+)?(?:top|favorite|best|fave)?\s*\d+\s+([a-z]+(?:\s+[a-z]+)*)\s+songs?`),
		regexp.MustCompile(`(?:my|give me|show me)\s+(?:my\s+)?(?:top|favorite|best|fave)?\s*([a-z]+(?:\s+[a-z]+)*)\s+songs?`),
		regexp.MustCompile(`([a-z]+(?:\s+[a-z]+)*)\s+songs?`),
		regexp.MustCompile(`songs?\s+by\s+([a-z]+(?:\s+[a-z]+)*)`),
	}

	firstSongPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:first|earliest)\s+([a-z]+(?:\s+[a-z]+)*)\s+song`),
		regexp.MustCompile(`(?:what|which)\s+(?:is|was)\s+(?:the\s+)?(?:first|earliest)\s+([a-z]+(?:\s+[a-z]+)*)\s+song`),
		regexp.MustCompile(`(?:first|earliest)\s+song\s+(?:by|from)\s+([a-z]+(?:\s+[a-z]+)*)`),
	}

	// Genre variants reuse the name-shaped patterns but not the "song by X"
	// one, which only makes sense for artists.
	firstGenrePatterns = firstSongPatterns[:2]

	lastSongPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:last|latest|most recent)\s+([a-z]+(?:\s+[a-z]+)*)\s+song`),
		regexp.MustCompile(`(?:what|which)\s+(?:is|was)\s+(?:the\s+)?(?:last|latest|most recent)\s+([a-z]+(?:\s+[a-z]+)*)\s+song`),
		regexp.MustCompile(`(?:last|latest|most recent)\s+song\s+(?:by|from)\s+([a-z]+(?:\s+[a-z]+)*)`),
		regexp.MustCompile(`(?:and\s+)?(?:my\s+)?(?:last|latest)\s+([a-z]+(?:\s+[a-z]+)*)\s+song`),
	}

	lastGenrePatterns = lastSongPatterns[:2]

	dailyTriggers = []string{
		"what did i listen", "listened to on", "music on", "listening history",
		"how long did i listen", "how much music", "music for on",
	}
)

// songByArtist handles the literal "<song> by <artist>" form. It always
// consults the entire store: whether a pairing ever happened is independent
// of any requested period. A near miss (the song or the artist exists, but
// not the pairing) is answered with an explanatory error; a complete miss
// falls through to the other families.
func (e *Engine) songByArtist(req request) *Result {
	m := songByArtistPattern.FindStringSubmatch(req.raw)
	if m == nil {
		return nil
	}
	song := strings.TrimSpace(m[1])
	artist := strings.TrimSpace(m[2])

	// "songs by drake" and friends belong to the artist-songs family.
	words := strings.Fields(strings.ToLower(song))
	if len(words) == 0 {
		return nil
	}
	if last := words[len(words)-1]; last == "song" || last == "songs" {
		return nil
	}

	// The artist capture runs to the end of the query, which may carry
	// trailing scope words ("water by tyla in 2021"). Try progressively
	// shorter prefixes of it until a pairing matches.
	artistWords := strings.Fields(artist)
	for k := len(artistWords); k >= 1; k-- {
		candidate := strings.Join(artistWords[:k], " ")
		payload, period := analysis.GetSongByArtist(e.data, song, candidate)
		if _, isErr := payload.(*analysis.Error); !isErr {
			return newResult(req.raw, TypeSongByArtist, payload, period)
		}
	}

	payload, period := analysis.GetSongByArtist(e.data, song, artist)
	if err, ok := payload.(*analysis.Error); ok && strings.HasPrefix(err.Message, "No data found") {
		return nil
	}
	return newResult(req.raw, TypeSongByArtist, payload, period)
}

func (e *Engine) artistSongs(req request) *Result {
	for _, pattern := range artistSongPatterns {
		artist, ok := e.matchArtist(pattern, req.lower)
		if !ok {
			continue
		}
		payload := analysis.GetArtistSongs(req.scoped.view, req.scoped.label, artist)
		return newResult(req.raw, TypeArtistSongs, payload, req.scoped.label)
	}
	return nil
}

func (e *Engine) firstSongByArtist(req request) *Result {
	for _, pattern := range firstSongPatterns {
		artist, ok := e.matchArtist(pattern, req.lower)
		if !ok {
			continue
		}
		payload := analysis.GetFirstSongByArtist(req.scoped.view, req.scoped.label, artist)
		return newResult(req.raw, TypeFirstSong, payload, req.scoped.label)
	}
	return nil
}

func (e *Engine) firstSongByGenre(req request) *Result {
	for _, pattern := range firstGenrePatterns {
		genre, ok := e.matchGenre(pattern, req.lower)
		if !ok {
			continue
		}
		payload := analysis.GetFirstSongByGenre(req.scoped.view, req.scoped.label, genre)
		return newResult(req.raw, TypeFirstSong, payload, req.scoped.label)
	}
	return nil
}

func (e *Engine) lastSongByArtist(req request) *Result {
	for _, pattern := range lastSongPatterns {
		artist, ok := e.matchArtist(pattern, req.lower)
		if !ok {
			continue
		}
		payload := analysis.GetLastSongByArtist(req.scoped.view, req.scoped.label, artist)
		return newResult(req.raw, TypeLastSong, payload, req.scoped.label)
	}
	return nil
}

func (e *Engine) lastSongByGenre(req request) *Result {
	for _, pattern := range lastGenrePatterns {
		genre, ok := e.matchGenre(pattern, req.lower)
		if !ok {
			continue
		}
		payload := analysis.GetLastSongByGenre(req.scoped.view, req.scoped.label, genre)
		return newResult(req.raw, TypeLastSong, payload, req.scoped.label)
	}
	return nil
}

// multipleFavorites fires when two or three of the song/artist/genre signals
// co-occur, so combined requests are never mis-read as single ones.
func (e *Engine) multipleFavorites(req request) *Result {
	wantSong, wantArtist, wantGenre := favoriteSignals(req.lower)
	signals := 0
	for _, w := range []bool{wantSong, wantArtist, wantGenre} {
		if w {
			signals++
		}
	}
	if signals < 2 {
		return nil
	}
	payload := analysis.GetMultipleFavorites(req.scoped.view, req.scoped.label, wantSong, wantArtist, wantGenre)
	return newResult(req.raw, TypeMultipleFavorites, payload, req.scoped.label)
}

func (e *Engine) singleFavorite(req request) *Result {
	wantSong, wantArtist, wantGenre := favoriteSignals(req.lower)
	switch {
	case wantSong:
		payload := analysis.GetFavoriteSong(req.scoped.view, req.scoped.label)
		return newResult(req.raw, TypeFavoriteSong, payload, req.scoped.label)
	case wantArtist:
		payload := analysis.GetFavoriteArtist(req.scoped.view, req.scoped.label)
		return newResult(req.raw, TypeFavoriteArtist, payload, req.scoped.label)
	case wantGenre:
		payload := analysis.GetFavoriteGenre(req.scoped.view, req.scoped.label)
		return newResult(req.raw, TypeFavoriteGenre, payload, req.scoped.label)
	}
	return nil
}

func (e *Engine) dailyListening(req request) *Result {
	triggered := false
	for _, phrase := range dailyTriggers {
		if strings.Contains(req.lower, phrase) {
			triggered = true
			break
		}
	}
	if !triggered {
		return nil
	}

	view, label := req.scoped.view, req.scoped.label
	if view.Empty() {
		payload := analysis.Errorf("No listening data found for %s", label)
		return newResult(req.raw, TypeDailyListening, payload, label)
	}
	if len(view.Dates()) == 1 {
		return newResult(req.raw, TypeDailyListening, analysis.GetDailyListening(view, label), label)
	}
	return newResult(req.raw, TypePeriodSummary, analysis.GetPeriodSummary(view, label), label)
}

// general is the terminal rule; it always produces a result.
func (e *Engine) general(req request) *Result {
	payload := analysis.GetGeneralStats(req.scoped.view, req.scoped.label)
	return newResult(req.raw, TypeGeneral, payload, req.scoped.label)
}

var favoriteContextWords = []string{"favorite", "fave", "top", "best"}

// favoriteSignals reports which of the song/artist/genre words appear in a
// favorite context. Without a context word all signals are off, so "first
// Blue song" is not mistaken for a favorite-song request.
func favoriteSignals(lower string) (song, artist, genre bool) {
	inContext := false
	for _, w := range favoriteContextWords {
		if strings.Contains(lower, w) {
			inContext = true
			break
		}
	}
	if !inContext {
		return false, false, false
	}
	return strings.Contains(lower, "song"),
		strings.Contains(lower, "artist"),
		strings.Contains(lower, "genre")
}

// matchArtist runs one pattern against the query and validates the captured
// candidate against the artist index. Filler words and unresolvable names
// are rejected, letting the caller try the next pattern.
func (e *Engine) matchArtist(pattern *regexp.Regexp, lower string) (string, bool) {
	m := pattern.FindStringSubmatch(lower)
	if m == nil {
		return "", false
	}
	candidate := strings.TrimSpace(m[1])
	if stopwords[candidate] {
		return "", false
	}
	return e.artists.Resolve(candidate)
}

func (e *Engine) matchGenre(pattern *regexp.Regexp, lower string) (string, bool) {
	m := pattern.FindStringSubmatch(lower)
	if m == nil {
		return "", false
	}
	candidate := strings.TrimSpace(m[1])
	if stopwords[candidate] {
		return "", false
	}
	return e.genres.Resolve(candidate)
}
