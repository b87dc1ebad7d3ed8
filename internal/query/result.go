package query

import "spotiquery/internal/analysis"

// Type tags the analytic shape of a result.
type Type string

const (
	TypeSongByArtist      Type = "song_by_artist"
	TypeArtistSongs       Type = "artist_songs"
	TypeFirstSong         Type = "first_song"
	TypeLastSong          Type = "last_song"
	TypeFavoriteSong      Type = "favorite_song"
	TypeFavoriteArtist    Type = "favorite_artist"
	TypeFavoriteGenre     Type = "favorite_genre"
	TypeMultipleFavorites Type = "multiple_favorites"
	TypeDailyListening    Type = "daily_listening"
	TypePeriodSummary     Type = "period_summary"
	TypeGeneral           Type = "general"
)

// Result is the envelope handed to callers (and, verbatim, to any downstream
// text renderer — which must not be given anything beyond it).
type Result struct {
	Query        string           `yaml:"query"`
	AnalysisType Type             `yaml:"analysis_type"`
	Data         analysis.Payload `yaml:"data"`
	Period       string           `yaml:"period"`
}

// newResult is the single construction point for envelopes.
func newResult(query string, t Type, data analysis.Payload, period string) *Result {
	return &Result{
		Query:        query,
		AnalysisType: t,
		Data:         data,
		Period:       period,
	}
}

// Err returns the error message when the payload is an error payload, or ""
// for a successful result. Callers must check this before reading Data.
func (r *Result) Err() string {
	if e, ok := r.Data.(*analysis.Error); ok {
		return e.Message
	}
	return ""
}
