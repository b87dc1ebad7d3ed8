package analysis

import "fmt"

// Payload is the data half of a query result. Exactly one concrete type
// exists per analysis shape; Error stands in for any of them when an
// aggregation has nothing to report.
type Payload interface {
	payload()
}

// Error is the only payload produced when an aggregation's input is empty or
// a requested pairing does not exist. It carries a displayable message and
// nothing else; callers must check for it before reading any other shape.
type Error struct {
	Message string `yaml:"error"`
}

func Errorf(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// RankEntry is one key in a frequency ranking.
type RankEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

type RankedList []RankEntry

// SongByArtist reports a confirmed song/artist pairing from the full log.
type SongByArtist struct {
	Song            string `yaml:"song"`
	Artist          string `yaml:"artist"`
	FirstListenDate string `yaml:"first_listen_date"`
	FirstListenTime string `yaml:"first_listen_time"`
	LastListenDate  string `yaml:"last_listen_date"`
	TotalPlays      int    `yaml:"total_plays"`
	YearsActive     string `yaml:"years_active"`
}

// ArtistSongs is the top-songs list for a single artist in a period.
type ArtistSongs struct {
	Artist     string     `yaml:"artist"`
	TopSongs   RankedList `yaml:"top_songs"`
	TotalPlays int        `yaml:"total_plays"`
	TotalHours float64    `yaml:"total_hours"`
}

// FirstLastSong is the earliest or latest listen matching an artist or genre
// restriction. Exactly one of Artist/Genre is set for artist queries; genre
// queries carry both the genre and the performing artist.
type FirstLastSong struct {
	Artist    string `yaml:"artist,omitempty"`
	Genre     string `yaml:"genre,omitempty"`
	Song      string `yaml:"song"`
	Date      string `yaml:"date"`
	Time      string `yaml:"time"`
	Timestamp string `yaml:"timestamp"`
}

type FavoriteSong struct {
	TopSongs RankedList `yaml:"top_songs"`
	Artist   string     `yaml:"artist"`
	Period   string     `yaml:"period"`
}

type FavoriteArtist struct {
	TopArtists RankedList `yaml:"top_artists"`
	Period     string     `yaml:"period"`
}

type FavoriteGenre struct {
	TopGenre   string     `yaml:"top_genre"`
	TrackCount int        `yaml:"track_count"`
	TopGenres  RankedList `yaml:"top_genres"`
	Period     string     `yaml:"period"`
}

type SongPick struct {
	Name   string `yaml:"name"`
	Artist string `yaml:"artist"`
	Plays  int    `yaml:"plays"`
}

type ArtistPick struct {
	Name  string `yaml:"name"`
	Plays int    `yaml:"plays"`
}

type GenrePick struct {
	Name   string `yaml:"name"`
	Tracks int    `yaml:"tracks"`
}

// MultipleFavorites merges the requested favorite sub-aggregates. A sub-key
// is omitted when it was not requested or has no data.
type MultipleFavorites struct {
	TopSong   *SongPick   `yaml:"top_song,omitempty"`
	TopArtist *ArtistPick `yaml:"top_artist,omitempty"`
	TopGenre  *GenrePick  `yaml:"top_genre,omitempty"`
}

// Stats is the numeric summary block shared by the general and
// period-summary shapes. The period summary leaves the trailing fields
// unset.
type Stats struct {
	TotalPlays     int     `yaml:"total_plays"`
	TotalHours     float64 `yaml:"total_hours"`
	UniqueArtists  int     `yaml:"unique_artists"`
	UniqueSongs    int     `yaml:"unique_songs"`
	DateRange      string  `yaml:"date_range,omitempty"`
	AvgDailyHours  float64 `yaml:"avg_daily_hours,omitempty"`
	MostActiveDay  string  `yaml:"most_active_day,omitempty"`
	MostActiveHour int     `yaml:"most_active_hour,omitempty"`
}

type TimePatterns struct {
	PeakListeningHour int    `yaml:"peak_listening_hour"`
	PeakListeningDay  string `yaml:"peak_listening_day"`
}

// GeneralStats is the omnibus fallback shape.
type GeneralStats struct {
	Stats               Stats        `yaml:"stats"`
	TopArtists          RankedList   `yaml:"top_artists"`
	TopSongs            RankedList   `yaml:"top_songs"`
	TopGenres           RankedList   `yaml:"top_genres"`
	TimePatterns        TimePatterns `yaml:"time_patterns"`
	TotalTracksInPeriod int          `yaml:"total_tracks_in_period"`
}

// PeriodSummary is the multi-day answer to a daily-listening question.
type PeriodSummary struct {
	Stats        Stats        `yaml:"stats"`
	TopArtists   RankedList   `yaml:"top_artists"`
	TopSongs     RankedList   `yaml:"top_songs"`
	TopGenres    RankedList   `yaml:"top_genres"`
	TimePatterns TimePatterns `yaml:"time_patterns"`
}

// TrackPlay is one row of a single-day chronological listing.
type TrackPlay struct {
	Time   string `yaml:"time"`
	Song   string `yaml:"song"`
	Artist string `yaml:"artist"`
}

// DailyListening is the single-day answer to a daily-listening question.
type DailyListening struct {
	Date           string      `yaml:"date"`
	TotalTracks    int         `yaml:"total_tracks"`
	TotalHours     float64     `yaml:"total_hours"`
	Tracks         []TrackPlay `yaml:"tracks_chronological"`
	TopArtist      string      `yaml:"top_artist"`
	MostPlayedSong string      `yaml:"most_played_song"`
}

func (*Error) payload()             {}
func (*SongByArtist) payload()      {}
func (*ArtistSongs) payload()       {}
func (*FirstLastSong) payload()     {}
func (*FavoriteSong) payload()      {}
func (*FavoriteArtist) payload()    {}
func (*FavoriteGenre) payload()     {}
func (*MultipleFavorites) payload() {}
func (*GeneralStats) payload()      {}
func (*PeriodSummary) payload()     {}
func (*DailyListening) payload()    {}
