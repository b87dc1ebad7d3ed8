package analysis

import (
	"testing"
	"time"

	"spotiquery/internal/dataset"
	"spotiquery/internal/model"
)

func listen(ts, track, artist, genres string) model.Listen {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return model.Listen{
		Time:   parsed,
		Track:  track,
		Artist: artist,
		Genres: genres,
		Played: 3 * time.Minute,
	}
}

func testData() *dataset.Dataset {
	return dataset.New([]model.Listen{
		listen("2021-01-05T10:00:00Z", "Water", "Tyla", "amapiano, pop"),
		listen("2021-02-01T11:00:00Z", "Water", "Tyla", "amapiano, pop"),
		listen("2021-03-01T12:00:00Z", "Jump", "Tyla", "amapiano, pop"),
		listen("2022-06-01T20:00:00Z", "Water", "Tyla", "amapiano, pop"),
		listen("2021-04-01T09:00:00Z", "Passionfruit", "Drake", "rap"),
		listen("2021-05-01T09:00:00Z", "Mystery", "NoGenre", "Unknown"),
	})
}

func TestGetSongByArtist(t *testing.T) {
	payload, period := GetSongByArtist(testData(), "water", "tyla")
	got, ok := payload.(*SongByArtist)
	if !ok {
		t.Fatalf("Expected SongByArtist payload, got %#v", payload)
	}

	if got.Song != "Water" || got.Artist != "Tyla" {
		t.Errorf("Got %q by %q, want stored casing", got.Song, got.Artist)
	}
	if got.TotalPlays != 3 {
		t.Errorf("TotalPlays = %d, want 3", got.TotalPlays)
	}
	if got.FirstListenDate != "January 05, 2021" {
		t.Errorf("FirstListenDate = %q", got.FirstListenDate)
	}
	if got.YearsActive != "2021-2022" {
		t.Errorf("YearsActive = %q", got.YearsActive)
	}
	if period != "First played: January 05, 2021" {
		t.Errorf("period = %q", period)
	}
}

func TestGetSongByArtist_wrongArtist(t *testing.T) {
	payload, _ := GetSongByArtist(testData(), "Water", "Drake")
	e, ok := payload.(*Error)
	if !ok {
		t.Fatalf("Expected error payload, got %#v", payload)
	}
	if e.Message != `You have listened to "Water" but by Tyla, not Drake` {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestGetSongByArtist_wrongSong(t *testing.T) {
	payload, _ := GetSongByArtist(testData(), "Hotline Bling", "Drake")
	e, ok := payload.(*Error)
	if !ok {
		t.Fatalf("Expected error payload, got %#v", payload)
	}
	if e.Message != `You listen to Drake, but not the song "Hotline Bling"` {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestGetSongByArtist_totalMiss(t *testing.T) {
	payload, _ := GetSongByArtist(testData(), "Nothing", "Nobody")
	e, ok := payload.(*Error)
	if !ok {
		t.Fatalf("Expected error payload, got %#v", payload)
	}
	if e.Message != `No data found for "Nothing" by Nobody` {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestGetArtistSongs(t *testing.T) {
	payload := GetArtistSongs(testData(), "All time", "Tyla")
	got, ok := payload.(*ArtistSongs)
	if !ok {
		t.Fatalf("Expected ArtistSongs payload, got %#v", payload)
	}
	if got.TotalPlays != 4 {
		t.Errorf("TotalPlays = %d, want 4", got.TotalPlays)
	}
	if len(got.TopSongs) != 2 || got.TopSongs[0].Name != "Water" || got.TopSongs[0].Count != 3 {
		t.Errorf("TopSongs = %v", got.TopSongs)
	}
}

func TestGetArtistSongs_empty(t *testing.T) {
	payload := GetArtistSongs(testData(), "Year 2019", "Nobody")
	e, ok := payload.(*Error)
	if !ok || e.Message != "No songs found for Nobody in Year 2019" {
		t.Fatalf("Got %#v", payload)
	}
}

func TestGetFavoriteSong(t *testing.T) {
	payload := GetFavoriteSong(testData(), "All time")
	got, ok := payload.(*FavoriteSong)
	if !ok {
		t.Fatalf("Expected FavoriteSong payload, got %#v", payload)
	}
	if got.TopSongs[0].Name != "Water" || got.TopSongs[0].Count != 3 {
		t.Errorf("TopSongs = %v", got.TopSongs)
	}
	if got.Artist != "Tyla" {
		t.Errorf("Artist = %q", got.Artist)
	}
}

func TestGetFavoriteGenreExcludesUnknown(t *testing.T) {
	payload := GetFavoriteGenre(testData(), "All time")
	got, ok := payload.(*FavoriteGenre)
	if !ok {
		t.Fatalf("Expected FavoriteGenre payload, got %#v", payload)
	}
	if got.TopGenre != "amapiano" || got.TrackCount != 4 {
		t.Errorf("TopGenre = %q (%d)", got.TopGenre, got.TrackCount)
	}
	for _, g := range got.TopGenres {
		if g.Name == "Unknown" {
			t.Error("Unknown must not appear in genre rankings")
		}
	}
}

func TestGetFavoriteGenre_noGenreData(t *testing.T) {
	data := dataset.New([]model.Listen{
		listen("2021-01-01T10:00:00Z", "Mystery", "NoGenre", "Unknown"),
	})
	payload := GetFavoriteGenre(data, "All time")
	e, ok := payload.(*Error)
	if !ok || e.Message != "No genre data found for All time" {
		t.Fatalf("Got %#v", payload)
	}
}

func TestGetMultipleFavorites(t *testing.T) {
	payload := GetMultipleFavorites(testData(), "All time", true, true, false)
	got, ok := payload.(*MultipleFavorites)
	if !ok {
		t.Fatalf("Expected MultipleFavorites payload, got %#v", payload)
	}
	if got.TopSong == nil || got.TopSong.Name != "Water" || got.TopSong.Artist != "Tyla" {
		t.Errorf("TopSong = %+v", got.TopSong)
	}
	if got.TopArtist == nil || got.TopArtist.Name != "Tyla" || got.TopArtist.Plays != 4 {
		t.Errorf("TopArtist = %+v", got.TopArtist)
	}
	if got.TopGenre != nil {
		t.Errorf("TopGenre should be omitted, got %+v", got.TopGenre)
	}
}

func TestGetFirstAndLastSongByArtist(t *testing.T) {
	first := GetFirstSongByArtist(testData(), "All time", "Tyla")
	got, ok := first.(*FirstLastSong)
	if !ok || got.Song != "Water" || got.Date != "January 05, 2021" {
		t.Fatalf("First = %#v", first)
	}

	last := GetLastSongByArtist(testData(), "All time", "Tyla")
	got, ok = last.(*FirstLastSong)
	if !ok || got.Song != "Water" || got.Date != "June 01, 2022" {
		t.Fatalf("Last = %#v", last)
	}
}

func TestGetFirstSongByGenre(t *testing.T) {
	payload := GetFirstSongByGenre(testData(), "All time", "rap")
	got, ok := payload.(*FirstLastSong)
	if !ok {
		t.Fatalf("Got %#v", payload)
	}
	if got.Song != "Passionfruit" || got.Artist != "Drake" || got.Genre != "rap" {
		t.Errorf("Got %+v", got)
	}
}

func TestGetFirstSongByGenre_missing(t *testing.T) {
	payload := GetFirstSongByGenre(testData(), "All time", "jazz")
	e, ok := payload.(*Error)
	if !ok || e.Message != "No songs found for genre jazz" {
		t.Fatalf("Got %#v", payload)
	}
}

func TestRankByTopCountIsMax(t *testing.T) {
	ranked := rankBy(testData().Events(), trackKey, 0)
	if len(ranked) == 0 {
		t.Fatal("Expected a non-empty ranking")
	}
	top := ranked[0].Count
	for _, entry := range ranked {
		if entry.Count > top {
			t.Errorf("Entry %q (%d) outranks the top (%d)", entry.Name, entry.Count, top)
		}
	}
}

func TestRankByTieBreakIsEncounterOrder(t *testing.T) {
	events := []model.Listen{
		listen("2021-06-01T10:00:00Z", "Red", "B", ""),
		listen("2021-01-01T10:00:00Z", "Blue", "A", ""),
	}
	ranked := rankBy(events, trackKey, 0)
	if ranked[0].Name != "Red" {
		t.Errorf("Tie should resolve to first-encountered key, got %q", ranked[0].Name)
	}
}

func TestGetGeneralStats(t *testing.T) {
	payload := GetGeneralStats(testData(), "All time")
	got, ok := payload.(*GeneralStats)
	if !ok {
		t.Fatalf("Expected GeneralStats payload, got %#v", payload)
	}

	if got.Stats.TotalPlays != 6 {
		t.Errorf("TotalPlays = %d", got.Stats.TotalPlays)
	}
	if got.Stats.UniqueArtists != 3 {
		t.Errorf("UniqueArtists = %d", got.Stats.UniqueArtists)
	}
	if got.Stats.UniqueSongs != 4 {
		t.Errorf("UniqueSongs = %d", got.Stats.UniqueSongs)
	}
	if got.Stats.DateRange != "2021-01-05 to 2022-06-01" {
		t.Errorf("DateRange = %q", got.Stats.DateRange)
	}
	if got.TopArtists[0].Name != "Tyla" {
		t.Errorf("TopArtists[0] = %v", got.TopArtists[0])
	}
	if got.TimePatterns.PeakListeningDay != got.Stats.MostActiveDay {
		t.Error("TimePatterns and Stats disagree on the peak day")
	}
}

func TestGetGeneralStats_empty(t *testing.T) {
	payload := GetGeneralStats(dataset.New(nil), "Year 2019")
	e, ok := payload.(*Error)
	if !ok || e.Message != "No data found for Year 2019" {
		t.Fatalf("Got %#v", payload)
	}
}

func TestGetDailyListening(t *testing.T) {
	data := dataset.New([]model.Listen{
		listen("2021-09-17T12:00:00Z", "Second", "B", ""),
		listen("2021-09-17T09:00:00Z", "First", "A", ""),
		listen("2021-09-17T09:30:00Z", "First", "A", ""),
	})
	payload := GetDailyListening(data, "September 17, 2021")
	got, ok := payload.(*DailyListening)
	if !ok {
		t.Fatalf("Got %#v", payload)
	}
	if got.TotalTracks != 3 {
		t.Errorf("TotalTracks = %d", got.TotalTracks)
	}
	if got.Tracks[0].Song != "First" || got.Tracks[0].Time != "09:00" {
		t.Errorf("Tracks[0] = %+v", got.Tracks[0])
	}
	if got.MostPlayedSong != "First" {
		t.Errorf("MostPlayedSong = %q", got.MostPlayedSong)
	}
}

func TestGetDailyListeningCapsTracks(t *testing.T) {
	var events []model.Listen
	base := time.Date(2021, time.September, 17, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		events = append(events, model.Listen{
			Time:   base.Add(time.Duration(i) * time.Minute),
			Track:  "t",
			Artist: "A",
		})
	}
	payload := GetDailyListening(dataset.New(events), "September 17, 2021")
	got := payload.(*DailyListening)
	if len(got.Tracks) != maxDailyTracks {
		t.Errorf("len(Tracks) = %d, want %d", len(got.Tracks), maxDailyTracks)
	}
	if got.TotalTracks != 30 {
		t.Errorf("TotalTracks = %d, want 30", got.TotalTracks)
	}
}

func TestGetPeriodSummary(t *testing.T) {
	payload := GetPeriodSummary(testData(), "Year 2021")
	got, ok := payload.(*PeriodSummary)
	if !ok {
		t.Fatalf("Got %#v", payload)
	}
	if got.Stats.TotalPlays != 6 {
		t.Errorf("TotalPlays = %d", got.Stats.TotalPlays)
	}
	if len(got.TopArtists) == 0 || got.TopArtists[0].Name != "Tyla" {
		t.Errorf("TopArtists = %v", got.TopArtists)
	}
}
