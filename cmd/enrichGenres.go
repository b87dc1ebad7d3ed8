package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"spotiquery/internal/spotify"
	"spotiquery/internal/store"
)

var genreUpdateInterval string

var enrichGenresCmd = &cobra.Command{
	Use:   "enrich-genres",
	Short: "Fetches genre labels for artists in the listening history",
	Long: `Looks up every artist in the listening history whose genre entry is
missing or stale via the Spotify Web API, and caches the results in the
local database. Genre-based questions ("my favorite genre", "first
Amapiano song") only work for artists that have been enriched.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runEnrichGenres(viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(enrichGenresCmd)
	enrichGenresCmd.Flags().StringVar(&genreUpdateInterval, "genre-update-interval", "8760h",
		"Minimum time between genre lookups for a given artist")
}

func runEnrichGenres(dbPath string) error {
	interval, err := time.ParseDuration(genreUpdateInterval)
	if err != nil {
		return fmt.Errorf("parsing genre-update-interval: %w", err)
	}

	s, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	artists, err := s.ArtistsNeedingGenres(interval)
	if err != nil {
		return fmt.Errorf("finding artists to enrich: %w", err)
	}
	if len(artists) == 0 {
		fmt.Println("All artists are up to date")
		return nil
	}
	fmt.Printf("Fetching genres for %d artists\n", len(artists))

	ctx := context.Background()
	client, err := spotify.NewClient(ctx,
		viper.GetString("spotify_client_id"), viper.GetString("spotify_client_secret"))
	if err != nil {
		return fmt.Errorf("creating Spotify client: %w", err)
	}

	fetched := 0
	for _, artist := range artists {
		genres, err := client.GetArtistGenres(ctx, artist)
		if err != nil {
			// Keep going so one bad lookup doesn't waste the rest of the run.
			fmt.Printf("Skipping %q: %v\n", artist, err)
			continue
		}
		if err := s.SetArtistGenres(artist, genres); err != nil {
			return err
		}
		fetched++
		if fetched%50 == 0 {
			fmt.Printf("Fetched %d/%d\n", fetched, len(artists))
		}
	}
	fmt.Printf("Done: %d of %d artists enriched\n", fetched, len(artists))

	return nil
}
