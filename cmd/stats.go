/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"spotiquery/internal/analysis"
	"spotiquery/internal/model"
	"spotiquery/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [from] [to (optional)]",
	Short: "Prints a listening summary for a period",
	Long: `Prints total plays and hours, the most-played artists, songs, and genres,
and time-of-day patterns for the given period. With no arguments the
report covers the whole listening history. Dates are given as YYYY,
YYYY-MM, or YYYY-MM-DD.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printStats(os.Stdout, viper.GetString("database"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func printStats(out io.Writer, dbPath string, args []string) error {
	s, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	data, err := s.LoadDataset()
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	label := "All time"
	if len(args) > 0 {
		start, end, err := parseDateRangeFromArgs(args)
		if err != nil {
			return err
		}
		label = fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
		data = data.Filter(func(e model.Listen) bool {
			return !e.Time.Before(start) && e.Time.Before(end)
		})
	}

	payload := analysis.GetGeneralStats(data, label)
	if e, ok := payload.(*analysis.Error); ok {
		return fmt.Errorf("%s", e.Message)
	}
	stats := payload.(*analysis.GeneralStats)

	fmt.Fprintf(out, "Listening Report: %s\n", label)
	fmt.Fprintf(out, "Covered: %s\n", stats.Stats.DateRange)
	fmt.Fprintf(out, "Total Plays: %d\n", stats.Stats.TotalPlays)
	fmt.Fprintf(out, "Total Hours: %.1f\n", stats.Stats.TotalHours)
	fmt.Fprintf(out, "Unique Artists: %d\n", stats.Stats.UniqueArtists)
	fmt.Fprintf(out, "Unique Songs: %d\n", stats.Stats.UniqueSongs)
	fmt.Fprintf(out, "Average Daily Hours: %.1f\n", stats.Stats.AvgDailyHours)
	fmt.Fprintf(out, "Peak Listening: %s, %d:00\n\n",
		stats.TimePatterns.PeakListeningDay, stats.TimePatterns.PeakListeningHour)

	printRanking(out, "Artist", stats.TopArtists)
	printRanking(out, "Song", stats.TopSongs)
	printRanking(out, "Genre", stats.TopGenres)

	return nil
}

func printRanking(out io.Writer, kind string, entries analysis.RankedList) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(out, "## Top %ss\n", kind)
	table := tablewriter.NewWriter(out)
	table.Header([]string{"#", kind, "Plays"})
	for i, entry := range entries {
		table.Append([]string{strconv.Itoa(i + 1), entry.Name, strconv.Itoa(entry.Count)})
	}
	table.Render()
	fmt.Fprintln(out)
}
