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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"spotiquery/internal/store"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Imports streaming-history export files into the local database",
	Long: `Reads every Streaming_History_Audio_*.json file in the data directory
and inserts the playback records into the local database. Plays shorter
than 30 seconds are skipped, and re-running on the same files adds
nothing, so it is safe to point at a directory that mixes old and new
export files.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runUpdate(viper.GetString("database"), viper.GetString("data_dir"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

// exportRecord is one entry of a streaming-history export file. Metadata
// fields are null for podcast episodes, which the import then drops.
type exportRecord struct {
	Timestamp string `json:"ts"`
	Track     string `json:"master_metadata_track_name"`
	Artist    string `json:"master_metadata_album_artist_name"`
	Album     string `json:"master_metadata_album_album_name"`
	MsPlayed  int64  `json:"ms_played"`
}

func runUpdate(dbPath string, dataDir string) error {
	files, err := filepath.Glob(filepath.Join(dataDir, "Streaming_History_Audio_*.json"))
	if err != nil {
		return fmt.Errorf("globbing data dir: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no Streaming_History_Audio_*.json files found in %q", dataDir)
	}

	s, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	totalAdded := 0
	for _, file := range files {
		records, err := readExportFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		added, err := s.ImportListens(records)
		if err != nil {
			return fmt.Errorf("importing %s: %w", file, err)
		}
		fmt.Printf("%s: %d records, %d new\n", filepath.Base(file), len(records), added)
		totalAdded += added
	}
	fmt.Printf("Added %d listens from %d files\n", totalAdded, len(files))

	return nil
}

func readExportFile(path string) ([]store.ListenImport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []exportRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding export: %w", err)
	}

	listens := make([]store.ListenImport, 0, len(records))
	for _, r := range records {
		ts, err := time.Parse(time.RFC3339, r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", r.Timestamp, err)
		}
		listens = append(listens, store.ListenImport{
			Time:     ts,
			Track:    r.Track,
			Artist:   r.Artist,
			Album:    r.Album,
			PlayedMS: r.MsPlayed,
		})
	}
	return listens, nil
}
