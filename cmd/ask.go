package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"spotiquery/internal/query"
	"spotiquery/internal/store"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answers a free-text question about your listening history",
	Long: `Classifies the question, resolves any artist or genre it names against
your actual listening history, applies any time scope it mentions, and
prints the structured answer as YAML.

Examples:
  spotiquery ask my favorite genre in 2022
  spotiquery ask "water by tyla"
  spotiquery ask first Drake song
  spotiquery ask what did I listen to on March 3rd 2023`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		question := strings.Join(args, " ")
		err := runAsk(os.Stdout, viper.GetString("database"), question)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(out io.Writer, dbPath string, question string) error {
	s, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	data, err := s.LoadDataset()
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	result := query.New(data).Analyze(question)

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
