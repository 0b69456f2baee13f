package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadeworks/breaker/internal/platform/tui"
	"github.com/arcadeworks/breaker/internal/storage"
)

var flagScoresTable bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores for the current profile.

Examples:
  breaker scores
  breaker scores --profile alice
  breaker scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTable, "interactive", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTable {
		if err := tui.RunScoreboard(store, flagProfile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(flagProfile, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", flagProfile)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breaker play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-7d  %s\n", i+1, entry.Score, entry.Level+1, dateStr)
	}

	high, err := store.HighScore(flagProfile)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
}
