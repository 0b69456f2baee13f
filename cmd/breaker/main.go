// breaker is a terminal brick-breaking game built around a pure,
// frame-rate-independent simulation core.
//
// Usage:
//
//	breaker play             - Play the campaign
//	breaker levels           - List available levels
//	breaker scores           - Show high scores
//	breaker progress         - Show or reset saved campaign progress
//	breaker serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Driver frame rate (default: 60)
//	--db <path>       - Database path (default: ~/.breaker/breaker.db)
//	--profile <name>  - Player profile for progress and scores
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagProfile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breaker",
	Short: "Breaker - brick-breaking arcade game for your terminal",
	Long: `Breaker is a terminal brick-breaking game: steer the paddle, keep
the ball in play, and clear every block to advance through the campaign.

Available commands:
  play      - Play the campaign (resumes from your saved level)
  levels    - List the campaign levels
  scores    - View high scores
  progress  - Show or reset saved campaign progress
  serve     - Start SSH server for remote play

Examples:
  breaker play
  breaker play --level-dir ./levels
  breaker scores
  breaker serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Driver frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breaker/breaker.db", "Path to the progress/scores database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "default", "Player profile name")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}
