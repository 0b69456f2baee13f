package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadeworks/breaker/internal/level"
	"github.com/arcadeworks/breaker/internal/storage"
)

var flagResetProgress bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset saved campaign progress",
	Long: `Show which campaign level the current profile will resume from.

With --reset, the saved progress is cleared and the campaign starts
over from the first level.

Examples:
  breaker progress
  breaker progress --profile alice
  breaker progress --reset`,
	Run: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagResetProgress, "reset", false, "Clear the saved progress")
}

func runProgress(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResetProgress {
		if err := store.ResetProgress(flagProfile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Progress for %q reset.\n", flagProfile)
		return
	}

	index, err := store.CurrentLevel(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	d := level.ByIndex(index)
	fmt.Printf("Profile %q resumes at level %d/%d (%s).\n",
		flagProfile, index+1, level.Count(), d.Name)
}
