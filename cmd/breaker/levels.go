package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadeworks/breaker/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long: `Shows the campaign level set in play order.

With --level-dir, lists the YAML levels found there instead of the
built-in set.`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory of YAML level files")
}

func runLevels(cmd *cobra.Command, args []string) {
	levels := level.Builtin()
	if flagLevelDir != "" {
		loaded, err := level.LoadDir(flagLevelDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		levels = loaded
	}

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, d := range levels {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-3s  %-*s  %-16s  %s\n", "#", maxIDLen, "ID", "Name", "Blocks")
	fmt.Printf("  %-3s  %-*s  %-16s  %s\n", "-", maxIDLen, "--", "----", "------")

	for i, d := range levels {
		fmt.Printf("  %-3d  %-*s  %-16s  %d\n", i+1, maxIDLen, d.ID, d.Name, len(d.Blocks))
	}

	fmt.Println()
	fmt.Println("Run 'breaker play --level <id>' to play a single level.")
}
