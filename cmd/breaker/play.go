package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeworks/breaker/internal/level"
	"github.com/arcadeworks/breaker/internal/platform/tui"
	"github.com/arcadeworks/breaker/internal/session"
	"github.com/arcadeworks/breaker/internal/storage"
)

var (
	flagLevelDir  string
	flagLevelID   string
	flagLevelFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start playing. The campaign resumes from your saved level unless a
specific level is requested.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  P/Esc      - Pause
  R          - Retry (after game over)
  Q/Ctrl+C   - Quit

Examples:
  breaker play
  breaker play --level classic
  breaker play --level-dir ./levels
  breaker play --level-file ./my-level.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory of YAML level files (replaces the built-in set)")
	playCmd.Flags().StringVar(&flagLevelID, "level", "", "Play a single built-in level by ID")
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Play a single YAML level file")
}

func runPlay(cmd *cobra.Command, args []string) {
	levels, err := resolvePlaySet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the initial frame; resizes follow live.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	// Single-level runs are ephemeral; only campaign runs resume from
	// and write back the saved level index.
	var progress session.ProgressStore
	if store != nil && flagLevelID == "" && flagLevelFile == "" {
		progress = store
	}

	sess, err := session.New(levels, progress, flagProfile)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(sess, store, flagProfile, width, height, flagFPS)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolvePlaySet picks the level list for this run from the flags.
func resolvePlaySet() ([]level.Descriptor, error) {
	switch {
	case flagLevelFile != "":
		d, err := level.LoadFile(flagLevelFile)
		if err != nil {
			return nil, err
		}
		return []level.Descriptor{d}, nil

	case flagLevelID != "":
		d, ok := level.ByID(flagLevelID)
		if !ok {
			return nil, fmt.Errorf("unknown level %q, run 'breaker levels' to see the list", flagLevelID)
		}
		return []level.Descriptor{d}, nil

	case flagLevelDir != "":
		levels, err := level.LoadDir(flagLevelDir)
		if err != nil {
			return nil, err
		}
		if len(levels) == 0 {
			return nil, fmt.Errorf("no levels found in %s", flagLevelDir)
		}
		return levels, nil

	default:
		return level.Builtin(), nil
	}
}
