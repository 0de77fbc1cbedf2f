package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoreLimit int
	flagClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show recorded games",
	Long: `Display the best recorded games for a preset (default: all presets),
plus the all-time high score the game screen shows.

Examples:
  tetris scores
  tetris scores classic --limit 20
  tetris scores modern --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the preset's history")
}

func runScores(_ *cobra.Command, args []string) {
	var games []registry.GameInfo
	if len(args) == 0 {
		games = registry.List()
	} else {
		info, ok := registry.Lookup(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available presets.")
			os.Exit(1)
		}
		games = []registry.GameInfo{info}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a preset")
			os.Exit(1)
		}
		if err := store.ClearScores(games[0].ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %s history.\n", games[0].Title)
		return
	}

	for _, g := range games {
		if err := printScores(store, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := loadConfig()
	if high, err := store.HighScores(cfg.Storage.HighScoreKey).LoadHighScore(); err == nil && high > 0 {
		fmt.Printf("All-time high score: %d\n", high)
	}
}

func printScores(store *storage.Store, g registry.GameInfo) error {
	scores, err := store.TopScores(g.ID, flagScoreLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", g.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No games recorded yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %-5d  %s\n", i+1, e.Score, e.Lines, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return nil
}
