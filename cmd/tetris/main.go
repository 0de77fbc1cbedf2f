// tetris is a terminal Tetris with classic (NES) and modern (guideline)
// rule sets.
//
// Usage:
//
//	tetris list                  - List rule presets
//	tetris play [preset]         - Play a preset (default: modern)
//	tetris menu                  - Pick presets interactively
//	tetris scores [preset]       - Show recorded games
//	tetris settings show|set|reset
//	tetris serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/tetris.db)
//	--config <path> - Use a custom tetris.yaml
//	--verbose       - Debug logging
//
// TETRIS_DB and TETRIS_CONFIG (also read from a .env file) replace the
// defaults of --db and --config.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Register the presets.
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal, classic or modern",
	Long: `A terminal Tetris with two rule sets:

  classic  - NES rules: no hold, no ghost, one preview, NES scoring and speeds
  modern   - guideline rules: SRS wall kicks, 7-bag, hold, ghost, three previews
  custom   - whatever you saved with 'tetris settings'

Available commands:
  list      - Show the rule presets
  play      - Play a preset directly
  menu      - Interactive preset picker
  scores    - View recorded games
  settings  - Show or change saved settings
  serve     - Start SSH server for remote play

Examples:
  tetris play classic --level 9
  tetris menu
  tetris settings set ghost_piece=false next_piece_count=5
  tetris serve --ssh :2222`,
	PersistentPreRun: applyEnvDefaults,
	SilenceUsage:     true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/tetris.db", "Path to the database (env TETRIS_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom tetris.yaml (env TETRIS_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnvDefaults fills flags the user left unset from the environment.
func applyEnvDefaults(cmd *cobra.Command, _ []string) {
	envFlags := map[string]*string{
		"db":     &flagDBPath,
		"config": &flagConfig,
	}
	envNames := map[string]string{
		"db":     "TETRIS_DB",
		"config": "TETRIS_CONFIG",
	}
	for name, target := range envFlags {
		if cmd.Flags().Changed(name) {
			continue
		}
		if v := os.Getenv(envNames[name]); v != "" {
			*target = v
		}
	}
}
