package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	flagLevel      int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a preset",
	Long: `Start playing the given preset (classic, modern or custom; default modern).

Controls:
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Up, W, X         - Rotate clockwise
  Space            - Hard drop
  C                - Hold
  P/Esc            - Pause
  R                - Restart
  B                - Back (when paused or over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Screenshot to ~/.arcade/screenshots

Difficulty picks a starting level from tetris.yaml:
  easy, normal, hard

Examples:
  tetris play
  tetris play classic --level 18
  tetris play modern --difficulty hard
  tetris play custom --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", -1, "Starting level (overrides --difficulty)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "modern"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available presets.")
		os.Exit(1)
	}

	cfg := loadConfig()
	startingLevel, err := startingLevelFor(cfg, gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := gameLogger()
	defer closeLog()

	store := openStoreOrWarn()
	env := gameEnv(cfg, store, logger, startingLevel)

	game, err := registry.Create(gameID, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// startingLevelFor resolves --level and --difficulty; -1 keeps the preset's
// own level.
func startingLevelFor(cfg config.TetrisConfig, gameID string) (int, error) {
	if flagLevel >= 0 {
		return flagLevel, nil
	}
	if flagDifficulty == "" {
		return -1, nil
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return 0, err
	}
	result := tui.MenuResult{GameID: gameID, Difficulty: preset}
	level := result.StartingLevel(cfg)
	if level < 0 {
		return 0, fmt.Errorf("--difficulty applies to %s and %s only", engine.ModeClassic, engine.ModeModern)
	}
	return level, nil
}
