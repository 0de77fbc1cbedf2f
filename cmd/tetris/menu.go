package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a preset from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a preset, Left/Right to pick a difficulty and
Enter to play. Press B after a game (or while paused) to return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Left/Right   - Difficulty
  Enter/Space  - Play
  Tab          - Scoreboard
  Q            - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./tetris.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	tetrisCfg := loadConfig()
	logger, closeLog := gameLogger()
	defer closeLog()

	store := openStoreOrWarn()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		env := gameEnv(tetrisCfg, store, logger, menuResult.StartingLevel(tetrisCfg))
		game, err := registry.Create(menuResult.GameID, env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
