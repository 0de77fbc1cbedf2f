package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// newLogger creates the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// gameLogger returns a logger for full-screen commands. Logging to the
// terminal would tear the game screen, so it goes to ~/.arcade/tetris.log.
// The returned closer must be called on exit.
func gameLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	path := filepath.Join(home, ".arcade", "tetris.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// loadConfig loads tetris.yaml or exits.
func loadConfig() config.TetrisConfig {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStoreOrWarn opens the database; on failure it warns and returns nil so
// the game runs without persistence.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig builds the frame loop settings from the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameEnv assembles the collaborators of a local game.
func gameEnv(cfg config.TetrisConfig, store *storage.Store, logger *log.Logger, startingLevel int) registry.Env {
	env := registry.Env{
		Config:        cfg,
		Logger:        logger,
		StartingLevel: startingLevel,
	}
	return tui.BindStore(env, store, "")
}
