package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/session"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved settings",
	Long: `Manage the settings the 'custom' preset plays with.

Keys:
  mode              classic | modern
  ghost_piece       true | false
  hold_piece        true | false
  next_piece_count  0..
  scoring_system    nes | modern
  color_theme       nes | gameboy | modern
  rotation_system   nes | srs
  randomizer        nes | 7bag
  starting_level    0..

Any combination is playable; mixing classic and modern sub-systems prints a
warning.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved settings as YAML",
	Args:  cobra.NoArgs,
	Run:   runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set key=value...",
	Short: "Change some settings and save them",
	Example: `  tetris settings set ghost_piece=false
  tetris settings set randomizer=7bag rotation_system=srs`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [classic|modern]",
	Short: "Replace the saved settings with a preset (default modern)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

// settingsSession opens the database and starts a session on the saved
// settings. Changes go through the session so they are validated, merged
// and saved the same way the game does it.
func settingsSession() (*session.Session, *storage.Store, *log.Logger) {
	cfg := loadConfig()
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr)
	sessLogger := newLogger(os.Stderr)
	if !flagVerbose {
		sessLogger.SetLevel(log.WarnLevel)
	}
	sess := session.New(session.Config{
		Seed:       flagSeed,
		Settings:   store.Settings(cfg.Storage.SettingsKey),
		HighScores: store.HighScores(cfg.Storage.HighScoreKey),
		Logger:     sessLogger,
	})
	sess.Start()
	return sess, store, logger
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	sess, store, _ := settingsSession()
	defer store.Close()

	printSettings(sess.State().Settings)
}

func runSettingsSet(_ *cobra.Command, args []string) {
	patch, err := config.ParsePatch(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess, store, logger := settingsSession()
	defer store.Close()

	st, err := sess.UpdateSettings(patch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !st.Settings.Consistent() {
		logger.Warn("settings mix classic and modern sub-systems; they will be combined as given", "mode", st.Settings.Mode)
	}
	printSettings(st.Settings)
}

func runSettingsReset(_ *cobra.Command, args []string) {
	mode := engine.ModeModern
	if len(args) > 0 {
		mode = engine.Mode(args[0])
		if mode != engine.ModeClassic && mode != engine.ModeModern {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want classic or modern)\n", args[0])
			os.Exit(1)
		}
	}

	sess, store, _ := settingsSession()
	defer store.Close()

	preset := loadConfig().Preset(mode)
	st, err := sess.UpdateSettings(engine.PatchFrom(preset))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printSettings(st.Settings)
}

func printSettings(s engine.Settings) {
	out, err := yaml.Marshal(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
