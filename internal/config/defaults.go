package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Presets: PresetsConfig{
			Classic: engine.ClassicSettings(),
			Modern:  engine.ModernSettings(),
		},
		LineClear: LineClearConfig{
			FrameDelayMs: 50,
		},
		Storage: StorageConfig{
			SettingsKey:  "tetris-settings",
			HighScoreKey: "tetris-highscore",
		},
		Difficulty: DifficultyConfig{
			Classic: LevelLadder{Easy: 0, Normal: 9, Hard: 18},
			Modern:  LevelLadder{Easy: 1, Normal: 5, Hard: 10},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
