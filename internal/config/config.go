// Package config provides YAML-based game configuration loading for the
// tetris platform.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// TetrisConfig contains all tunable configuration outside the rules engine.
type TetrisConfig struct {
	Presets    PresetsConfig    `yaml:"presets"`
	LineClear  LineClearConfig  `yaml:"line_clear"`
	Storage    StorageConfig    `yaml:"storage"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PresetsConfig holds the settings records for the two rule families.
type PresetsConfig struct {
	Classic engine.Settings `yaml:"classic"`
	Modern  engine.Settings `yaml:"modern"`
}

// LineClearConfig tunes the classic line clear animation cadence.
type LineClearConfig struct {
	FrameDelayMs int `yaml:"frame_delay_ms"`
}

// FrameDelay returns the configured delay, or the engine default when unset.
func (c LineClearConfig) FrameDelay() time.Duration {
	if c.FrameDelayMs <= 0 {
		return engine.LineClearFrameDelay
	}
	return time.Duration(c.FrameDelayMs) * time.Millisecond
}

// StorageConfig names the keys used for persisted settings and high score.
type StorageConfig struct {
	SettingsKey  string `yaml:"settings_key"`
	HighScoreKey string `yaml:"high_score_key"`
}

// Preset returns the settings record for mode.
func (c TetrisConfig) Preset(mode engine.Mode) engine.Settings {
	if mode == engine.ModeClassic {
		return c.Presets.Classic
	}
	return c.Presets.Modern
}

// Validate checks both presets.
func (c TetrisConfig) Validate() error {
	if err := c.Presets.Classic.Validate(); err != nil {
		return fmt.Errorf("config: classic preset: %w", err)
	}
	if err := c.Presets.Modern.Validate(); err != nil {
		return fmt.Errorf("config: modern preset: %w", err)
	}
	return nil
}
