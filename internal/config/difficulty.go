package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// DifficultyPreset picks a starting level without naming a number.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// AllDifficulties returns the presets in menu order.
func AllDifficulties() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty parses a preset name, case-insensitively.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// DifficultyConfig maps presets to starting levels per mode.
type DifficultyConfig struct {
	Classic LevelLadder `yaml:"classic"`
	Modern  LevelLadder `yaml:"modern"`
}

// LevelLadder is the starting level for each preset.
type LevelLadder struct {
	Easy   int `yaml:"easy"`
	Normal int `yaml:"normal"`
	Hard   int `yaml:"hard"`
}

// StartingLevel returns the starting level for preset under mode.
func (d DifficultyConfig) StartingLevel(mode engine.Mode, preset DifficultyPreset) int {
	ladder := d.Modern
	if mode == engine.ModeClassic {
		ladder = d.Classic
	}
	switch preset {
	case DifficultyNormal:
		return ladder.Normal
	case DifficultyHard:
		return ladder.Hard
	default:
		return ladder.Easy
	}
}

// ApplyDifficulty sets the starting level of settings from a preset.
func (c TetrisConfig) ApplyDifficulty(settings engine.Settings, preset DifficultyPreset) engine.Settings {
	settings.StartingLevel = c.Difficulty.StartingLevel(settings.Mode, preset)
	return settings
}
