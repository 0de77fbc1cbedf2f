package engine

import "fmt"

// Mode selects the overall rule family.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeModern  Mode = "modern"
)

// ScoringSystem selects line points, drop bonuses and the gravity curve.
type ScoringSystem string

const (
	ScoringNES    ScoringSystem = "nes"
	ScoringModern ScoringSystem = "modern"
)

// ColorTheme is cosmetic; the engine only carries it for renderers.
type ColorTheme string

const (
	ThemeNES     ColorTheme = "nes"
	ThemeGameBoy ColorTheme = "gameboy"
	ThemeModern  ColorTheme = "modern"
)

// RotationSystem selects the kick tables used when rotating.
type RotationSystem string

const (
	RotationNES RotationSystem = "nes"
	RotationSRS RotationSystem = "srs"
)

// RandomizerKind selects the piece generator.
type RandomizerKind string

const (
	RandomizerNES      RandomizerKind = "nes"
	RandomizerSevenBag RandomizerKind = "7bag"
)

// Settings is the persisted rule configuration. Each field is honoured on its
// own; mixed combinations compose literally.
type Settings struct {
	Mode           Mode           `yaml:"mode"`
	GhostPiece     bool           `yaml:"ghost_piece"`
	HoldPiece      bool           `yaml:"hold_piece"`
	NextPieceCount int            `yaml:"next_piece_count"`
	ScoringSystem  ScoringSystem  `yaml:"scoring_system"`
	ColorTheme     ColorTheme     `yaml:"color_theme"`
	RotationSystem RotationSystem `yaml:"rotation_system"`
	Randomizer     RandomizerKind `yaml:"randomizer"`
	StartingLevel  int            `yaml:"starting_level"`
}

// ClassicSettings returns the NES-style preset.
func ClassicSettings() Settings {
	return Settings{
		Mode:           ModeClassic,
		GhostPiece:     false,
		HoldPiece:      false,
		NextPieceCount: 1,
		ScoringSystem:  ScoringNES,
		ColorTheme:     ThemeNES,
		RotationSystem: RotationNES,
		Randomizer:     RandomizerNES,
		StartingLevel:  0,
	}
}

// ModernSettings returns the guideline-style preset. It is also the default
// when nothing has been stored.
func ModernSettings() Settings {
	return Settings{
		Mode:           ModeModern,
		GhostPiece:     true,
		HoldPiece:      true,
		NextPieceCount: 3,
		ScoringSystem:  ScoringModern,
		ColorTheme:     ThemeModern,
		RotationSystem: RotationSRS,
		Randomizer:     RandomizerSevenBag,
		StartingLevel:  1,
	}
}

// DefaultSettings is used when no settings are supplied or stored.
func DefaultSettings() Settings {
	return ModernSettings()
}

// PresetFor returns the preset matching mode.
func PresetFor(mode Mode) Settings {
	if mode == ModeClassic {
		return ClassicSettings()
	}
	return ModernSettings()
}

// Consistent reports whether every sub-system matches the mode's family.
// Inconsistent records are still playable.
func (s Settings) Consistent() bool {
	if s.Mode == ModeClassic {
		return s.ScoringSystem == ScoringNES && s.RotationSystem == RotationNES && s.Randomizer == RandomizerNES
	}
	return s.ScoringSystem == ScoringModern && s.RotationSystem == RotationSRS && s.Randomizer == RandomizerSevenBag
}

// MaxNextPieces bounds the preview length.
const MaxNextPieces = 5

// Validate checks every enumerated field and the numeric ranges.
func (s Settings) Validate() error {
	switch s.Mode {
	case ModeClassic, ModeModern:
	default:
		return fmt.Errorf("engine: unknown mode %q", s.Mode)
	}
	switch s.ScoringSystem {
	case ScoringNES, ScoringModern:
	default:
		return fmt.Errorf("engine: unknown scoring system %q", s.ScoringSystem)
	}
	switch s.ColorTheme {
	case ThemeNES, ThemeGameBoy, ThemeModern:
	default:
		return fmt.Errorf("engine: unknown color theme %q", s.ColorTheme)
	}
	switch s.RotationSystem {
	case RotationNES, RotationSRS:
	default:
		return fmt.Errorf("engine: unknown rotation system %q", s.RotationSystem)
	}
	switch s.Randomizer {
	case RandomizerNES, RandomizerSevenBag:
	default:
		return fmt.Errorf("engine: unknown randomizer %q", s.Randomizer)
	}
	if s.NextPieceCount < 0 || s.NextPieceCount > MaxNextPieces {
		return fmt.Errorf("engine: next piece count must be between 0 and %d, got %d", MaxNextPieces, s.NextPieceCount)
	}
	if s.StartingLevel < 0 {
		return fmt.Errorf("engine: starting level must not be negative, got %d", s.StartingLevel)
	}
	return nil
}

// SettingsPatch is a partial update. Nil fields leave the current value.
type SettingsPatch struct {
	Mode           *Mode           `yaml:"mode,omitempty"`
	GhostPiece     *bool           `yaml:"ghost_piece,omitempty"`
	HoldPiece      *bool           `yaml:"hold_piece,omitempty"`
	NextPieceCount *int            `yaml:"next_piece_count,omitempty"`
	ScoringSystem  *ScoringSystem  `yaml:"scoring_system,omitempty"`
	ColorTheme     *ColorTheme     `yaml:"color_theme,omitempty"`
	RotationSystem *RotationSystem `yaml:"rotation_system,omitempty"`
	Randomizer     *RandomizerKind `yaml:"randomizer,omitempty"`
	StartingLevel  *int            `yaml:"starting_level,omitempty"`
}

// Merge returns s with every non-nil field of p applied.
func (s Settings) Merge(p SettingsPatch) Settings {
	if p.Mode != nil {
		s.Mode = *p.Mode
	}
	if p.GhostPiece != nil {
		s.GhostPiece = *p.GhostPiece
	}
	if p.HoldPiece != nil {
		s.HoldPiece = *p.HoldPiece
	}
	if p.NextPieceCount != nil {
		s.NextPieceCount = *p.NextPieceCount
	}
	if p.ScoringSystem != nil {
		s.ScoringSystem = *p.ScoringSystem
	}
	if p.ColorTheme != nil {
		s.ColorTheme = *p.ColorTheme
	}
	if p.RotationSystem != nil {
		s.RotationSystem = *p.RotationSystem
	}
	if p.Randomizer != nil {
		s.Randomizer = *p.Randomizer
	}
	if p.StartingLevel != nil {
		s.StartingLevel = *p.StartingLevel
	}
	return s
}

// PatchFrom builds a patch that sets every field to s.
func PatchFrom(s Settings) SettingsPatch {
	return SettingsPatch{
		Mode:           &s.Mode,
		GhostPiece:     &s.GhostPiece,
		HoldPiece:      &s.HoldPiece,
		NextPieceCount: &s.NextPieceCount,
		ScoringSystem:  &s.ScoringSystem,
		ColorTheme:     &s.ColorTheme,
		RotationSystem: &s.RotationSystem,
		Randomizer:     &s.Randomizer,
		StartingLevel:  &s.StartingLevel,
	}
}
