// Package session wraps the pure engine in a mutable handle that owns one game,
// talks to the settings and high-score stores, and feeds timing into the
// engine through a Scheduler.
package session

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// Config configures a new Session. Nil stores disable persistence.
type Config struct {
	Seed       int64 // 0 picks a time-based seed
	Settings   SettingsStore
	HighScores HighScoreStore
	Logger     *log.Logger
	Rand       engine.Rand // overrides Seed when set
}

// Session owns a single game. It is not safe for concurrent use; each
// connection or player gets its own Session.
type Session struct {
	id       uuid.UUID
	state    engine.State
	rng      engine.Rand
	seed     int64 // zero when Rand was injected
	settings SettingsStore
	scores   HighScoreStore
	logger   *log.Logger
}

// New creates a Session in the INITIAL phase with default settings.
func New(cfg Config) *Session {
	rng := cfg.Rand
	var seed int64
	if rng == nil {
		seed = cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	id := uuid.New()
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		id:       id,
		state:    engine.NewState(0, engine.DefaultSettings()),
		rng:      rng,
		seed:     seed,
		settings: cfg.Settings,
		scores:   cfg.HighScores,
		logger:   logger.With("session", id.String()[:8]),
	}
}

// ID identifies this session in logs and recorded scores.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current state value.
func (s *Session) State() engine.State {
	return s.state
}

// Snapshot returns the renderer view of the current state.
func (s *Session) Snapshot() engine.Snapshot {
	return s.state.Snapshot()
}

// Start loads the stored high score and starts a game with the stored
// settings (or the defaults).
func (s *Session) Start() engine.State {
	return s.StartWith(nil)
}

// StartWith loads the stored high score and starts a game with settings.
// Nil settings behave like Start.
func (s *Session) StartWith(settings *engine.Settings) engine.State {
	return s.Init(s.loadHighScore(), settings)
}

// Init starts a game. Nil settings fall back to the stored settings and then
// to engine.DefaultSettings.
func (s *Session) Init(highScore int, settings *engine.Settings) engine.State {
	if settings == nil {
		if stored, ok := s.loadSettings(); ok {
			settings = &stored
		}
	}
	st := s.apply(engine.InitAction{HighScore: highScore, Settings: settings})
	s.logger.Info("new game", "mode", st.Settings.Mode, "level", st.Level, "seed", s.seed)
	return st
}

// ResetGame restarts with the current high score and settings.
func (s *Session) ResetGame() engine.State {
	st := s.apply(engine.ResetAction{})
	s.logger.Debug("game reset", "mode", st.Settings.Mode)
	return st
}

// UpdateSettings merges patch into the current settings and saves the result.
// A patch that leaves the settings invalid is rejected and nothing changes.
func (s *Session) UpdateSettings(patch engine.SettingsPatch) (engine.State, error) {
	if err := s.state.Settings.Merge(patch).Validate(); err != nil {
		return s.state, fmt.Errorf("session: update settings: %w", err)
	}
	st := s.apply(engine.UpdateSettingsAction{Patch: patch})
	if s.settings != nil {
		if err := s.settings.SaveSettings(st.Settings); err != nil {
			s.logger.Warn("cannot save settings", "err", err)
		} else {
			s.logger.Debug("settings saved", "mode", st.Settings.Mode)
		}
	}
	return st, nil
}

func (s *Session) MovePiece(dx, dy int) engine.State {
	return s.apply(engine.MoveAction{DX: dx, DY: dy})
}

func (s *Session) RotatePiece() engine.State {
	return s.apply(engine.RotateAction{})
}

func (s *Session) HardDrop() engine.State {
	return s.apply(engine.HardDropAction{})
}

func (s *Session) SoftDrop() engine.State {
	return s.apply(engine.SoftDropAction{})
}

func (s *Session) HoldPiece() engine.State {
	return s.apply(engine.HoldAction{})
}

func (s *Session) TogglePause() engine.State {
	return s.apply(engine.TogglePauseAction{})
}

// Tick delivers one gravity step.
func (s *Session) Tick() engine.State {
	return s.apply(engine.TickAction{})
}

// LineClearTick delivers one animation frame.
func (s *Session) LineClearTick() engine.State {
	return s.apply(engine.LineClearTickAction{})
}

// apply runs one action and handles the side effects of a game ending.
func (s *Session) apply(a engine.Action) engine.State {
	prev := s.state
	s.state = engine.Reduce(prev, a, s.rng)

	if s.state.Phase == engine.PhaseGameOver && prev.Phase != engine.PhaseGameOver {
		s.logger.Info("game over",
			"score", s.state.Score,
			"lines", s.state.Lines,
			"level", s.state.Level,
		)
		if s.state.HighScore > prev.HighScore {
			s.saveHighScore(s.state.HighScore)
		}
	}
	return s.state
}

func (s *Session) loadHighScore() int {
	if s.scores == nil {
		return 0
	}
	score, err := s.scores.LoadHighScore()
	if err != nil {
		s.logger.Warn("cannot load high score", "err", err)
		return 0
	}
	return score
}

func (s *Session) saveHighScore(score int) {
	s.logger.Info("new high score", "score", score)
	if s.scores == nil {
		return
	}
	if err := s.scores.SaveHighScore(score); err != nil {
		s.logger.Warn("cannot save high score", "err", err)
	}
}

func (s *Session) loadSettings() (engine.Settings, bool) {
	if s.settings == nil {
		return engine.Settings{}, false
	}
	settings, ok, err := s.settings.LoadSettings()
	if err != nil {
		s.logger.Warn("cannot load settings", "err", err)
		return engine.Settings{}, false
	}
	if ok {
		if err := settings.Validate(); err != nil {
			s.logger.Warn("ignoring stored settings", "err", err)
			return engine.Settings{}, false
		}
	}
	return settings, ok
}
