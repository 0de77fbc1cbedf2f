// Package tetris adapts the rules engine to the arcade platform: it maps
// input intents to session calls, feeds frame time to the scheduler, and
// draws the game onto a character screen.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/session"
)

// Preset identifiers.
const (
	PresetClassic = "classic"
	PresetModern  = "modern"
	PresetCustom  = "custom"
)

// Game implements registry.Game for one rule preset.
type Game struct {
	id    string
	env   registry.Env
	sess  *session.Session
	sched *session.Scheduler
	frame time.Duration
	tick  uint64

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game for the given preset.
func New(id string, env registry.Env) *Game {
	return &Game{id: id, env: env}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          PresetClassic,
		Title:       "Tetris (Classic)",
		Description: "NES rules: no hold, no ghost, one preview, level palette",
		Order:       0,
	}, func(env registry.Env) registry.Game {
		return New(PresetClassic, env)
	})
	registry.Register(registry.GameInfo{
		ID:          PresetModern,
		Title:       "Tetris (Modern)",
		Description: "Guideline rules: SRS kicks, 7-bag, hold, ghost, three previews",
		Order:       1,
	}, func(env registry.Env) registry.Game {
		return New(PresetModern, env)
	})
	registry.Register(registry.GameInfo{
		ID:          PresetCustom,
		Title:       "Tetris (Custom)",
		Description: "Your saved settings (see `tetris settings`)",
		Order:       2,
	}, func(env registry.Env) registry.Game {
		return New(PresetCustom, env)
	})
}

// ID returns the preset identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if info, ok := registry.Lookup(g.id); ok {
		return info.Title
	}
	return "Tetris"
}

// SessionID returns the current session's identifier.
func (g *Game) SessionID() string {
	if g.sess == nil {
		return ""
	}
	return g.sess.ID().String()
}

// Session exposes the underlying session.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Reset starts a game. The first call creates the session from the preset;
// later calls restart it with the same high score and settings.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	if g.sess != nil {
		g.sess.ResetGame()
		g.sched.Reset()
		return
	}

	g.sess = session.New(session.Config{
		Seed:       cfg.Seed,
		Settings:   g.env.Settings,
		HighScores: g.env.HighScores,
		Logger:     g.env.Logger,
	})
	g.sched = session.NewScheduler(g.env.Config.LineClear.FrameDelay())
	g.sess.StartWith(g.presetSettings())
}

// presetSettings returns the settings a preset starts with; nil means the
// stored settings.
func (g *Game) presetSettings() *engine.Settings {
	var settings engine.Settings
	switch g.id {
	case PresetClassic:
		settings = g.env.Config.Preset(engine.ModeClassic)
	case PresetModern:
		settings = g.env.Config.Preset(engine.ModeModern)
	default:
		return nil
	}
	if g.env.StartingLevel >= 0 {
		settings.StartingLevel = g.env.StartingLevel
	}
	return &settings
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < MinWidth || height < MinHeight
}

// Step applies this frame's input in arrival order, then advances the
// scheduler by one frame. Gravity stops while the window is too small.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.sess == nil {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		g.apply(a)
	}
	if !g.tooSmall {
		g.sched.Advance(g.sess, g.frame)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	if a == core.ActionRestart {
		g.sess.ResetGame()
		g.sched.Reset()
		return
	}
	if g.tooSmall {
		return
	}
	switch a {
	case core.ActionLeft:
		g.sess.MovePiece(-1, 0)
	case core.ActionRight:
		g.sess.MovePiece(1, 0)
	case core.ActionSoftDrop:
		g.sess.SoftDrop()
	case core.ActionHardDrop:
		g.sess.HardDrop()
	case core.ActionRotate:
		g.sess.RotatePiece()
	case core.ActionHold:
		g.sess.HoldPiece()
	case core.ActionPause:
		g.sess.TogglePause()
	}
}

// State returns the platform-facing status.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{}
	}
	st := g.sess.State()
	return core.GameState{
		Score:    st.Score,
		Lines:    st.Lines,
		Level:    st.Level,
		GameOver: st.Phase == engine.PhaseGameOver,
		Paused:   st.Phase == engine.PhasePaused,
	}
}
