// Package registry provides a global registry of playable rule presets.
// Presets register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/session"
)

// Game is the interface the platform drives. Games contain pure logic with
// no Bubble Tea dependency; the platform handles input mapping, timing, and
// rendering.
type Game interface {
	// ID returns the preset identifier (e.g., "classic"). Used for CLI
	// commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new game. The first call creates the session; later
	// calls restart it, keeping the high score and settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed frame of 1/TickRate seconds.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game status.
	State() core.GameState
}

// Env carries the collaborators a game needs. Zero values are usable:
// nil stores disable persistence and a nil logger discards output.
type Env struct {
	Config     config.TetrisConfig
	Settings   session.SettingsStore
	HighScores session.HighScoreStore
	Logger     *log.Logger

	// StartingLevel overrides the preset's starting level when >= 0.
	StartingLevel int
}

// DefaultEnv returns an Env with built-in configuration and no persistence.
func DefaultEnv() Env {
	return Env{
		Config:        config.DefaultTetrisConfig(),
		Logger:        log.New(io.Discard),
		StartingLevel: -1,
	}
}

// GameInfo describes a registered preset.
type GameInfo struct {
	ID          string
	Title       string
	Description string
	Order       int // menu position, lowest first
}

// Factory creates a new game bound to env.
type Factory func(env Env) Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Typically called from a game package's init() function.
// Panics if a preset with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered preset in menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by preset ID.
// Returns an error if the ID is not registered.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(env), nil
}

// Lookup returns the metadata for id.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(width, height int)
}

// SessionIdentifier is implemented by games that can name the session a
// score belongs to.
type SessionIdentifier interface {
	SessionID() string
}
