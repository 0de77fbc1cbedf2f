package session

import (
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// SettingsStore persists the player's rule settings under a fixed key.
// LoadSettings reports ok=false when nothing has been saved yet.
type SettingsStore interface {
	LoadSettings() (settings engine.Settings, ok bool, err error)
	SaveSettings(settings engine.Settings) error
}

// HighScoreStore persists the single best score. A missing value loads as 0.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryStore keeps settings and the high score in memory. It satisfies both
// store interfaces and is safe for concurrent use.
type MemoryStore struct {
	mu        sync.Mutex
	settings  *engine.Settings
	highScore int
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) LoadSettings() (engine.Settings, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		return engine.Settings{}, false, nil
	}
	return *m.settings, true, nil
}

func (m *MemoryStore) SaveSettings(settings engine.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &settings
	return nil
}

func (m *MemoryStore) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highScore, nil
}

func (m *MemoryStore) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highScore = score
	return nil
}
