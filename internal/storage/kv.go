package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// Default keys for the persisted settings record and high score.
const (
	SettingsKey  = "tetris-settings"
	HighScoreKey = "tetris-highscore"
)

// Get returns the value stored under key. ok is false when the key is absent.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", key, err)
	}
	return nil
}

// SettingsStore persists engine settings as YAML under one key.
type SettingsStore struct {
	store *Store
	key   string
}

// Settings returns a settings store bound to key (SettingsKey when empty).
func (s *Store) Settings(key string) *SettingsStore {
	if key == "" {
		key = SettingsKey
	}
	return &SettingsStore{store: s, key: key}
}

func (ss *SettingsStore) LoadSettings() (engine.Settings, bool, error) {
	raw, ok, err := ss.store.Get(ss.key)
	if err != nil || !ok {
		return engine.Settings{}, false, err
	}
	var settings engine.Settings
	if err := yaml.Unmarshal([]byte(raw), &settings); err != nil {
		return engine.Settings{}, false, fmt.Errorf("storage: cannot decode settings: %w", err)
	}
	return settings, true, nil
}

func (ss *SettingsStore) SaveSettings(settings engine.Settings) error {
	raw, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("storage: cannot encode settings: %w", err)
	}
	return ss.store.Put(ss.key, string(raw))
}

// HighScoreStore persists a bare integer high score under one key.
type HighScoreStore struct {
	store *Store
	key   string
}

// HighScores returns a high score store bound to key (HighScoreKey when empty).
func (s *Store) HighScores(key string) *HighScoreStore {
	if key == "" {
		key = HighScoreKey
	}
	return &HighScoreStore{store: s, key: key}
}

func (hs *HighScoreStore) LoadHighScore() (int, error) {
	raw, ok, err := hs.store.Get(hs.key)
	if err != nil || !ok {
		return 0, err
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("storage: bad high score %q: %w", raw, err)
	}
	return score, nil
}

func (hs *HighScoreStore) SaveHighScore(score int) error {
	return hs.store.Put(hs.key, strconv.Itoa(score))
}
