package tui

import (
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// BindStore points env's settings and high-score stores at the database,
// under the configured keys plus an optional namespace (an SSH user name).
// A nil store leaves persistence disabled.
func BindStore(env registry.Env, store *storage.Store, namespace string) registry.Env {
	if store == nil {
		return env
	}

	settingsKey := env.Config.Storage.SettingsKey
	highScoreKey := env.Config.Storage.HighScoreKey
	if namespace != "" {
		settingsKey += ":" + namespace
		highScoreKey += ":" + namespace
	}

	env.Settings = store.Settings(settingsKey)
	env.HighScores = store.HighScores(highScoreKey)
	return env
}
