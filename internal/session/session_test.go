package session

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

type failingStore struct{}

var errUnavailable = errors.New("store unavailable")

func (failingStore) LoadSettings() (engine.Settings, bool, error) {
	return engine.Settings{}, false, errUnavailable
}
func (failingStore) SaveSettings(engine.Settings) error { return errUnavailable }
func (failingStore) LoadHighScore() (int, error)        { return 0, errUnavailable }
func (failingStore) SaveHighScore(int) error            { return errUnavailable }

// countingStore records how often the high score is saved.
type countingStore struct {
	*MemoryStore
	saves int
}

func (c *countingStore) SaveHighScore(score int) error {
	c.saves++
	return c.MemoryStore.SaveHighScore(score)
}

func newTestSession(store *MemoryStore) *Session {
	return New(Config{Seed: 42, Settings: store, HighScores: store})
}

func TestStartUsesStoredValues(t *testing.T) {
	store := NewMemoryStore()
	store.SaveHighScore(4200)
	store.SaveSettings(engine.ClassicSettings())

	s := newTestSession(store)
	st := s.Start()

	if st.Phase != engine.PhasePlaying {
		t.Errorf("Phase = %s, expected PLAYING", st.Phase)
	}
	if st.HighScore != 4200 {
		t.Errorf("HighScore = %d, expected 4200", st.HighScore)
	}
	if st.Settings != engine.ClassicSettings() {
		t.Errorf("Settings = %+v, expected stored classic settings", st.Settings)
	}
}

func TestStartWithoutStoredSettings(t *testing.T) {
	s := newTestSession(NewMemoryStore())
	if st := s.Start(); st.Settings != engine.ModernSettings() {
		t.Errorf("Settings = %+v, expected modern defaults", st.Settings)
	}
}

func TestInitExplicitSettingsWin(t *testing.T) {
	store := NewMemoryStore()
	store.SaveSettings(engine.ModernSettings())
	classic := engine.ClassicSettings()

	st := newTestSession(store).Init(10, &classic)
	if st.Settings.Mode != engine.ModeClassic || st.HighScore != 10 {
		t.Errorf("Init ignored explicit arguments: %+v", st)
	}
}

func TestInvalidStoredSettingsIgnored(t *testing.T) {
	store := NewMemoryStore()
	bad := engine.ModernSettings()
	bad.Randomizer = "dice"
	store.SaveSettings(bad)

	if st := newTestSession(store).Start(); st.Settings != engine.DefaultSettings() {
		t.Errorf("Settings = %+v, expected defaults", st.Settings)
	}
}

func TestFailingStoresAreTolerated(t *testing.T) {
	s := New(Config{Seed: 1, Settings: failingStore{}, HighScores: failingStore{}})
	st := s.Start()
	if st.Phase != engine.PhasePlaying || st.HighScore != 0 {
		t.Fatalf("Start() = phase %s high score %d", st.Phase, st.HighScore)
	}

	ghost := false
	st, err := s.UpdateSettings(engine.SettingsPatch{GhostPiece: &ghost})
	if err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}
	if st.Settings.GhostPiece {
		t.Error("settings should change even when saving fails")
	}
}

func TestUpdateSettingsPersists(t *testing.T) {
	store := NewMemoryStore()
	s := newTestSession(store)
	s.Start()

	next := 1
	if _, err := s.UpdateSettings(engine.SettingsPatch{NextPieceCount: &next}); err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}

	saved, ok, err := store.LoadSettings()
	if err != nil || !ok {
		t.Fatalf("LoadSettings() = ok %v err %v", ok, err)
	}
	if saved.NextPieceCount != 1 || saved.Mode != engine.ModeModern {
		t.Errorf("saved settings = %+v, expected merged record", saved)
	}
}

func TestUpdateSettingsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		patch engine.SettingsPatch
	}{
		{"huge preview", engine.SettingsPatch{NextPieceCount: intPtr(1 << 40)}},
		{"preview above max", engine.SettingsPatch{NextPieceCount: intPtr(engine.MaxNextPieces + 1)}},
		{"negative level", engine.SettingsPatch{StartingLevel: intPtr(-1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMemoryStore()
			s := newTestSession(store)
			before := s.Start()

			st, err := s.UpdateSettings(tc.patch)
			if err == nil {
				t.Fatal("UpdateSettings() should fail")
			}
			if st.Settings != before.Settings || s.State().Settings != before.Settings {
				t.Errorf("Settings = %+v, expected unchanged %+v", st.Settings, before.Settings)
			}
			if _, ok, _ := store.LoadSettings(); ok {
				t.Error("rejected settings should not be saved")
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func TestHighScoreSavedOnlyWhenRaised(t *testing.T) {
	store := &countingStore{MemoryStore: NewMemoryStore()}
	store.MemoryStore.SaveHighScore(1_000_000)

	s := New(Config{Seed: 3, Settings: store.MemoryStore, HighScores: store})
	s.Start()
	for i := 0; i < 200 && s.State().Phase != engine.PhaseGameOver; i++ {
		s.HardDrop()
	}
	if s.State().Phase != engine.PhaseGameOver {
		t.Fatal("stacking pieces should end the game")
	}
	if store.saves != 0 {
		t.Errorf("high score saved %d times, expected 0", store.saves)
	}

	// A fresh store with no record is beaten by any positive score.
	store = &countingStore{MemoryStore: NewMemoryStore()}
	s = New(Config{Seed: 3, HighScores: store})
	s.Start()
	for i := 0; i < 200 && s.State().Phase != engine.PhaseGameOver; i++ {
		s.HardDrop()
	}
	if store.saves != 1 {
		t.Fatalf("high score saved %d times, expected 1", store.saves)
	}
	if got, _ := store.LoadHighScore(); got != s.State().Score {
		t.Errorf("saved high score = %d, expected %d", got, s.State().Score)
	}

	// Further actions after game over do not save again.
	s.HardDrop()
	s.Tick()
	if store.saves != 1 {
		t.Errorf("high score saved %d times after game over, expected 1", store.saves)
	}
}

func TestResetGameKeepsHighScore(t *testing.T) {
	store := NewMemoryStore()
	s := newTestSession(store)
	s.Init(500, nil)
	s.HardDrop()

	st := s.ResetGame()
	if st.HighScore != 500 || st.Score != 0 {
		t.Errorf("HighScore = %d Score = %d, expected 500 and 0", st.HighScore, st.Score)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a := New(Config{Seed: 9})
	b := New(Config{Seed: 9})
	a.Start()
	b.Start()

	a.HardDrop()
	if a.State().Statistics.Total() == b.State().Statistics.Total() {
		t.Error("actions on one session leaked into another")
	}
	if a.ID() == b.ID() {
		t.Error("sessions should have distinct IDs")
	}
}

func TestSameSeedSameGame(t *testing.T) {
	play := func() engine.State {
		s := New(Config{Seed: 77})
		s.Start()
		for i := 0; i < 12; i++ {
			s.MovePiece(-1+i%3, 0)
			s.RotatePiece()
			s.HardDrop()
		}
		return s.State()
	}
	a, b := play(), play()
	if a.Board != b.Board || a.Score != b.Score || a.Statistics != b.Statistics {
		t.Error("same seed and inputs should produce the same game")
	}
}

func TestSnapshotMatchesState(t *testing.T) {
	s := New(Config{Seed: 5})
	s.Start()
	s.SoftDrop()

	snap := s.Snapshot()
	st := s.State()
	if snap.Score != st.Score || snap.Current.Position != st.Current.Position {
		t.Errorf("Snapshot = %+v does not reflect state", snap)
	}
	if snap.DropSpeed != time.Second {
		t.Errorf("DropSpeed = %v, expected 1s", snap.DropSpeed)
	}
}
