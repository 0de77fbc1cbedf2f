package engine

import (
	"reflect"
	"testing"
	"time"
)

func TestInitClassic(t *testing.T) {
	settings := ClassicSettings()
	st := Init(1234, &settings, seeded(1))

	if st.Phase != PhasePlaying {
		t.Errorf("Phase = %s, expected PLAYING", st.Phase)
	}
	if st.Current == nil || st.Current.Position != SpawnPosition {
		t.Fatalf("Current = %+v, expected a piece at spawn", st.Current)
	}
	if st.Statistics.Total() != 1 || st.Statistics.Count(st.Current.Kind) != 1 {
		t.Errorf("Statistics = %v, expected the first piece counted", st.Statistics)
	}
	if st.Level != 0 || st.DropSpeed != 800*time.Millisecond {
		t.Errorf("Level = %d DropSpeed = %v, expected 0 and 800ms", st.Level, st.DropSpeed)
	}
	if st.HighScore != 1234 {
		t.Errorf("HighScore = %d, expected 1234", st.HighScore)
	}
	if len(st.NextPieces()) != 1 {
		t.Errorf("NextPieces() = %v, expected one preview", st.NextPieces())
	}
	if !st.CanHold || st.HoldAvailable() {
		t.Error("classic mode should report hold unavailable")
	}
}

func TestInitDefaultsToModern(t *testing.T) {
	st := Init(0, nil, seeded(1))

	if st.Settings != ModernSettings() {
		t.Errorf("Settings = %+v, expected the modern preset", st.Settings)
	}
	if st.Level != 1 || st.DropSpeed != time.Second {
		t.Errorf("Level = %d DropSpeed = %v, expected 1 and 1s", st.Level, st.DropSpeed)
	}
	if len(st.NextPieces()) != 3 {
		t.Errorf("NextPieces() = %v, expected three previews", st.NextPieces())
	}
	if !st.HoldAvailable() {
		t.Error("hold should be available at the start of a modern game")
	}
	if _, ok := st.GhostPiece(); !ok {
		t.Error("ghost should be shown in modern mode")
	}
}

func TestMove(t *testing.T) {
	st := playing(ModernSettings(), EmptyGrid(), at(T, 3, 5, 0))

	left := Move(st, -1, 0, seeded(1))
	if left.Current.Position.X != 2 {
		t.Errorf("after left X = %d, expected 2", left.Current.Position.X)
	}
	if st.Current.Position.X != 3 {
		t.Error("Move modified its input state")
	}

	wall := playing(ModernSettings(), EmptyGrid(), at(T, 0, 5, 0))
	if got := Move(wall, -1, 0, seeded(1)); !reflect.DeepEqual(got, wall) {
		t.Error("blocked sideways move should leave the state unchanged")
	}
}

func TestGravityLocks(t *testing.T) {
	st := playing(ModernSettings(), EmptyGrid(), at(O, 0, 18, 0))
	kinds := st.NextPieces()

	got := Tick(st, seeded(1))

	if got.Board.At(0, 19) != O || got.Board.At(1, 18) != O {
		t.Error("piece was not committed")
	}
	if got.Current == nil || got.Current.Kind != kinds[0] || got.Current.Position != SpawnPosition {
		t.Errorf("Current = %+v, expected %v at spawn", got.Current, kinds[0])
	}
	if got.Statistics.Total() != st.Statistics.Total()+1 {
		t.Error("dealt piece should be counted")
	}
	if got.Phase != PhasePlaying {
		t.Errorf("Phase = %s, expected PLAYING", got.Phase)
	}
}

func TestSoftDrop(t *testing.T) {
	st := playing(ModernSettings(), EmptyGrid(), at(T, 3, 5, 0))
	got := SoftDrop(st)
	if got.Current.Position.Y != 6 || got.Score != 1 {
		t.Errorf("SoftDrop: Y = %d score = %d, expected 6 and 1", got.Current.Position.Y, got.Score)
	}

	classic := playing(ClassicSettings(), EmptyGrid(), at(T, 3, 5, 0))
	if got := SoftDrop(classic); got.Score != 0 {
		t.Errorf("classic soft drop scored %d, expected 0", got.Score)
	}

	floor := playing(ModernSettings(), EmptyGrid(), at(O, 0, 18, 0))
	if got := SoftDrop(floor); !reflect.DeepEqual(got, floor) {
		t.Error("blocked soft drop should neither move nor lock")
	}
}

func TestHardDropModern(t *testing.T) {
	st := playing(ModernSettings(), EmptyGrid(), at(O, 0, 0, 0))
	got := HardDrop(st, seeded(1))

	if got.Board.At(0, 19) != O || got.Board.At(1, 18) != O {
		t.Error("hard drop should lock at the floor")
	}
	if got.Score != 36 {
		t.Errorf("Score = %d, expected 2 x 18 = 36", got.Score)
	}
	if got.Current.Position != SpawnPosition {
		t.Error("hard drop should deal the next piece")
	}
}

func TestHardDropClassicIsGravity(t *testing.T) {
	cases := map[string]Piece{
		"mid-air": at(T, 3, 5, 0),
		"landed":  at(O, 0, 18, 0),
	}
	for name, piece := range cases {
		t.Run(name, func(t *testing.T) {
			st := playing(ClassicSettings(), fillRows(EmptyGrid(), []int{19}, 0, 1, 2), piece)
			drop := HardDrop(st, seeded(5))
			tick := Tick(st, seeded(5))
			if !reflect.DeepEqual(drop, tick) {
				t.Errorf("HardDrop = %+v\nexpected Tick = %+v", drop, tick)
			}
		})
	}
}

func TestClassicTetrisScore(t *testing.T) {
	board := fillRows(EmptyGrid(), []int{16, 17, 18, 19}, 9)
	// Vertical I occupies matrix column 2.
	st := playing(ClassicSettings(), board, at(I, 7, 16, 1))

	st = Tick(st, seeded(1))
	if st.Phase != PhaseLineClear {
		t.Fatalf("Phase = %s, expected LINE_CLEAR", st.Phase)
	}
	for i := 0; i < LineClearFrames; i++ {
		st = LineClearTick(st, seeded(1))
	}
	if st.Score != 1200 {
		t.Errorf("Score = %d, expected 1200", st.Score)
	}
	if st.Lines != 4 || st.Level != 0 {
		t.Errorf("Lines = %d Level = %d, expected 4 and 0", st.Lines, st.Level)
	}
	if st.Board.Filled() != 0 {
		t.Errorf("board has %d cells left, expected 0", st.Board.Filled())
	}
}

func TestModernTetrisScoreAtLevel3(t *testing.T) {
	settings := ModernSettings()
	settings.StartingLevel = 3
	board := fillRows(EmptyGrid(), []int{16, 17, 18, 19}, 9)
	st := playing(settings, board, at(I, 7, 16, 1))

	got := Tick(st, seeded(1))

	if got.Phase != PhasePlaying {
		t.Fatalf("Phase = %s, modern mode should clear immediately", got.Phase)
	}
	if got.Score-st.Score != 2400 {
		t.Errorf("score gained %d, expected 2400", got.Score-st.Score)
	}
	if got.Board.Filled() != 0 {
		t.Errorf("board has %d cells left, expected 0", got.Board.Filled())
	}
}

func TestLevelUpChangesGravity(t *testing.T) {
	settings := ClassicSettings()
	board := fillRows(EmptyGrid(), []int{16, 17, 18, 19}, 9)
	st := playing(settings, board, at(I, 7, 16, 1))
	st.Lines = 8

	st = Tick(st, seeded(1))
	for st.Phase == PhaseLineClear {
		st = LineClearTick(st, seeded(1))
	}
	if st.Level != 1 || st.DropSpeed != 717*time.Millisecond {
		t.Errorf("Level = %d DropSpeed = %v, expected 1 and 717ms", st.Level, st.DropSpeed)
	}
	// Points use the level reached by the clear.
	if st.Score != 2400 {
		t.Errorf("Score = %d, expected 1200 x 2 = 2400", st.Score)
	}
}

func TestClassicLineClearAnimation(t *testing.T) {
	board := fillRows(EmptyGrid(), []int{18, 19}, 4, 5)
	board = board.With(0, 17, J)
	st := playing(ClassicSettings(), board, at(O, 4, 18, 0))

	st = Tick(st, seeded(1))

	if st.Phase != PhaseLineClear {
		t.Fatalf("Phase = %s, expected LINE_CLEAR", st.Phase)
	}
	if st.Current != nil {
		t.Error("active piece should be cleared during the animation")
	}
	if st.Animation == nil || !reflect.DeepEqual(st.Animation.Rows, []int{18, 19}) || st.Animation.Frame != 0 {
		t.Fatalf("Animation = %+v, expected rows [18 19] at frame 0", st.Animation)
	}

	// Actions during the animation are ignored.
	if got := Hold(Rotate(Move(st, -1, 0, seeded(1))), seeded(1)); !reflect.DeepEqual(got, st) {
		t.Error("input during LINE_CLEAR should be a no-op")
	}
	if got := TogglePause(st); got.Phase != PhaseLineClear {
		t.Error("pause during LINE_CLEAR should be a no-op")
	}

	for i := 1; i < LineClearFrames; i++ {
		st = LineClearTick(st, seeded(1))
		if st.Phase != PhaseLineClear || st.Animation.Frame != i {
			t.Fatalf("after %d ticks Phase = %s frame = %d", i, st.Phase, st.Animation.Frame)
		}
		if st.Animation.IsComplete() {
			t.Fatalf("animation complete after %d of %d frames", i, LineClearFrames)
		}
	}
	if last := (LineClearAnimation{Frame: LineClearFrames}); !last.IsComplete() {
		t.Error("IsComplete() should hold once every frame has been shown")
	}
	st = LineClearTick(st, seeded(1))

	if st.Phase != PhasePlaying || st.Animation != nil {
		t.Fatalf("Phase = %s Animation = %+v, expected PLAYING with no animation", st.Phase, st.Animation)
	}
	if st.Board.At(0, 19) != J || st.Board.Filled() != 1 {
		t.Error("cleared rows were not removed and shifted")
	}
	if st.Lines != 2 || st.Score != 100 {
		t.Errorf("Lines = %d Score = %d, expected 2 and 100", st.Lines, st.Score)
	}
	if st.Current == nil || !st.CanHold {
		t.Error("next piece should be dealt with hold re-enabled")
	}
}

func TestLockIntoGameOver(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		highScore int
		want      int
	}{
		{"new high score", 500, 300, 500},
		{"kept high score", 500, 900, 900},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Row 1 blocks every spawn shape without completing.
			board := fillRows(EmptyGrid(), []int{1}, 0, 1, 2)
			st := playing(ModernSettings(), board, at(O, 0, 18, 0))
			st.Score = tc.score
			st.HighScore = tc.highScore

			got := Tick(st, seeded(1))

			if got.Phase != PhaseGameOver {
				t.Fatalf("Phase = %s, expected GAME_OVER", got.Phase)
			}
			if got.HighScore != tc.want {
				t.Errorf("HighScore = %d, expected %d", got.HighScore, tc.want)
			}
			if got.Current == nil || got.Current.Position != SpawnPosition {
				t.Error("the blocked piece should stay at spawn for display")
			}
			if got := Tick(got, seeded(1)); got.Phase != PhaseGameOver {
				t.Error("ticks after game over should be ignored")
			}
			if _, ok := got.GhostPiece(); ok {
				t.Error("no ghost after game over")
			}
		})
	}
}

func TestHold(t *testing.T) {
	st := playing(ModernSettings(), EmptyGrid(), at(T, 2, 7, 1))
	upcoming := st.NextPieces()[0]

	st = Hold(st, seeded(1))
	if st.Held != T {
		t.Errorf("Held = %v, expected T", st.Held)
	}
	if st.Current.Kind != upcoming || st.Current.Position != SpawnPosition {
		t.Errorf("Current = %+v, expected fresh %v", st.Current, upcoming)
	}
	if st.CanHold {
		t.Error("CanHold should be false after holding")
	}

	again := Hold(st, seeded(1))
	if !reflect.DeepEqual(again, st) {
		t.Error("second hold before a lock should be a no-op")
	}

	// Lock re-enables hold; the next hold swaps without dealing.
	st = HardDrop(st, seeded(1))
	next := st.Current.Kind
	total := st.Statistics.Total()
	st = Hold(st, seeded(1))
	if st.Current.Kind != T || st.Current.Rotation != 0 || st.Current.Position != SpawnPosition {
		t.Errorf("Current = %+v, expected T respawned", st.Current)
	}
	if st.Held != next {
		t.Errorf("Held = %v, expected %v", st.Held, next)
	}
	if st.Statistics.Total() != total {
		t.Error("swapping with the held piece should not count a new piece")
	}
}

func TestHoldDisabled(t *testing.T) {
	st := playing(ClassicSettings(), EmptyGrid(), at(T, 3, 5, 0))
	if got := Hold(st, seeded(1)); !reflect.DeepEqual(got, st) {
		t.Error("hold should be ignored when disabled")
	}
}

func TestHoldDealsIntoGameOver(t *testing.T) {
	board := fillRows(EmptyGrid(), []int{1}, 0, 1, 2)
	st := playing(ModernSettings(), board, at(T, 0, 10, 0))
	st.Score = 40

	got := Hold(st, seeded(1))
	if got.Phase != PhaseGameOver || got.HighScore != 40 {
		t.Errorf("Phase = %s HighScore = %d, expected GAME_OVER and 40", got.Phase, got.HighScore)
	}
}

func TestTogglePause(t *testing.T) {
	st := playing(ModernSettings(), EmptyGrid(), at(T, 3, 5, 0))

	paused := TogglePause(st)
	if paused.Phase != PhasePaused {
		t.Fatalf("Phase = %s, expected PAUSED", paused.Phase)
	}
	if got := Tick(paused, seeded(1)); !reflect.DeepEqual(got, paused) {
		t.Error("gravity while paused should be a no-op")
	}
	if got := HardDrop(paused, seeded(1)); !reflect.DeepEqual(got, paused) {
		t.Error("hard drop while paused should be a no-op")
	}
	if TogglePause(paused).Phase != PhasePlaying {
		t.Error("second toggle should resume")
	}
	if TogglePause(NewState(0, ModernSettings())).Phase != PhaseInitial {
		t.Error("pause before the game starts should be a no-op")
	}
}

func TestUpdateSettings(t *testing.T) {
	st := playing(ModernSettings(), EmptyGrid(), at(T, 3, 5, 0))
	ghost := false

	got := UpdateSettings(st, SettingsPatch{GhostPiece: &ghost}, seeded(1))
	if got.Settings.GhostPiece {
		t.Error("patch was not applied")
	}
	if got.Current.Position != st.Current.Position || got.Phase != PhasePlaying {
		t.Error("in-progress game should be left alone")
	}

	over := got
	over.Phase = PhaseGameOver
	over.Score = 900
	over.HighScore = 900
	mode := ModeClassic
	restarted := UpdateSettings(over, SettingsPatch{Mode: &mode}, seeded(1))
	if restarted.Phase != PhasePlaying || restarted.Score != 0 {
		t.Errorf("Phase = %s Score = %d, expected a fresh game", restarted.Phase, restarted.Score)
	}
	if restarted.Settings.Mode != ModeClassic || restarted.Settings.GhostPiece {
		t.Errorf("Settings = %+v, expected merged settings", restarted.Settings)
	}
	if restarted.HighScore != 900 {
		t.Errorf("HighScore = %d, expected 900", restarted.HighScore)
	}
}

func TestResetKeepsHighScoreAndSettings(t *testing.T) {
	settings := ClassicSettings()
	settings.StartingLevel = 5
	st := playing(settings, fillRows(EmptyGrid(), []int{19}, 0), at(T, 3, 5, 0))
	st.Score = 777
	st.HighScore = 1000

	got := Reset(st, seeded(2))
	if got.Settings != settings || got.HighScore != 1000 {
		t.Error("reset should preserve settings and high score")
	}
	if got.Score != 0 || got.Board.Filled() != 0 || got.Level != 5 {
		t.Errorf("Score = %d Filled = %d Level = %d, expected a fresh game", got.Score, got.Board.Filled(), got.Level)
	}
}

func TestReduceDeterminism(t *testing.T) {
	script := []Action{
		InitAction{HighScore: 10},
		MoveAction{DX: -1},
		RotateAction{},
		HardDropAction{},
		HoldAction{},
		SoftDropAction{},
		TickAction{},
		MoveAction{DX: 1},
		HardDropAction{},
		TogglePauseAction{},
		TickAction{},
		TogglePauseAction{},
		HardDropAction{},
		LineClearTickAction{},
	}
	run := func() []State {
		rng := seeded(42)
		var states []State
		var st State
		for _, a := range script {
			st = Reduce(st, a, rng)
			states = append(states, st)
		}
		return states
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical seeds and actions produced different states")
	}
	last := a[len(a)-1]
	if last.Statistics.Total() < 4 {
		t.Errorf("dealt %d pieces, expected at least 4", last.Statistics.Total())
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	st := Init(0, nil, seeded(1))
	snap := st.Snapshot()

	snap.Current.Position.X = 99
	if st.Current.Position.X == 99 {
		t.Error("Snapshot shares the active piece with the state")
	}
	if snap.Ghost == nil || snap.Ghost.Position.Y <= st.Current.Position.Y {
		t.Errorf("Ghost = %+v, expected a landing projection", snap.Ghost)
	}
	if !snap.CanHold || len(snap.NextPieces) != 3 {
		t.Errorf("CanHold = %v NextPieces = %v", snap.CanHold, snap.NextPieces)
	}
}
