package tetris

import "github.com/vovakirdan/tui-tetris/internal/engine"

// Snapshot captures the game for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Preset    string
	Phase     engine.Phase
	Score     int
	Lines     int
	Level     int
	HighScore int
	Piece     engine.PieceKind
	PieceX    int
	PieceY    int
	Rotation  int
	Held      engine.PieceKind
	Filled    int
	Dealt     int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick, Preset: g.id}
	if g.sess == nil {
		return snap
	}

	st := g.sess.State()
	snap.Phase = st.Phase
	snap.Score = st.Score
	snap.Lines = st.Lines
	snap.Level = st.Level
	snap.HighScore = st.HighScore
	snap.Held = st.Held
	snap.Filled = st.Board.Filled()
	snap.Dealt = st.Statistics.Total()
	if st.Current != nil {
		snap.Piece = st.Current.Kind
		snap.PieceX = st.Current.Position.X
		snap.PieceY = st.Current.Position.Y
		snap.Rotation = st.Current.Rotation
	}
	return snap
}
