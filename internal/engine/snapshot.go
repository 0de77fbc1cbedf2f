package engine

import "time"

// Snapshot is the read-only view a renderer needs for one frame. It shares
// nothing with the State it came from.
type Snapshot struct {
	Phase      Phase
	Board      Grid
	Current    *Piece
	Ghost      *Piece
	NextPieces []PieceKind
	Held       PieceKind
	CanHold    bool
	Score      int
	Level      int
	Lines      int
	HighScore  int
	DropSpeed  time.Duration
	Animation  *LineClearAnimation
	Statistics Statistics
	Settings   Settings
}

// Snapshot derives the renderer view of s.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.Phase,
		Board:      s.Board,
		NextPieces: s.NextPieces(),
		Held:       s.Held,
		CanHold:    s.HoldAvailable(),
		Score:      s.Score,
		Level:      s.Level,
		Lines:      s.Lines,
		HighScore:  s.HighScore,
		DropSpeed:  s.DropSpeed,
		Statistics: s.Statistics,
		Settings:   s.Settings,
	}
	if s.Current != nil {
		p := *s.Current
		snap.Current = &p
	}
	if g, ok := s.GhostPiece(); ok {
		snap.Ghost = &g
	}
	if s.Animation != nil {
		anim := *s.Animation
		anim.Rows = append([]int(nil), s.Animation.Rows...)
		snap.Animation = &anim
	}
	return snap
}

// Flashing reports whether row y is a clearing row drawn in its "off" frame.
func (s Snapshot) Flashing(y int) bool {
	if s.Animation == nil || s.Animation.Frame%2 == 0 {
		return false
	}
	for _, r := range s.Animation.Rows {
		if r == y {
			return true
		}
	}
	return false
}
