package engine

import "time"

// Phase is the top-level game phase.
type Phase string

const (
	PhaseInitial   Phase = "INITIAL"
	PhasePlaying   Phase = "PLAYING"
	PhasePaused    Phase = "PAUSED"
	PhaseLineClear Phase = "LINE_CLEAR"
	PhaseGameOver  Phase = "GAME_OVER"
)

// Line clear animation timing.
const (
	LineClearFrames     = 8
	LineClearFrameDelay = 50 * time.Millisecond
)

// LineClearAnimation is the pending half of a classic lock: the rows that
// will be removed once the flashing finishes.
type LineClearAnimation struct {
	Rows  []int
	Frame int
}

// IsComplete reports whether every flash frame has been shown.
func (a LineClearAnimation) IsComplete() bool {
	return a.Frame >= LineClearFrames
}

// Statistics counts dealt pieces per kind.
type Statistics [KindCount]int

// Count returns how many pieces of kind k were dealt.
func (s Statistics) Count(k PieceKind) int {
	if !k.Valid() {
		return 0
	}
	return s[k.index()]
}

// Total returns the number of pieces dealt.
func (s Statistics) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

func (s Statistics) with(k PieceKind) Statistics {
	if k.Valid() {
		s[k.index()]++
	}
	return s
}

// State is one complete snapshot of a game. States are values: operations
// return new States and never modify the one they were given, so any State
// can be kept and compared later.
type State struct {
	Phase      Phase
	Board      Grid
	Current    *Piece
	Queue      Queue
	Held       PieceKind
	CanHold    bool
	Score      int
	Lines      int
	Level      int
	HighScore  int
	DropSpeed  time.Duration
	Statistics Statistics
	Animation  *LineClearAnimation
	Settings   Settings
}

// NewState returns the INITIAL state carrying a high score and settings.
func NewState(highScore int, settings Settings) State {
	return State{
		Phase:     PhaseInitial,
		HighScore: highScore,
		Settings:  settings,
		Level:     settings.StartingLevel,
		DropSpeed: GravityInterval(settings.ScoringSystem, settings.StartingLevel),
	}
}

// HoldAvailable is the renderer-facing hold flag: hold must be enabled and
// unused for the current piece.
func (s State) HoldAvailable() bool {
	return s.CanHold && s.Settings.HoldPiece
}

// NextPieces lists the upcoming kinds the preview shows.
func (s State) NextPieces() []PieceKind {
	return RandomizerFor(s.Settings.Randomizer).Upcoming(s.Queue, s.Settings.NextPieceCount)
}

// GhostPiece returns the landing projection of the current piece when ghost
// display is enabled and a piece is in play.
func (s State) GhostPiece() (Piece, bool) {
	if !s.Settings.GhostPiece || s.Current == nil || s.Phase == PhaseGameOver {
		return Piece{}, false
	}
	return Ghost(*s.Current, s.Board), true
}

func (s State) withPiece(p Piece) State {
	s.Current = &p
	return s
}
