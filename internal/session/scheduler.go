package session

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// Scheduler converts elapsed time into gravity and animation ticks. It keeps
// no clock of its own: the host calls Advance with however much time passed.
type Scheduler struct {
	frameDelay time.Duration
	phase      engine.Phase
	gravity    time.Duration
	anim       time.Duration
}

// NewScheduler creates a scheduler. frameDelay is the line clear animation
// cadence; zero means engine.LineClearFrameDelay.
func NewScheduler(frameDelay time.Duration) *Scheduler {
	if frameDelay <= 0 {
		frameDelay = engine.LineClearFrameDelay
	}
	return &Scheduler{frameDelay: frameDelay}
}

// Reset clears accumulated time.
func (sc *Scheduler) Reset() {
	sc.phase = ""
	sc.gravity = 0
	sc.anim = 0
}

// Advance credits dt of elapsed time and delivers every tick that has come
// due: gravity while PLAYING at the state's drop speed, animation frames while
// LINE_CLEAR. Time left over when the phase changes is dropped. It returns the
// number of ticks delivered.
func (sc *Scheduler) Advance(s *Session, dt time.Duration) int {
	st := s.State()
	sc.sync(st.Phase)

	ticks := 0
	switch st.Phase {
	case engine.PhasePlaying:
		sc.gravity += dt
		for st.Phase == engine.PhasePlaying && st.DropSpeed > 0 && sc.gravity >= st.DropSpeed {
			sc.gravity -= st.DropSpeed
			st = s.Tick()
			ticks++
		}
	case engine.PhaseLineClear:
		sc.anim += dt
		for st.Phase == engine.PhaseLineClear && sc.anim >= sc.frameDelay {
			sc.anim -= sc.frameDelay
			st = s.LineClearTick()
			ticks++
		}
	}
	sc.sync(st.Phase)
	return ticks
}

func (sc *Scheduler) sync(phase engine.Phase) {
	if phase == sc.phase {
		return
	}
	sc.phase = phase
	sc.gravity = 0
	sc.anim = 0
}
