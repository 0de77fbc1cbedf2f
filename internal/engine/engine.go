package engine

// Init starts a new game with the given high score and settings. A nil
// settings pointer means DefaultSettings.
func Init(highScore int, settings *Settings, rng Rand) State {
	s := DefaultSettings()
	if settings != nil {
		s = *settings
	}
	return start(NewState(highScore, s), rng)
}

func start(base State, rng Rand) State {
	st := NewState(base.HighScore, base.Settings)
	r := RandomizerFor(st.Settings.Randomizer)
	st.Queue = r.Prime(rng, st.Settings.NextPieceCount)
	st.Phase = PhasePlaying
	st.CanHold = true
	return deal(st, rng)
}

// Reset starts over with the same high score and settings, from any phase.
func Reset(s State, rng Rand) State {
	return start(s, rng)
}

// UpdateSettings merges a partial update. In INITIAL or GAME_OVER the game is
// restarted with the merged settings; otherwise only the settings change and
// the game in progress is left alone.
func UpdateSettings(s State, patch SettingsPatch, rng Rand) State {
	s.Settings = s.Settings.Merge(patch)
	if s.Phase == PhaseInitial || s.Phase == PhaseGameOver {
		return start(s, rng)
	}
	return s
}

// Move shifts the current piece by (dx, dy). A blocked downward move locks
// the piece; a blocked sideways move does nothing.
func Move(s State, dx, dy int, rng Rand) State {
	if s.Phase != PhasePlaying || s.Current == nil {
		return s
	}
	moved := s.Current.Translated(dx, dy)
	if IsValidPlacement(moved, s.Board) {
		return s.withPiece(moved)
	}
	if dy > 0 {
		return lock(s, 0, rng)
	}
	return s
}

// Tick is one gravity step.
func Tick(s State, rng Rand) State {
	return Move(s, 0, 1, rng)
}

// Rotate turns the current piece clockwise using the configured kick tables.
func Rotate(s State) State {
	if s.Phase != PhasePlaying || s.Current == nil {
		return s
	}
	rotated, ok := TryRotate(*s.Current, s.Board, s.Settings.RotationSystem)
	if !ok {
		return s
	}
	return s.withPiece(rotated)
}

// SoftDrop moves the piece down one row, awarding the soft drop bonus when
// the move succeeds. It does not lock.
func SoftDrop(s State) State {
	if s.Phase != PhasePlaying || s.Current == nil {
		return s
	}
	moved := s.Current.Translated(0, 1)
	if !IsValidPlacement(moved, s.Board) {
		return s
	}
	s = s.withPiece(moved)
	s.Score += DropBonus(s.Settings.ScoringSystem, DropSoft, 1)
	return s
}

// HardDrop drops the piece to its landing row and locks it. In classic mode
// there is no hard drop and the call is exactly one gravity step.
func HardDrop(s State, rng Rand) State {
	if s.Phase != PhasePlaying || s.Current == nil {
		return s
	}
	if s.Settings.Mode == ModeClassic {
		return Tick(s, rng)
	}
	distance := dropDistance(*s.Current, s.Board)
	s = s.withPiece(s.Current.Translated(0, distance))
	return lock(s, DropBonus(s.Settings.ScoringSystem, DropHard, distance), rng)
}

// Hold sets the current piece aside. With a piece already held the two swap
// and the held kind respawns; otherwise a new piece is dealt. Only one hold
// is allowed per locked piece.
func Hold(s State, rng Rand) State {
	if s.Phase != PhasePlaying || s.Current == nil || !s.Settings.HoldPiece || !s.CanHold {
		return s
	}
	current := s.Current.Kind
	if s.Held.Valid() {
		s = s.withPiece(Spawn(s.Held))
		s.Held = current
		s.CanHold = false
		return s
	}
	s.Held = current
	s = deal(s, rng)
	s.CanHold = false
	return s
}

// TogglePause flips between PLAYING and PAUSED.
func TogglePause(s State) State {
	switch s.Phase {
	case PhasePlaying:
		s.Phase = PhasePaused
	case PhasePaused:
		s.Phase = PhasePlaying
	}
	return s
}

// LineClearTick advances the classic clear animation. After the last frame
// the flashing rows are removed and play resumes with the next piece.
func LineClearTick(s State, rng Rand) State {
	if s.Phase != PhaseLineClear || s.Animation == nil {
		return s
	}
	anim := *s.Animation
	anim.Frame++
	if !anim.IsComplete() {
		s.Animation = &anim
		return s
	}

	s.Board = WithRowsRemoved(s.Board, anim.Rows)
	s = award(s, len(anim.Rows))
	s.Animation = nil
	s.Phase = PhasePlaying
	s.CanHold = true
	return deal(s, rng)
}

// lock commits the current piece. Classic games with completed rows pause in
// LINE_CLEAR; everything else clears at once and deals the next piece.
func lock(s State, bonus int, rng Rand) State {
	s.Board = Commit(s.Board, *s.Current)
	s.Score += bonus
	rows := CompletedRows(s.Board)

	if len(rows) > 0 && s.Settings.Mode == ModeClassic {
		s.Current = nil
		s.Phase = PhaseLineClear
		s.Animation = &LineClearAnimation{Rows: rows}
		return s
	}

	s.Board = WithRowsRemoved(s.Board, rows)
	s = award(s, len(rows))
	s.CanHold = true
	return deal(s, rng)
}

// award applies cleared lines to lines, level, score and gravity. Points use
// the level reached after the clear.
func award(s State, cleared int) State {
	if cleared == 0 {
		return s
	}
	s.Lines += cleared
	s.Level = LevelFor(s.Lines, s.Settings.StartingLevel)
	s.Score += LineScore(s.Settings.ScoringSystem, cleared, s.Level)
	s.DropSpeed = GravityInterval(s.Settings.ScoringSystem, s.Level)
	return s
}

// deal spawns the next piece from the randomizer and checks for game over.
func deal(s State, rng Rand) State {
	kind, q := RandomizerFor(s.Settings.Randomizer).Draw(s.Queue, rng, s.Settings.NextPieceCount)
	s.Queue = q
	s.Statistics = s.Statistics.with(kind)
	piece := Spawn(kind)
	s = s.withPiece(piece)

	if !IsValidPlacement(piece, s.Board) {
		s.Phase = PhaseGameOver
		s.HighScore = max(s.HighScore, s.Score)
	}
	return s
}
