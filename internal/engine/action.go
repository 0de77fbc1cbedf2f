package engine

// Action is one input to the state machine. The set is closed; Reduce is the
// single dispatcher.
type Action interface {
	isAction()
}

type (
	// InitAction starts a game. A nil Settings means DefaultSettings.
	InitAction struct {
		HighScore int
		Settings  *Settings
	}
	ResetAction          struct{}
	UpdateSettingsAction struct{ Patch SettingsPatch }
	MoveAction           struct{ DX, DY int }
	RotateAction         struct{}
	SoftDropAction       struct{}
	HardDropAction       struct{}
	HoldAction           struct{}
	TogglePauseAction    struct{}
	TickAction           struct{}
	LineClearTickAction  struct{}
)

func (InitAction) isAction()           {}
func (ResetAction) isAction()          {}
func (UpdateSettingsAction) isAction() {}
func (MoveAction) isAction()           {}
func (RotateAction) isAction()         {}
func (SoftDropAction) isAction()       {}
func (HardDropAction) isAction()       {}
func (HoldAction) isAction()           {}
func (TogglePauseAction) isAction()    {}
func (TickAction) isAction()           {}
func (LineClearTickAction) isAction()  {}

// Reduce applies a to s. Unknown actions leave s unchanged.
func Reduce(s State, a Action, rng Rand) State {
	switch a := a.(type) {
	case InitAction:
		return Init(a.HighScore, a.Settings, rng)
	case ResetAction:
		return Reset(s, rng)
	case UpdateSettingsAction:
		return UpdateSettings(s, a.Patch, rng)
	case MoveAction:
		return Move(s, a.DX, a.DY, rng)
	case RotateAction:
		return Rotate(s)
	case SoftDropAction:
		return SoftDrop(s)
	case HardDropAction:
		return HardDrop(s, rng)
	case HoldAction:
		return Hold(s, rng)
	case TogglePauseAction:
		return TogglePause(s)
	case TickAction:
		return Tick(s, rng)
	case LineClearTickAction:
		return LineClearTick(s, rng)
	default:
		return s
	}
}
