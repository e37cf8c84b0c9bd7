package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when at least one side still has a legal move.
	StateRunning

	// StateBlackWins is when the game is over and Black holds more discs.
	StateBlackWins

	// StateWhiteWins is when the game is over and White holds more discs.
	StateWhiteWins

	// StateDraw is when the game is over with equal disc counts.
	StateDraw
)

func (s State) IsRunning() bool {
	return s == StateRunning
}

func (s State) IsDraw() bool {
	return s == StateDraw
}

// Winner returns the winning side, or SideNone if the game is running or drawn.
func (s State) Winner() Side {
	switch s {
	case StateBlackWins:
		return SideBlack
	case StateWhiteWins:
		return SideWhite
	default:
		return SideNone
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateBlackWins:
		return "StateBlackWins"
	case StateWhiteWins:
		return "StateWhiteWins"
	case StateDraw:
		return "StateDraw"
	default:
		return ""
	}
}
