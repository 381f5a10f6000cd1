package round

// Phase is the position of a game in its state machine.
//
//	Rolling -> Rolling | Cargo | Lost
//	Cargo   -> Cargo (reroll) | Done (decline or no throws left)
//
// Lost and Done are terminal.
type Phase int

const (
	PhaseUnspecified Phase = iota
	PhaseRolling
	PhaseCargo
	PhaseLost
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseUnspecified:
		return "Unspecified"
	case PhaseRolling:
		return "Rolling"
	case PhaseCargo:
		return "Cargo"
	case PhaseLost:
		return "Lost"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further operation can change the game.
func (p Phase) Terminal() bool {
	return p == PhaseLost || p == PhaseDone
}

// Outcome is the final result of a game.
type Outcome int

const (
	OutcomeUnspecified Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnspecified:
		return "Unspecified"
	case OutcomeWon:
		return "Won"
	case OutcomeLost:
		return "Lost"
	default:
		return "Unknown"
	}
}
