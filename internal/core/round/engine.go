package round

import (
	"fmt"
	"slices"

	"github.com/louisbranch/shipcaptaincrew/internal/core/dice"
	apperrors "github.com/louisbranch/shipcaptaincrew/internal/platform/errors"
)

var (
	// ErrRoundOver indicates the operation is not valid once the game has
	// left the phase it belongs to.
	ErrRoundOver = apperrors.New(apperrors.CodeRoundOver, "round is over")
	// ErrCargoUnavailable indicates a cargo operation before all three
	// slots are secured.
	ErrCargoUnavailable = apperrors.New(apperrors.CodeCargoUnavailable, "cargo requires ship, captain and crew")
	// ErrNoThrowsLeft indicates the throw budget is spent.
	ErrNoThrowsLeft = apperrors.New(apperrors.CodeNoThrowsLeft, "no throws left")
)

// Throw records one call to Engine.TakeThrow.
type Throw struct {
	// ThrowsBefore is the budget before this throw consumed one.
	ThrowsBefore int
	// Dice holds the rolled faces in roll order.
	Dice []int
	// Acquired lists the slots secured by this throw, in lock order.
	Acquired []Lock
	// State is the game state after the throw.
	State State
}

// Reroll records one call to Engine.RerollCargo.
type Reroll struct {
	Cargo      [2]int
	Score      int
	ThrowsLeft int
}

// Result summarises a finished game.
type Result struct {
	Outcome    Outcome
	Cargo      int
	ThrowsLeft int
	State      State
}

// Engine plays a single game. It owns its State exclusively and is not safe
// for concurrent use.
type Engine struct {
	roller   *dice.Roller
	state    State
	declined bool
}

// NewEngine starts a game drawing dice from roller.
func NewEngine(roller *dice.Roller) *Engine {
	return &Engine{
		roller: roller,
		state:  NewState(),
	}
}

// State returns a copy of the current game state.
func (e *Engine) State() State {
	return e.state
}

// Phase returns the current state machine phase.
func (e *Engine) Phase() Phase {
	switch {
	case e.state.AllLocked() && (e.declined || e.state.ThrowsLeft == 0):
		return PhaseDone
	case e.state.AllLocked():
		return PhaseCargo
	case e.state.ThrowsLeft == 0:
		return PhaseLost
	default:
		return PhaseRolling
	}
}

// Cargo returns the cargo score: the cargo dice sum once all three slots
// are secured, 0 otherwise.
func (e *Engine) Cargo() int {
	if !e.state.AllLocked() {
		return 0
	}
	return CalculateCargo(e.state.Slots)
}

// TakeThrow rolls the dice still in play and applies the lock rules.
//
// The throw always consumes one unit of the budget. Locks are checked in
// order against the same roll: the first 6 secures the Ship; then, if the
// Ship is secured, the first 5 secures the Captain; then, if both are
// secured, the first 4 secures the Crew. One throw may therefore secure
// several slots. When the last slot is secured the cargo is filled from the
// same roll.
func (e *Engine) TakeThrow() (Throw, error) {
	if e.Phase() != PhaseRolling {
		return Throw{}, ErrRoundOver
	}

	throwsBefore := e.state.ThrowsLeft
	faces, err := e.roller.Roll(e.state.DiceToRoll())
	if err != nil {
		return Throw{}, fmt.Errorf("roll dice: %w", err)
	}
	e.state.ThrowsLeft--

	acquired := e.lock(faces)
	if e.state.AllLocked() {
		e.fillCargo(faces)
	}

	return Throw{
		ThrowsBefore: throwsBefore,
		Dice:         faces,
		Acquired:     acquired,
		State:        e.state,
	}, nil
}

func (e *Engine) lock(faces []int) []Lock {
	var acquired []Lock
	s := &e.state

	if !s.ShipLocked && slices.Contains(faces, ShipValue) {
		s.Slots[SlotShip] = ShipValue
		s.ShipLocked = true
		acquired = append(acquired, LockShip)
	}
	if s.ShipLocked && !s.CaptainLocked && slices.Contains(faces, CaptainValue) {
		s.Slots[SlotCaptain] = CaptainValue
		s.CaptainLocked = true
		acquired = append(acquired, LockCaptain)
	}
	if s.ShipLocked && s.CaptainLocked && !s.CrewLocked && slices.Contains(faces, CrewValue) {
		s.Slots[SlotCrew] = CrewValue
		s.CrewLocked = true
		acquired = append(acquired, LockCrew)
	}

	return acquired
}

// fillCargo moves the dice of the completing roll into the cargo slots.
//
// One 6, one 5 and one 4 are skipped whichever slots this roll actually
// secured; the flags are per value, not per die. The remaining faces fill
// the cargo slots in roll order and any slot left empty gets a fresh die.
func (e *Engine) fillCargo(faces []int) {
	used := map[int]bool{}
	next := SlotCargoFirst

	for _, face := range faces {
		if isLockValue(face) && !used[face] {
			used[face] = true
			continue
		}
		if next < NumDice {
			e.state.Slots[next] = face
			next++
		}
	}

	for ; next < NumDice; next++ {
		e.state.Slots[next] = e.roller.Die()
	}
}

func isLockValue(face int) bool {
	return face == ShipValue || face == CaptainValue || face == CrewValue
}

// RerollCargo spends one throw to replace both cargo dice.
func (e *Engine) RerollCargo() (Reroll, error) {
	if !e.state.AllLocked() {
		return Reroll{}, ErrCargoUnavailable
	}
	if e.state.ThrowsLeft == 0 {
		return Reroll{}, ErrNoThrowsLeft
	}
	if e.declined {
		return Reroll{}, ErrRoundOver
	}

	e.state.ThrowsLeft--
	e.state.Slots[SlotCargoFirst] = e.roller.Die()
	e.state.Slots[SlotCargoSecond] = e.roller.Die()

	return Reroll{
		Cargo:      [2]int{e.state.Slots[SlotCargoFirst], e.state.Slots[SlotCargoSecond]},
		Score:      CalculateCargo(e.state.Slots),
		ThrowsLeft: e.state.ThrowsLeft,
	}, nil
}

// Decline ends the cargo reroll loop without spending a throw.
func (e *Engine) Decline() error {
	if e.Phase() != PhaseCargo {
		return ErrRoundOver
	}
	e.declined = true
	return nil
}

// Result summarises the game. It is only meaningful in a terminal phase;
// a lost game always scores 0.
func (e *Engine) Result() Result {
	outcome := OutcomeUnspecified
	switch e.Phase() {
	case PhaseDone:
		outcome = OutcomeWon
	case PhaseLost:
		outcome = OutcomeLost
	}
	return Result{
		Outcome:    outcome,
		Cargo:      e.Cargo(),
		ThrowsLeft: e.state.ThrowsLeft,
		State:      e.state,
	}
}
