// Package round implements one game of Ship, Captain, Crew: dice throws,
// slot locks, cargo and the cargo reroll loop.
package round

// Face values that secure each slot.
const (
	ShipValue    = 6
	CaptainValue = 5
	CrewValue    = 4
)

const (
	// MaxThrows is the throw budget of a game.
	MaxThrows = 3
	// NumDice is the number of dice in play, and of slots.
	NumDice = 5
)

// Slot indexes into State.Slots.
const (
	SlotShip = iota
	SlotCaptain
	SlotCrew
	SlotCargoFirst
	SlotCargoSecond
)

// Lock names one of the three securable slots.
type Lock int

const (
	LockShip Lock = iota
	LockCaptain
	LockCrew
)

// Value returns the face that secures l.
func (l Lock) Value() int {
	switch l {
	case LockShip:
		return ShipValue
	case LockCaptain:
		return CaptainValue
	case LockCrew:
		return CrewValue
	default:
		return 0
	}
}

// Slot returns the index of l in State.Slots.
func (l Lock) Slot() int {
	switch l {
	case LockShip:
		return SlotShip
	case LockCaptain:
		return SlotCaptain
	default:
		return SlotCrew
	}
}

func (l Lock) String() string {
	switch l {
	case LockShip:
		return "ship"
	case LockCaptain:
		return "captain"
	case LockCrew:
		return "crew"
	default:
		return "unknown"
	}
}

// State is the mutable state of one game.
//
// Slots holds the Ship, Captain and Crew values once locked (0 before) and
// the two cargo dice. A locked slot always holds its Lock.Value and is never
// overwritten. Cargo is meaningful only once all three slots are locked.
type State struct {
	Slots         [NumDice]int
	ThrowsLeft    int
	ShipLocked    bool
	CaptainLocked bool
	CrewLocked    bool
}

// NewState returns the state at the start of a game.
func NewState() State {
	return State{ThrowsLeft: MaxThrows}
}

// Locked reports whether l has been secured.
func (s State) Locked(l Lock) bool {
	switch l {
	case LockShip:
		return s.ShipLocked
	case LockCaptain:
		return s.CaptainLocked
	case LockCrew:
		return s.CrewLocked
	default:
		return false
	}
}

// AllLocked reports whether Ship, Captain and Crew are all secured.
func (s State) AllLocked() bool {
	return s.ShipLocked && s.CaptainLocked && s.CrewLocked
}

// DiceToRoll returns how many dice the next throw rolls.
//
// Five dice are rolled until the Ship is secured, four once it is, and three
// once the Captain is secured too. Securing the Crew never removes another
// die; the two-tier reduction is the house rule this game plays by.
func (s State) DiceToRoll() int {
	switch {
	case s.ShipLocked && s.CaptainLocked:
		return NumDice - 2
	case s.ShipLocked:
		return NumDice - 1
	default:
		return NumDice
	}
}

// CalculateCargo returns the sum of the two cargo dice.
func CalculateCargo(slots [NumDice]int) int {
	return slots[SlotCargoFirst] + slots[SlotCargoSecond]
}
