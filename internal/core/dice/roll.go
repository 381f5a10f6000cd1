// Package dice rolls the six-sided dice used by the game.
//
// Every roll draws from an injected Source. Production code seeds a
// math/rand generator once per process; tests replay scripted faces.
package dice

import (
	"math/rand"

	apperrors "github.com/louisbranch/shipcaptaincrew/internal/platform/errors"
)

// Sides is the number of faces on every die in the game.
const Sides = 6

// ErrInvalidDiceSpec indicates a roll asked for a non-positive dice count.
var ErrInvalidDiceSpec = apperrors.New(apperrors.CodeDiceInvalidSpec, "dice count must be positive")

// Source is the randomness provider for dice rolls.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Roller rolls d6 values from a Source. It is not safe for concurrent use.
type Roller struct {
	src Source
}

// NewRoller returns a roller drawing from src.
func NewRoller(src Source) *Roller {
	return &Roller{src: src}
}

// NewSeededRoller returns a roller backed by math/rand seeded with seed.
// Two rollers built from the same seed produce the same faces.
func NewSeededRoller(seed int64) *Roller {
	return NewRoller(rand.New(rand.NewSource(seed)))
}

// Die rolls a single die.
func (r *Roller) Die() int {
	return r.src.Intn(Sides) + 1
}

// Roll rolls count dice and returns their faces in draw order.
func (r *Roller) Roll(count int) ([]int, error) {
	if count <= 0 {
		return nil, ErrInvalidDiceSpec
	}
	faces := make([]int, count)
	for i := range faces {
		faces[i] = r.Die()
	}
	return faces, nil
}
