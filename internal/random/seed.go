// Package random provides cryptographic seed generation helpers.
//
// It uses crypto/rand to generate high-entropy seeds for the math/rand
// generator that rolls the game's dice.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"

	apperrors "github.com/louisbranch/shipcaptaincrew/internal/platform/errors"
)

var entropy io.Reader = crand.Reader

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(entropy, b[:]); err != nil {
		return 0, apperrors.Wrap(apperrors.CodeSeedUnavailable, "read random seed", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Resolve returns seed unchanged when it is non-zero and a fresh seed
// otherwise, so a zero seed means "random".
func Resolve(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	return NewSeed()
}
