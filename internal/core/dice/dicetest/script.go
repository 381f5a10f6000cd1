// Package dicetest provides a scripted dice.Source for tests.
package dicetest

import (
	"testing"

	"github.com/louisbranch/shipcaptaincrew/internal/core/dice"
)

// Script replays fixed die faces in order.
type Script struct {
	tb    testing.TB
	faces []int
	next  int
}

// NewScript returns a source that yields faces one draw at a time.
// Drawing past the end fails the test.
func NewScript(tb testing.TB, faces ...int) *Script {
	tb.Helper()
	for i, face := range faces {
		if face < 1 || face > dice.Sides {
			tb.Fatalf("scripted face %d = %d, out of range [1, %d]", i, face, dice.Sides)
		}
	}
	return &Script{tb: tb, faces: faces}
}

// Intn implements dice.Source.
func (s *Script) Intn(n int) int {
	s.tb.Helper()
	if n != dice.Sides {
		s.tb.Fatalf("scripted source asked for Intn(%d), want Intn(%d)", n, dice.Sides)
	}
	if s.next >= len(s.faces) {
		s.tb.Fatalf("scripted source exhausted after %d draws", len(s.faces))
		return 0
	}
	face := s.faces[s.next]
	s.next++
	return face - 1
}

// Remaining reports how many scripted faces have not been drawn.
func (s *Script) Remaining() int {
	return len(s.faces) - s.next
}
