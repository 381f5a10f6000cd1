package dice

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRoll_Basic(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr error
	}{
		{name: "five dice", count: 5},
		{name: "three dice", count: 3},
		{name: "single die", count: 1},
		{name: "no dice", count: 0, wantErr: ErrInvalidDiceSpec},
		{name: "negative count", count: -1, wantErr: ErrInvalidDiceSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := NewSeededRoller(42)
			faces, err := roller.Roll(tt.count)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Roll() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(faces) != tt.count {
				t.Fatalf("Roll() got %d faces, want %d", len(faces), tt.count)
			}
			for i, face := range faces {
				if face < 1 || face > Sides {
					t.Errorf("faces[%d] = %d, out of range [1, %d]", i, face, Sides)
				}
			}
		})
	}
}

func TestRoll_Determinism(t *testing.T) {
	first, err := NewSeededRoller(12345).Roll(5)
	if err != nil {
		t.Fatalf("Roll() error = %v", err)
	}
	second, err := NewSeededRoller(12345).Roll(5)
	if err != nil {
		t.Fatalf("Roll() error = %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("faces[%d] differ: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestRoll_MatchesMathRand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	want := []int{rng.Intn(6) + 1, rng.Intn(6) + 1, rng.Intn(6) + 1}

	got, err := NewSeededRoller(7).Roll(3)
	if err != nil {
		t.Fatalf("Roll() error = %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("faces = %v, want %v", got, want)
		}
	}
}

func TestDie_CoversEveryFace(t *testing.T) {
	roller := NewSeededRoller(1)
	seen := map[int]bool{}
	for i := 0; i < 600; i++ {
		seen[roller.Die()] = true
	}
	for face := 1; face <= Sides; face++ {
		if !seen[face] {
			t.Errorf("face %d never rolled in 600 draws", face)
		}
	}
}
