package actor

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

func TestStackPressRelease(t *testing.T) {
	var s Stack

	if s.Active() != core.DirNone {
		t.Fatalf("Active() on empty stack = %v, expected none", s.Active())
	}

	s.Press(core.DirRight)
	s.Press(core.DirDown)
	if s.Active() != core.DirDown {
		t.Errorf("Active() = %v, expected down (most recent)", s.Active())
	}

	// Repeat must not reorder
	if s.Press(core.DirRight) {
		t.Error("Press of a held direction should report no change")
	}
	if got := s.String(); got != "[down right]" {
		t.Errorf("String() = %q, expected %q", got, "[down right]")
	}

	s.Release(core.DirDown)
	if s.Active() != core.DirRight {
		t.Errorf("Active() after releasing down = %v, expected right", s.Active())
	}

	if s.Release(core.DirLeft) {
		t.Error("Release of a direction not held should report no change")
	}

	s.Release(core.DirRight)
	if !s.Empty() {
		t.Errorf("stack should be empty, got %v", s)
	}
}

func TestStackReleaseKeepsOrder(t *testing.T) {
	var s Stack
	for _, d := range []core.Direction{core.DirUp, core.DirLeft, core.DirDown, core.DirRight} {
		s.Press(d)
	}
	// front first: right down left up
	s.Release(core.DirDown)

	expected := []core.Direction{core.DirRight, core.DirLeft, core.DirUp}
	got := s.Slice()
	if len(got) != len(expected) {
		t.Fatalf("Slice() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Slice()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestStackIgnoresNone(t *testing.T) {
	var s Stack
	if s.Press(core.DirNone) {
		t.Error("Press(DirNone) should be a no-op")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestStackIsValue(t *testing.T) {
	var a Stack
	a.Press(core.DirUp)
	b := a
	b.Press(core.DirLeft)

	if a.Len() != 1 || a.Active() != core.DirUp {
		t.Errorf("copy mutated original: %v", a)
	}
}

// Most recent wins: press A, press B, release B leaves A active.
func TestStackMostRecentWins(t *testing.T) {
	for _, a := range core.Directions {
		for _, b := range core.Directions {
			if a == b {
				continue
			}
			var s Stack
			s.Press(a)
			s.Press(b)
			s.Release(b)
			if s.Active() != a {
				t.Errorf("press %v, press %v, release %v: Active() = %v, expected %v", a, b, b, s.Active(), a)
			}
		}
	}
}

func TestStackNeverHoldsDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var s Stack

	for i := 0; i < 5000; i++ {
		d := core.Directions[rng.Intn(len(core.Directions))]
		if rng.Intn(2) == 0 {
			s.Press(d)
		} else {
			s.Release(d)
		}

		seen := make(map[core.Direction]bool)
		for _, held := range s.Slice() {
			if seen[held] {
				t.Fatalf("step %d: duplicate %v in %v", i, held, s)
			}
			seen[held] = true
		}
	}
}
