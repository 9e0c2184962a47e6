// Package actor implements the movement and camera state machine for a single
// overworld actor: held-direction buffering, bounded stepping, facing/walking
// derivation and camera projection.
package actor

import (
	"strings"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

// Stack holds the currently pressed directions, most recently pressed first.
// It never contains a direction twice, so four slots are always enough.
// Stack is a value type: copying it copies the contents.
type Stack struct {
	dirs [len(core.Directions)]core.Direction
	n    int
}

// Press pushes d to the front unless it is already held.
// A held key that repeats does not reorder the stack.
// Returns true if the stack changed.
func (s *Stack) Press(d core.Direction) bool {
	if !d.Valid() || s.Contains(d) {
		return false
	}
	copy(s.dirs[1:s.n+1], s.dirs[:s.n])
	s.dirs[0] = d
	s.n++
	return true
}

// Release removes d wherever it is. Remaining directions keep their order.
// Returns true if the stack changed.
func (s *Stack) Release(d core.Direction) bool {
	i := s.index(d)
	if i < 0 {
		return false
	}
	copy(s.dirs[i:s.n-1], s.dirs[i+1:s.n])
	s.n--
	s.dirs[s.n] = core.DirNone
	return true
}

// Active returns the most recently pressed direction still held, or DirNone.
func (s Stack) Active() core.Direction {
	if s.n == 0 {
		return core.DirNone
	}
	return s.dirs[0]
}

// Contains reports whether d is held.
func (s Stack) Contains(d core.Direction) bool {
	return s.index(d) >= 0
}

// Len returns the number of held directions.
func (s Stack) Len() int {
	return s.n
}

// Empty reports whether no direction is held.
func (s Stack) Empty() bool {
	return s.n == 0
}

// Slice returns the held directions, front first.
func (s Stack) Slice() []core.Direction {
	out := make([]core.Direction, s.n)
	copy(out, s.dirs[:s.n])
	return out
}

func (s Stack) String() string {
	names := make([]string, s.n)
	for i := range s.n {
		names[i] = s.dirs[i].String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

func (s Stack) index(d core.Direction) int {
	for i := range s.n {
		if s.dirs[i] == d {
			return i
		}
	}
	return -1
}
