package actor

import "github.com/vovakirdan/tui-overworld/internal/core"

// DefaultFacing is the facing of a freshly spawned actor.
const DefaultFacing = core.DirDown

// Derive computes the presentation attributes for the active direction.
// Facing freezes at the previous value when nothing is held.
func Derive(active, previousFacing core.Direction) (facing core.Direction, walking bool) {
	if !active.Valid() {
		return previousFacing, false
	}
	return active, true
}
