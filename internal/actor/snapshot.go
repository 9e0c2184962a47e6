package actor

import "github.com/vovakirdan/tui-overworld/internal/core"

// Snapshot is the immutable view of the actor handed to the rendering layer.
// Snapshots are comparable with ==.
type Snapshot struct {
	Position    core.Point
	Facing      core.Direction
	Walking     bool
	Mode        Mode
	Active      core.Direction
	Held        int
	Projected   bool       // false until the pixel scale is known
	ActorOffset core.Point // pixels, zero until Projected
	MapOffset   core.Point // pixels, zero until Projected
}

// Snapshot returns the published view of the state.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Position:    s.Pos,
		Facing:      s.Facing,
		Walking:     s.Walking,
		Mode:        s.Mode(),
		Active:      s.Held.Active(),
		Held:        s.Held.Len(),
		Projected:   s.Camera.Initialized(),
		ActorOffset: s.Camera.ActorOffset,
		MapOffset:   s.Camera.MapOffset,
	}
}
