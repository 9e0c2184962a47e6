package actor

import "github.com/vovakirdan/tui-overworld/internal/core"

// Bounds is the closed rectangle of valid positions, in world units.
type Bounds struct {
	Left, Right int
	Top, Bottom int
}

// WorldBounds are the fixed limits of the overworld map: eleven 16-unit tiles
// wide with half a tile of slack on each side, seven tiles tall.
var WorldBounds = Bounds{
	Left:   -8,
	Right:  16*11 + 8,
	Top:    -8 + 32,
	Bottom: 16 * 7,
}

// DefaultSpeed is the distance moved per step.
const DefaultSpeed = 1

// Contains reports whether p lies inside the bounds (edges included).
func (b Bounds) Contains(p core.Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Saturate limits a move from `from` to `to`. Each axis is clamped to the
// bounds independently. A coordinate that was already outside the bounds
// may not move further out, but is not pulled in either.
func (b Bounds) Saturate(from, to core.Point) core.Point {
	return core.Point{
		X: core.Clamp(to.X, core.Min(b.Left, from.X), core.Max(b.Right, from.X)),
		Y: core.Clamp(to.Y, core.Min(b.Top, from.Y), core.Max(b.Bottom, from.Y)),
	}
}

// Step moves pos by speed units toward active, saturating at the world bounds.
// With no active direction the position is returned unchanged.
func Step(pos core.Point, speed int, active core.Direction) core.Point {
	if !active.Valid() {
		return pos
	}
	next := pos.Add(active.Delta().Mul(speed))
	return WorldBounds.Saturate(pos, next)
}
