package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-overworld/internal/actor"
	"github.com/vovakirdan/tui-overworld/internal/core"
)

// Layout constants
const (
	hudHeight = 2  // status line + separator
	tileSize  = 16 // world units per map tile, for the checker pattern
	minWidth  = 20
	minHeight = 8
)

var facingGlyphs = map[core.Direction]rune{
	core.DirUp:    '▲',
	core.DirDown:  '▼',
	core.DirLeft:  '◀',
	core.DirRight: '▶',
}

// DrawWorld draws the map, its fence and the actor from a snapshot.
// The camera anchor is recovered from the offsets (anchor = map + actor), so
// the actor always lands at the center of the viewport.
func DrawWorld(dst *core.Screen, snap actor.Snapshot, pixelScale int) {
	dst.Clear()
	defer drawHUD(dst, snap) // drawn last so the map never covers it

	if dst.Width() < minWidth || dst.Height() < minHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}
	if !snap.Projected || pixelScale <= 0 {
		dst.DrawTextCentered(dst.Height()/2, "Waiting for layout...")
		return
	}

	viewH := dst.Height() - hudHeight
	center := core.Pt(dst.Width()/2, hudHeight+viewH/2)
	anchor := snap.MapOffset.Add(snap.ActorOffset)
	// Screen position of world origin.
	origin := center.Sub(anchor).Add(snap.MapOffset)

	toScreen := func(w core.Point) core.Point {
		return origin.Add(w.Mul(pixelScale))
	}

	b := actor.WorldBounds
	x0, x1 := visibleRange(b.Left, b.Right, origin.X, pixelScale, dst.Width())
	y0, y1 := visibleRange(b.Top, b.Bottom, origin.Y, pixelScale, dst.Height())
	for wy := y0; wy <= y1; wy++ {
		for wx := x0; wx <= x1; wx++ {
			p := toScreen(core.Pt(wx, wy))
			r, c := terrainCell(wx, wy)
			for dy := 0; dy < pixelScale; dy++ {
				for dx := 0; dx < pixelScale; dx++ {
					dst.SetColored(p.X+dx, p.Y+dy, r, c)
				}
			}
		}
	}

	topLeft := toScreen(core.Pt(b.Left, b.Top)).Sub(core.Pt(1, 1))
	bottomRight := toScreen(core.Pt(b.Right+1, b.Bottom+1))
	fence := core.NewRect(topLeft.X, topLeft.Y, bottomRight.X-topLeft.X+1, bottomRight.Y-topLeft.Y+1)
	dst.DrawBox(fence, core.ColorGray)

	spawn := toScreen(core.Pt(0, 0))
	dst.SetColored(spawn.X, spawn.Y, '×', core.ColorGray)

	// Actor last so it is never covered.
	glyph := facingGlyphs[snap.Facing]
	color := core.ColorYellow
	if snap.Walking {
		color = core.ColorBrightYellow
	}
	a := origin.Add(snap.ActorOffset)
	dst.SetColored(a.X, a.Y, glyph, color)
}

// terrainCell returns the grass pattern for a world cell.
func terrainCell(wx, wy int) (rune, core.Color) {
	tx := floorDiv(wx, tileSize)
	ty := floorDiv(wy, tileSize)
	if (tx+ty)%2 == 0 {
		return '·', core.ColorGreen
	}
	return '·', core.ColorBrightGreen
}

// visibleRange limits the world interval [lo, hi] to the units that cover
// at least one of the screen cells [0, size), where world 0 starts at
// screen cell origin. The result is empty (first > last) when none do.
func visibleRange(lo, hi, origin, scale, size int) (first, last int) {
	first = core.Max(lo, floorDiv(-origin, scale))
	last = core.Min(hi, floorDiv(size-1-origin, scale))
	return first, last
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func drawHUD(dst *core.Screen, snap actor.Snapshot) {
	state := "idle"
	if snap.Walking {
		state = "walking"
	}
	hud := fmt.Sprintf(" Overworld - pos %v  facing %s  %s", snap.Position, snap.Facing, state)
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}
