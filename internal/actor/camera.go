package actor

import "github.com/vovakirdan/tui-overworld/internal/core"

// anchorUnits is the camera anchor before scaling. It keeps the actor near the
// middle of the viewport for this world's layout.
var anchorUnits = core.Pt(66, 42)

// CameraAnchor returns the fixed map re-centering offset for a pixel scale.
func CameraAnchor(pixelScale int) core.Point {
	return anchorUnits.Mul(pixelScale)
}

// Project converts a world position into the actor and map translations.
// The map moves opposite to the actor and is re-centered by the anchor.
// pixelScale must be positive; callers sequence initialization first.
func Project(pos core.Point, pixelScale int, anchor core.Point) (actorOffset, mapOffset core.Point) {
	actorOffset = pos.Mul(pixelScale)
	mapOffset = anchor.Sub(actorOffset)
	return actorOffset, mapOffset
}
