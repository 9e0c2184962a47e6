package core

// Direction is one of the four canonical movement directions.
// The zero value DirNone means "no direction".
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four canonical directions in a stable order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase name used by the rendering layer ("up", "down", ...).
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four canonical directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the unit step for the direction. Only one axis is ever
// non-zero; down is +y.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Canonical key identifiers. These are the only identifiers that move the actor;
// platform layers translate their own key names into one of these.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

var keyDirections = map[string]Direction{
	KeyArrowUp:    DirUp,
	KeyArrowDown:  DirDown,
	KeyArrowLeft:  DirLeft,
	KeyArrowRight: DirRight,
}

// ResolveKey maps a key identifier to its Direction.
// Unknown identifiers return DirNone and must be ignored by callers.
func ResolveKey(id string) Direction {
	return keyDirections[id]
}

// KeyFor returns the canonical identifier bound to d, or "" for DirNone.
func KeyFor(d Direction) string {
	for id, dir := range keyDirections {
		if dir == d {
			return id
		}
	}
	return ""
}

// KeyIdentifiers returns the canonical identifiers in Directions order.
func KeyIdentifiers() []string {
	ids := make([]string, 0, len(Directions))
	for _, d := range Directions {
		ids = append(ids, KeyFor(d))
	}
	return ids
}
