package core

// Color is the foreground color of a screen cell.
type Color uint8

// Palette of the overworld view.
const (
	ColorDefault      Color = iota
	ColorGreen              // dark grass
	ColorBrightGreen        // light grass
	ColorYellow             // idle actor
	ColorBrightYellow       // walking actor
	ColorGray               // fence, spawn marker
)

var colorInfo = [...]struct {
	name string
	ansi string
}{
	ColorDefault:      {"default", ""},
	ColorGreen:        {"green", "2"},
	ColorBrightGreen:  {"bright-green", "10"},
	ColorYellow:       {"yellow", "3"},
	ColorBrightYellow: {"bright-yellow", "11"},
	ColorGray:         {"gray", "245"},
}

// ANSI returns the 256-color code of c, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(colorInfo) {
		return ""
	}
	return colorInfo[c].ansi
}

func (c Color) String() string {
	if int(c) >= len(colorInfo) {
		return "unknown"
	}
	return colorInfo[c].name
}
