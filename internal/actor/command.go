package actor

import (
	"fmt"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

// CommandKind tags a Command.
type CommandKind int

const (
	CmdNone          CommandKind = iota
	CmdPress                     // a direction key went down
	CmdRelease                   // a direction key went up
	CmdSetPixelScale             // the renderer reports its pixel scale
	CmdAdvance                   // the host asks for one more movement step
	CmdRefresh                   // re-derive without input (redraw)
)

// String returns a human-readable name for the kind.
func (k CommandKind) String() string {
	switch k {
	case CmdPress:
		return "press"
	case CmdRelease:
		return "release"
	case CmdSetPixelScale:
		return "set-pixel-scale"
	case CmdAdvance:
		return "advance"
	case CmdRefresh:
		return "refresh"
	default:
		return "none"
	}
}

// Command is the single input type of the state machine.
// Dir is used by press/release, Scale by set-pixel-scale.
type Command struct {
	Kind  CommandKind
	Dir   core.Direction
	Scale int
}

// Press returns the command for a key-down of d.
func Press(d core.Direction) Command {
	return Command{Kind: CmdPress, Dir: d}
}

// Release returns the command for a key-up of d.
func Release(d core.Direction) Command {
	return Command{Kind: CmdRelease, Dir: d}
}

// SetPixelScale returns the initialization command for the camera.
func SetPixelScale(n int) Command {
	return Command{Kind: CmdSetPixelScale, Scale: n}
}

// Advance returns the command for one extra step in the active direction.
func Advance() Command {
	return Command{Kind: CmdAdvance}
}

// Refresh returns the command that re-runs derivation only.
func Refresh() Command {
	return Command{Kind: CmdRefresh}
}

func (c Command) String() string {
	switch c.Kind {
	case CmdPress, CmdRelease:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Dir)
	case CmdSetPixelScale:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Scale)
	default:
		return c.Kind.String()
	}
}
