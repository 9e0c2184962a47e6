package actor

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

var (
	// ErrInvalidPixelScale is returned for a pixel scale that is not positive.
	ErrInvalidPixelScale = errors.New("pixel scale must be positive")

	// ErrPixelScaleLocked is returned when a different pixel scale is
	// supplied after initialization.
	ErrPixelScaleLocked = errors.New("pixel scale already initialized")

	// ErrUnknownDirection is returned for press/release without a canonical direction.
	ErrUnknownDirection = errors.New("unknown direction")

	// ErrUnknownCommand is returned for a command with an unrecognized kind.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrClosed is returned by a controller after Close.
	ErrClosed = errors.New("controller closed")
)

// Mode is the coarse state of the actor.
type Mode string

const (
	ModeIdle   Mode = "idle"
	ModeMoving Mode = "moving"
)

// Camera holds the camera inputs and its derived translations, in pixels.
type Camera struct {
	PixelScale  int // 0 until initialized
	Anchor      core.Point
	ActorOffset core.Point
	MapOffset   core.Point
}

// Initialized reports whether a pixel scale has been supplied.
func (c Camera) Initialized() bool {
	return c.PixelScale > 0
}

// State is the canonical actor and camera state.
// It is a value: Transition never mutates its input.
type State struct {
	Pos     core.Point
	Held    Stack
	Speed   int
	Facing  core.Direction
	Walking bool
	Camera  Camera
}

// NewState returns the spawn state: idle at the world origin facing down.
func NewState() State {
	return State{
		Pos:    core.Pt(0, 0),
		Speed:  DefaultSpeed,
		Facing: DefaultFacing,
	}
}

// normalize fills in what a hand-built State may lack: a positive speed, a
// valid facing and the anchor implied by the pixel scale. Offsets are left
// for Transition to derive.
func (s State) normalize() State {
	if s.Speed <= 0 {
		s.Speed = DefaultSpeed
	}
	if !s.Facing.Valid() {
		s.Facing = DefaultFacing
	}
	if s.Camera.Initialized() {
		s.Camera.Anchor = CameraAnchor(s.Camera.PixelScale)
	} else {
		s.Camera = Camera{}
	}
	return s
}

// Mode returns idle when nothing is held, moving otherwise.
func (s State) Mode() Mode {
	if s.Held.Empty() {
		return ModeIdle
	}
	return ModeMoving
}

// Transition applies one command and re-derives everything downstream in a
// fixed order: held-direction mutation, movement step, facing/walking,
// camera projection.
//
// A press that adds a new direction steps once in the new active direction;
// so does Advance. Release, repeated presses, SetPixelScale and Refresh never
// move the actor, which makes replaying them idempotent.
// On error the input state is returned unchanged.
func Transition(s State, cmd Command) (State, error) {
	next := s
	step := false

	switch cmd.Kind {
	case CmdPress:
		if !cmd.Dir.Valid() {
			return s, fmt.Errorf("actor: %s: %w", cmd, ErrUnknownDirection)
		}
		step = next.Held.Press(cmd.Dir)
	case CmdRelease:
		if !cmd.Dir.Valid() {
			return s, fmt.Errorf("actor: %s: %w", cmd, ErrUnknownDirection)
		}
		next.Held.Release(cmd.Dir)
	case CmdSetPixelScale:
		if cmd.Scale <= 0 {
			return s, fmt.Errorf("actor: %s: %w", cmd, ErrInvalidPixelScale)
		}
		if next.Camera.Initialized() && next.Camera.PixelScale != cmd.Scale {
			return s, fmt.Errorf("actor: %s (have %d): %w", cmd, next.Camera.PixelScale, ErrPixelScaleLocked)
		}
		next.Camera.PixelScale = cmd.Scale
		next.Camera.Anchor = CameraAnchor(cmd.Scale)
	case CmdAdvance:
		step = true
	case CmdRefresh:
	default:
		return s, fmt.Errorf("actor: kind %d: %w", cmd.Kind, ErrUnknownCommand)
	}

	active := next.Held.Active()
	if step {
		next.Pos = Step(next.Pos, next.Speed, active)
	}
	next.Facing, next.Walking = Derive(active, next.Facing)
	if next.Camera.Initialized() {
		next.Camera.ActorOffset, next.Camera.MapOffset = Project(next.Pos, next.Camera.PixelScale, next.Camera.Anchor)
	}
	return next, nil
}
