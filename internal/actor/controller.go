package actor

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

// Controller owns the state of one actor session. It is driven by one input
// event at a time; the latest snapshot may be read from any goroutine.
type Controller struct {
	state     State
	published atomic.Pointer[Snapshot]
	closed    atomic.Bool
	logger    *log.Logger
	observers []func(Snapshot)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers fn to receive every published snapshot.
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithState starts the controller from s instead of the spawn state.
// A non-positive speed becomes DefaultSpeed, and the camera anchor and
// offsets are recomputed from the pixel scale.
func WithState(s State) Option {
	return func(c *Controller) {
		c.state = s
	}
}

// NewController creates a controller in the spawn state and publishes its
// first snapshot.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		state:  NewState(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	// Derive facing, walking and offsets for a state supplied by WithState.
	if next, err := Transition(c.state.normalize(), Refresh()); err == nil {
		c.state = next
	}
	c.publish()
	return c
}

// Dispatch runs cmd through Transition and publishes the result.
// On error nothing is published and the state is unchanged.
func (c *Controller) Dispatch(cmd Command) (Snapshot, error) {
	if c.closed.Load() {
		return c.Snapshot(), ErrClosed
	}

	next, err := Transition(c.state, cmd)
	if err != nil {
		c.logger.Debug("command rejected", "cmd", cmd, "error", err)
		return c.Snapshot(), err
	}

	if prev := c.state.Mode(); prev != next.Mode() {
		c.logger.Debug("mode changed",
			"from", prev,
			"to", next.Mode(),
			"pos", next.Pos,
			"facing", next.Facing,
		)
	}

	c.state = next
	return c.publish(), nil
}

// KeyDown resolves a key identifier and presses its direction.
// Unknown identifiers are ignored.
func (c *Controller) KeyDown(id string) (Snapshot, error) {
	d := core.ResolveKey(id)
	if d == core.DirNone {
		c.logger.Debug("ignored key", "key", id, "event", "down")
		return c.Snapshot(), nil
	}
	return c.Dispatch(Press(d))
}

// KeyUp resolves a key identifier and releases its direction.
// Unknown identifiers are ignored.
func (c *Controller) KeyUp(id string) (Snapshot, error) {
	d := core.ResolveKey(id)
	if d == core.DirNone {
		c.logger.Debug("ignored key", "key", id, "event", "up")
		return c.Snapshot(), nil
	}
	return c.Dispatch(Release(d))
}

// SetPixelScale initializes the camera. It must be called before offsets
// are meaningful; repeating it with the same value is harmless.
func (c *Controller) SetPixelScale(n int) error {
	_, err := c.Dispatch(SetPixelScale(n))
	return err
}

// Snapshot returns the most recently published snapshot.
func (c *Controller) Snapshot() Snapshot {
	return *c.published.Load()
}

// State returns a copy of the canonical state.
func (c *Controller) State() State {
	return c.state
}

// Close tears the controller down. Later dispatches fail with ErrClosed and
// publish nothing.
func (c *Controller) Close() {
	if c.closed.Swap(true) {
		return
	}
	c.logger.Debug("controller closed", "pos", c.state.Pos)
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	return c.closed.Load()
}

func (c *Controller) publish() Snapshot {
	snap := c.state.Snapshot()
	c.published.Store(&snap)
	for _, fn := range c.observers {
		fn(snap)
	}
	return snap
}
