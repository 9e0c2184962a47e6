// Package script parses and replays headless input traces.
//
// A trace is a sequence of tokens:
//
//	+ArrowDown   key-down
//	-ArrowDown   key-up
//	.            advance one step
//	scale=2      set the pixel scale
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-overworld/internal/actor"
)

// EventKind identifies a trace event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventAdvance
	EventScale
)

// Event is one parsed trace token.
type Event struct {
	Kind  EventKind
	Key   string // EventKeyDown, EventKeyUp
	Scale int    // EventScale
}

// String returns the token form of the event.
func (e Event) String() string {
	switch e.Kind {
	case EventKeyDown:
		return "+" + e.Key
	case EventKeyUp:
		return "-" + e.Key
	case EventAdvance:
		return "."
	case EventScale:
		return "scale=" + strconv.Itoa(e.Scale)
	}
	return "?"
}

var errEmptyKey = errors.New("missing key identifier")

// ParseToken parses a single token.
func ParseToken(tok string) (Event, error) {
	switch {
	case tok == ".":
		return Event{Kind: EventAdvance}, nil

	case strings.HasPrefix(tok, "+"), strings.HasPrefix(tok, "-"):
		key := tok[1:]
		if key == "" {
			return Event{}, fmt.Errorf("script: %q: %w", tok, errEmptyKey)
		}
		kind := EventKeyDown
		if tok[0] == '-' {
			kind = EventKeyUp
		}
		return Event{Kind: kind, Key: key}, nil

	case strings.HasPrefix(tok, "scale="):
		n, err := strconv.Atoi(strings.TrimPrefix(tok, "scale="))
		if err != nil {
			return Event{}, fmt.Errorf("script: %q: %w", tok, err)
		}
		return Event{Kind: EventScale, Scale: n}, nil
	}

	return Event{}, fmt.Errorf("script: unknown token %q", tok)
}

// Parse parses whitespace-separated tokens from each argument.
func Parse(args []string) ([]Event, error) {
	var events []Event
	for _, arg := range args {
		for _, tok := range strings.Fields(arg) {
			ev, err := ParseToken(tok)
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
		}
	}
	return events, nil
}

// File is the YAML form of a trace.
type File struct {
	Events []string `yaml:"events"`
}

// Decode reads a YAML trace. Unknown fields are rejected.
func Decode(r io.Reader) ([]Event, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("script: yaml: %w", err)
	}
	return Parse(f.Events)
}

// LoadFile reads a YAML trace from path.
func LoadFile(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Step is the outcome of one replayed event.
type Step struct {
	Event    Event
	Snapshot actor.Snapshot
	Err      error
}

// Run replays events against ctrl in order. A rejected event is recorded in
// its step and replay continues; the controller state is unchanged by it.
func Run(ctrl *actor.Controller, events []Event) []Step {
	steps := make([]Step, 0, len(events))
	for _, ev := range events {
		snap, err := apply(ctrl, ev)
		steps = append(steps, Step{Event: ev, Snapshot: snap, Err: err})
	}
	return steps
}

func apply(ctrl *actor.Controller, ev Event) (actor.Snapshot, error) {
	switch ev.Kind {
	case EventKeyDown:
		return ctrl.KeyDown(ev.Key)
	case EventKeyUp:
		return ctrl.KeyUp(ev.Key)
	case EventAdvance:
		return ctrl.Dispatch(actor.Advance())
	case EventScale:
		return ctrl.Dispatch(actor.SetPixelScale(ev.Scale))
	}
	return ctrl.Snapshot(), fmt.Errorf("script: event %d: %w", ev.Kind, actor.ErrUnknownCommand)
}
