package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-overworld/internal/actor"
	"github.com/vovakirdan/tui-overworld/internal/core"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		tok     string
		want    Event
		wantErr bool
	}{
		{"+ArrowDown", Event{Kind: EventKeyDown, Key: "ArrowDown"}, false},
		{"-ArrowLeft", Event{Kind: EventKeyUp, Key: "ArrowLeft"}, false},
		{"+Space", Event{Kind: EventKeyDown, Key: "Space"}, false},
		{".", Event{Kind: EventAdvance}, false},
		{"scale=4", Event{Kind: EventScale, Scale: 4}, false},
		{"scale=0", Event{Kind: EventScale, Scale: 0}, false},
		{"scale=big", Event{}, true},
		{"+", Event{}, true},
		{"-", Event{}, true},
		{"jump", Event{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := ParseToken(tt.tok)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseToken(%q) error = %v, wantErr %v", tt.tok, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseToken(%q) = %+v, expected %+v", tt.tok, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.tok {
				t.Errorf("String() = %q, expected %q", got.String(), tt.tok)
			}
		})
	}
}

func TestParseSplitsArguments(t *testing.T) {
	events, err := Parse([]string{"scale=1 +ArrowRight", ".", "  -ArrowRight  "})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	var toks []string
	for _, ev := range events {
		toks = append(toks, ev.String())
	}
	if got, want := strings.Join(toks, " "), "scale=1 +ArrowRight . -ArrowRight"; got != want {
		t.Errorf("Parse() = %q, expected %q", got, want)
	}
}

func TestDecode(t *testing.T) {
	t.Run("events", func(t *testing.T) {
		events, err := Decode(strings.NewReader("events: [\"+ArrowUp\", \"-ArrowUp\", \".\"]\n"))
		if err != nil {
			t.Fatalf("Decode() error: %v", err)
		}
		if len(events) != 3 {
			t.Errorf("len(events) = %d, expected 3", len(events))
		}
	})

	t.Run("empty", func(t *testing.T) {
		events, err := Decode(strings.NewReader(""))
		if err != nil || len(events) != 0 {
			t.Errorf("Decode(\"\") = %v, %v; expected no events", events, err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		if _, err := Decode(strings.NewReader("steps: [\".\"]\n")); err == nil {
			t.Error("expected error for unknown field")
		}
	})

	t.Run("bad token", func(t *testing.T) {
		if _, err := Decode(strings.NewReader("events: [\"walk\"]\n")); err == nil {
			t.Error("expected error for bad token")
		}
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.yaml")
	if err := os.WriteFile(path, []byte("events:\n  - scale=4\n  - +ArrowRight\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	events, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(events) != 2 || events[0].Scale != 4 {
		t.Errorf("LoadFile() = %+v", events)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRun(t *testing.T) {
	events, err := Parse([]string{"scale=1 +ArrowRight +ArrowDown -ArrowRight -ArrowDown +Bogus ."})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	steps := Run(actor.NewController(), events)
	if len(steps) != len(events) {
		t.Fatalf("len(steps) = %d, expected %d", len(steps), len(events))
	}

	want := []struct {
		pos     core.Point
		facing  core.Direction
		walking bool
	}{
		{core.Pt(0, 0), core.DirDown, false},
		{core.Pt(1, 0), core.DirRight, true},
		{core.Pt(1, 1), core.DirDown, true},
		{core.Pt(1, 1), core.DirDown, true},
		{core.Pt(1, 1), core.DirDown, false},
		{core.Pt(1, 1), core.DirDown, false},
		{core.Pt(1, 1), core.DirDown, false},
	}

	for i, w := range want {
		s := steps[i]
		if s.Err != nil {
			t.Errorf("step %d (%v) error: %v", i, s.Event, s.Err)
		}
		if s.Snapshot.Position != w.pos || s.Snapshot.Facing != w.facing || s.Snapshot.Walking != w.walking {
			t.Errorf("step %d (%v) = %v %v %v, expected %v %v %v", i, s.Event,
				s.Snapshot.Position, s.Snapshot.Facing, s.Snapshot.Walking,
				w.pos, w.facing, w.walking)
		}
	}
}

func TestRunRecordsRejectedEvents(t *testing.T) {
	events, err := Parse([]string{"scale=0 scale=4 +ArrowRight scale=2"})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	steps := Run(actor.NewController(), events)

	if !errors.Is(steps[0].Err, actor.ErrInvalidPixelScale) {
		t.Errorf("scale=0 error = %v, expected ErrInvalidPixelScale", steps[0].Err)
	}
	if steps[0].Snapshot.Projected {
		t.Error("rejected scale should leave the camera uninitialized")
	}
	if !errors.Is(steps[3].Err, actor.ErrPixelScaleLocked) {
		t.Errorf("scale=2 error = %v, expected ErrPixelScaleLocked", steps[3].Err)
	}

	last := steps[3].Snapshot
	if last.ActorOffset != core.Pt(4, 0) || last.MapOffset != core.Pt(260, 168) {
		t.Errorf("offsets = %v %v, expected (4,0) (260,168)", last.ActorOffset, last.MapOffset)
	}
}

func TestRunAfterClose(t *testing.T) {
	ctrl := actor.NewController()
	ctrl.Close()

	steps := Run(ctrl, []Event{{Kind: EventKeyDown, Key: "ArrowUp"}})
	if !errors.Is(steps[0].Err, actor.ErrClosed) {
		t.Errorf("error = %v, expected ErrClosed", steps[0].Err)
	}
}
