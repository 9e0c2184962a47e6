// Package tui provides the Bubble Tea integration for the overworld.
// It owns the terminal loop, translates terminal keys into canonical key
// events and draws published actor snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

// TickMsg is sent to advance a held direction by one step.
type TickMsg time.Time

// releaseMsg synthesizes a key-up for a direction. gen identifies the
// key-down it belongs to; a newer key-down makes it stale.
type releaseMsg struct {
	dir core.Direction
	gen uint64
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(stepRate int) tea.Cmd {
	interval := time.Second / time.Duration(stepRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// releaseCmd fires a releaseMsg after d of silence.
func releaseCmd(dir core.Direction, gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return releaseMsg{dir: dir, gen: gen}
	})
}
