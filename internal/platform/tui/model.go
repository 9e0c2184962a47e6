package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-overworld/internal/actor"
	"github.com/vovakirdan/tui-overworld/internal/config"
	"github.com/vovakirdan/tui-overworld/internal/core"
)

const footerHeight = 1

// Model is the Bubble Tea model for walking the actor around the map.
type Model struct {
	ctrl     *actor.Controller
	keys     *KeyMapper
	help     help.Model
	screen   *core.Screen
	config   core.RuntimeConfig
	release  time.Duration
	logger   *log.Logger
	pending  map[core.Direction]uint64 // held direction -> generation of its last key-down
	gen      uint64
	quitting bool
}

// NewModel creates the model and initializes the camera with the
// configured pixel scale.
func NewModel(cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctrl := actor.NewController(actor.WithLogger(logger))
	if err := ctrl.SetPixelScale(rc.PixelScale); err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		ctrl:    ctrl,
		keys:    NewKeyMapper(cfg),
		help:    h,
		screen:  core.NewScreen(rc.ScreenW, max(rc.ScreenH-footerHeight, 1)),
		config:  rc,
		release: cfg.Display.ReleaseAfter(),
		logger:  logger,
		pending: make(map[core.Direction]uint64),
	}, nil
}

// Controller returns the controller driven by this model.
func (m Model) Controller() *actor.Controller {
	return m.ctrl
}

// Init starts the step clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.StepRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case releaseMsg:
		return m.handleRelease(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kind, id := m.keys.MapKey(msg)

	switch kind {
	case KeyQuit:
		m.ctrl.Close()
		m.quitting = true
		return m, tea.Quit

	case KeyHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case KeyStop:
		m.releaseAll()
		return m, nil

	case KeyMove:
		if _, err := m.ctrl.KeyDown(id); err != nil {
			m.logger.Warn("key down failed", "key", id, "error", err)
			return m, nil
		}
		m.gen++
		dir := core.ResolveKey(id)
		m.pending[dir] = m.gen
		return m, releaseCmd(dir, m.gen, m.release)
	}

	return m, nil
}

// handleRelease turns a synthesized key-up into a release, unless a newer
// key-down for the same direction arrived in the meantime.
func (m Model) handleRelease(msg releaseMsg) (tea.Model, tea.Cmd) {
	if gen, ok := m.pending[msg.dir]; !ok || gen != msg.gen {
		return m, nil
	}
	delete(m.pending, msg.dir)

	id := core.KeyFor(msg.dir)
	if _, err := m.ctrl.KeyUp(id); err != nil {
		m.logger.Warn("key up failed", "key", id, "error", err)
	}
	return m, nil
}

// releaseAll lets go of every held direction, oldest first, so the facing
// stays on the most recent one.
func (m *Model) releaseAll() {
	held := m.ctrl.State().Held.Slice()
	for i := len(held) - 1; i >= 0; i-- {
		id := core.KeyFor(held[i])
		if _, err := m.ctrl.KeyUp(id); err != nil {
			m.logger.Warn("key up failed", "key", id, "error", err)
		}
	}
	clear(m.pending)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width

	if _, err := m.ctrl.Dispatch(actor.Refresh()); err != nil {
		m.logger.Debug("refresh skipped", "error", err)
	}
	return m, nil
}

// handleTick keeps a held direction walking.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ctrl.Closed() {
		return m, nil
	}

	if m.ctrl.Snapshot().Walking {
		if _, err := m.ctrl.Dispatch(actor.Advance()); err != nil {
			m.logger.Warn("advance failed", "error", err)
		}
	}

	return m, tickCmd(m.config.StepRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys.Bindings())
	rows := strings.Count(footer, "\n") + 1
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-rows, 1))
	DrawWorld(m.screen, m.ctrl.Snapshot(), m.config.PixelScale)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(footer)
	return sb.String()
}

// Run starts the Bubble Tea program for cfg.
func Run(cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rc, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	model.ctrl.Close()
	return err
}
