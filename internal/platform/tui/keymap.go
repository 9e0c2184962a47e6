package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-overworld/internal/config"
	"github.com/vovakirdan/tui-overworld/internal/core"
)

// KeyKind classifies a terminal key.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyMove         // one of the configured direction aliases
	KeyStop         // release everything held
	KeyHelp         // toggle full help
	KeyQuit         // leave the program
)

// Bindings are the key bindings shown in the help footer.
type Bindings struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Stop  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (b Bindings) ShortHelp() []key.Binding {
	return []key.Binding{b.Up, b.Down, b.Left, b.Right, b.Help, b.Quit}
}

// FullHelp returns key bindings for the full help view.
func (b Bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{b.Up, b.Down, b.Left, b.Right},
		{b.Stop, b.Help, b.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to canonical key identifiers.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	aliases  map[string]string
	bindings Bindings
}

// NewKeyMapper creates a key mapper from the configured key aliases.
func NewKeyMapper(cfg config.Config) *KeyMapper {
	keys := cfg.Keys
	km := &KeyMapper{aliases: cfg.Aliases()}

	km.bindings = Bindings{
		Up:    moveBinding(keys[core.KeyArrowUp], "up"),
		Down:  moveBinding(keys[core.KeyArrowDown], "down"),
		Left:  moveBinding(keys[core.KeyArrowLeft], "left"),
		Right: moveBinding(keys[core.KeyArrowRight], "right"),
		Stop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "stop"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	return km
}

func moveBinding(names []string, desc string) key.Binding {
	if len(names) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// Bindings returns the help bindings.
func (km *KeyMapper) Bindings() Bindings {
	return km.bindings
}

// MapKey classifies a key message. For KeyMove it also returns the canonical
// identifier (e.g. "ArrowUp").
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (KeyKind, string) {
	switch {
	case key.Matches(msg, km.bindings.Quit):
		return KeyQuit, ""
	case key.Matches(msg, km.bindings.Help):
		return KeyHelp, ""
	case key.Matches(msg, km.bindings.Stop):
		return KeyStop, ""
	}

	if id, ok := km.aliases[msg.String()]; ok {
		return KeyMove, id
	}
	return KeyNone, ""
}
