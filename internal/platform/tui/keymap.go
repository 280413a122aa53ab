package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tensio/internal/config"
	"github.com/vovakirdan/tensio/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Activate key.Binding
	Exit     key.Binding
	Help     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Exit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Activate},
		{k.Exit, k.Help},
	}
}

// Action translates a key press to a game action. Exit wins when a key is
// bound to both.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Exit):
		return core.ActionExit
	case key.Matches(msg, k.Activate):
		return core.ActionActivate
	}
	return core.ActionNone
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys(cfg.Activate...),
			key.WithHelp(keyLabel(cfg.Activate), "start / jump"),
		),
		Exit: key.NewBinding(
			key.WithKeys(cfg.Exit...),
			key.WithHelp(keyLabel(cfg.Exit), "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// keyLabel joins key names for display, spelling out the space bar.
func keyLabel(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}
