package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/quick/internal/input"
)

// KeyMap defines the host keys handled before the engine sees a key, plus
// the game bindings shown in the help footer.
type KeyMap struct {
	Quit       key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Help       key.Binding

	Game input.KeyMap
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	game := k.Game.Bindings()
	half := (len(game) + 1) / 2
	return [][]key.Binding{
		game[:half],
		game[half:],
		{k.Help, k.Mute, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the host bindings around the given game keys.
func DefaultKeyMap(game input.KeyMap) KeyMap {
	if game == nil {
		game = input.DefaultKeyMap()
	}
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Game: game,
	}
}

// MenuKeyMap defines the key bindings for the demo picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Saves  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Saves, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Saves: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "saves"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
