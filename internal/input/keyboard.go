package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/quick/internal/core"
)

// DefaultKeyHoldTicks is how long one key press keeps its command active.
// Terminals report presses and auto-repeats but never releases, so a press
// has to stay active long enough to bridge the repeat interval.
const DefaultKeyHoldTicks = 8

// KeyMap binds every command to a set of keys.
type KeyMap map[core.Command]key.Binding

// DefaultKeyMap returns the default bindings: arrows plus two letter
// clusters for movement, space for A.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		core.CommandUp: key.NewBinding(
			key.WithKeys("up", "e", "i"),
			key.WithHelp("↑/e/i", "up"),
		),
		core.CommandDown: key.NewBinding(
			key.WithKeys("down", "d", "k"),
			key.WithHelp("↓/d/k", "down"),
		),
		core.CommandLeft: key.NewBinding(
			key.WithKeys("left", "s", "j"),
			key.WithHelp("←/s/j", "left"),
		),
		core.CommandRight: key.NewBinding(
			key.WithKeys("right", "f", "l"),
			key.WithHelp("→/f/l", "right"),
		),
		core.CommandA: key.NewBinding(
			key.WithKeys(" ", "a"),
			key.WithHelp("space", "A"),
		),
		core.CommandB: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "B"),
		),
		core.CommandX: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "X"),
		),
		core.CommandY: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Y"),
		),
		core.CommandSelect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "select"),
		),
		core.CommandStart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
	}
}

// Override replaces the keys bound to the named commands. Unknown command
// names are reported as an error and leave the map untouched.
func (km KeyMap) Override(keys map[string][]string) error {
	for name, ks := range keys {
		cmd, ok := core.ParseCommand(name)
		if !ok {
			return fmt.Errorf("input: unknown command %q", name)
		}
		if len(ks) == 0 {
			continue
		}
		km[cmd] = key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(ks[0], cmd.String()),
		)
	}
	return nil
}

// Bindings returns the bindings in command order, for help views.
func (km KeyMap) Bindings() []key.Binding {
	out := make([]key.Binding, 0, len(km))
	for _, cmd := range core.Commands {
		if b, ok := km[cmd]; ok {
			out = append(out, b)
		}
	}
	return out
}

// Keyboard is a CommandDevice fed by terminal key events.
type Keyboard struct {
	keys KeyMap
	hold int
	held map[core.Command]int
}

// NewKeyboard creates a keyboard. holdTicks <= 0 uses DefaultKeyHoldTicks.
func NewKeyboard(keys KeyMap, holdTicks int) *Keyboard {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	if holdTicks <= 0 {
		holdTicks = DefaultKeyHoldTicks
	}
	return &Keyboard{
		keys: keys,
		hold: holdTicks,
		held: make(map[core.Command]int),
	}
}

// Keys returns the key map in use.
func (k *Keyboard) Keys() KeyMap {
	return k.keys
}

// Press records a key event and reports whether it mapped to a command.
func (k *Keyboard) Press(msg fmt.Stringer) bool {
	matched := false
	for _, cmd := range core.Commands {
		b, ok := k.keys[cmd]
		if !ok {
			continue
		}
		if key.Matches(msg, b) {
			k.held[cmd] = k.hold
			matched = true
		}
	}
	return matched
}

// Release drops every held command.
func (k *Keyboard) Release() {
	clear(k.held)
}

// Commands implements CommandDevice.
func (k *Keyboard) Commands() core.CommandSet {
	set := core.NewCommandSet()
	for cmd, ticks := range k.held {
		if ticks > 0 {
			set.Set(cmd)
		}
	}
	return set
}

// Poll implements Poller by decaying held commands by one tick.
func (k *Keyboard) Poll() {
	for cmd, ticks := range k.held {
		if ticks <= 1 {
			delete(k.held, cmd)
			continue
		}
		k.held[cmd] = ticks - 1
	}
}
