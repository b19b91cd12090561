package core

import "strings"

// Command is a logical controller input, abstracted from physical keys and
// gamepad buttons so that games work with intents rather than devices.
type Command int

const (
	CommandUp Command = iota
	CommandDown
	CommandLeft
	CommandRight
	CommandA      // primary action (jump, fire)
	CommandB      // secondary action
	CommandX
	CommandY
	CommandSelect // escape / back
	CommandStart  // enter / confirm
)

// Commands lists every command in declaration order. Controllers record
// pushed commands in this order when several arrive in the same tick.
var Commands = []Command{
	CommandUp,
	CommandDown,
	CommandLeft,
	CommandRight,
	CommandA,
	CommandB,
	CommandX,
	CommandY,
	CommandSelect,
	CommandStart,
}

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandUp:
		return "Up"
	case CommandDown:
		return "Down"
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	case CommandA:
		return "A"
	case CommandB:
		return "B"
	case CommandX:
		return "X"
	case CommandY:
		return "Y"
	case CommandSelect:
		return "Select"
	case CommandStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// ParseCommand resolves a command by its name, ignoring case.
func ParseCommand(name string) (Command, bool) {
	for _, c := range Commands {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}
	return 0, false
}

// CommandSet is a snapshot of the commands a device reports as active during
// one tick.
type CommandSet struct {
	// Active maps commands to whether they are held this tick.
	Active map[Command]bool
}

// NewCommandSet creates a set with the given commands active.
func NewCommandSet(cmds ...Command) CommandSet {
	s := CommandSet{Active: make(map[Command]bool, len(cmds))}
	for _, c := range cmds {
		s.Active[c] = true
	}
	return s
}

// Set marks a command as active.
func (s *CommandSet) Set(c Command) {
	if s.Active == nil {
		s.Active = make(map[Command]bool)
	}
	s.Active[c] = true
}

// Has returns true if the given command is active.
func (s CommandSet) Has(c Command) bool {
	if s.Active == nil {
		return false
	}
	return s.Active[c]
}

// Len returns the number of active commands.
func (s CommandSet) Len() int {
	n := 0
	for _, v := range s.Active {
		if v {
			n++
		}
	}
	return n
}

// Clear resets all commands.
func (s *CommandSet) Clear() {
	for k := range s.Active {
		delete(s.Active, k)
	}
}

// Clone creates a copy of this set.
func (s CommandSet) Clone() CommandSet {
	clone := NewCommandSet()
	for k, v := range s.Active {
		clone.Active[k] = v
	}
	return clone
}
