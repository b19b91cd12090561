package input

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/quick/internal/core"
)

// AnalogThreshold is how far the left stick must travel to count as a
// direction.
const AnalogThreshold = 0.5

// Standard gamepad axis indexes.
const (
	AxisLeftX = iota
	AxisLeftY
	AxisRightX
	AxisRightY
)

// Standard gamepad button indexes.
const (
	ButtonA = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonL1
	ButtonR1
	ButtonL2
	ButtonR2
	ButtonSelect
	ButtonStart
	ButtonL3
	ButtonR3
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

var buttonCommands = map[int]core.Command{
	ButtonUp:     core.CommandUp,
	ButtonDown:   core.CommandDown,
	ButtonLeft:   core.CommandLeft,
	ButtonRight:  core.CommandRight,
	ButtonA:      core.CommandA,
	ButtonB:      core.CommandB,
	ButtonX:      core.CommandX,
	ButtonY:      core.CommandY,
	ButtonStart:  core.CommandStart,
	ButtonSelect: core.CommandSelect,
}

// GamepadState is a raw gamepad sample.
type GamepadState struct {
	Axes    []float64
	Buttons []bool
}

// Gamepad is a CommandDevice over raw gamepad samples supplied by the host.
type Gamepad struct {
	state GamepadState
}

// Set records the latest sample.
func (g *Gamepad) Set(state GamepadState) {
	g.state = state
}

// Commands implements CommandDevice.
func (g *Gamepad) Commands() core.CommandSet {
	set := core.NewCommandSet()

	if y := g.axis(AxisLeftY); y < -AnalogThreshold {
		set.Set(core.CommandUp)
	} else if y > AnalogThreshold {
		set.Set(core.CommandDown)
	}

	if x := g.axis(AxisLeftX); x < -AnalogThreshold {
		set.Set(core.CommandLeft)
	} else if x > AnalogThreshold {
		set.Set(core.CommandRight)
	}

	for i, pressed := range g.state.Buttons {
		if !pressed {
			continue
		}
		if cmd, ok := buttonCommands[i]; ok {
			set.Set(cmd)
		}
	}
	return set
}

func (g *Gamepad) axis(i int) float64 {
	if i >= len(g.state.Axes) {
		return 0
	}
	return g.state.Axes[i]
}

var buttonNames = map[string]int{
	"a": ButtonA, "b": ButtonB, "x": ButtonX, "y": ButtonY,
	"l1": ButtonL1, "r1": ButtonR1, "l2": ButtonL2, "r2": ButtonR2,
	"select": ButtonSelect, "start": ButtonStart, "l3": ButtonL3, "r3": ButtonR3,
	"up": ButtonUp, "down": ButtonDown, "left": ButtonLeft, "right": ButtonRight,
}

// GamepadReplay is a CommandDevice that feeds recorded samples through a
// Gamepad, one sample per tick. Ticks past the recording are idle.
type GamepadReplay struct {
	pad     Gamepad
	samples []GamepadState
	pos     int
}

// NewGamepadReplay creates a replay of per-tick samples.
func NewGamepadReplay(samples ...GamepadState) *GamepadReplay {
	return &GamepadReplay{samples: samples}
}

// gamepadSpan is one YAML entry of a recording.
type gamepadSpan struct {
	From    int       `yaml:"from"`
	To      int       `yaml:"to"` // inclusive; defaults to From
	Axes    []float64 `yaml:"axes"`
	Buttons []string  `yaml:"buttons"`
}

// ParseGamepadReplay reads a YAML recording such as
//
//	- {from: 0, to: 20, axes: [-1, 0]}
//	- {from: 25, buttons: [a]}
//
// Later entries override earlier ones on shared ticks.
func ParseGamepadReplay(data []byte) (*GamepadReplay, error) {
	var spans []gamepadSpan
	if err := yaml.Unmarshal(data, &spans); err != nil {
		return nil, fmt.Errorf("input: gamepad replay: %w", err)
	}

	var samples []GamepadState
	for i, span := range spans {
		to := max(span.To, span.From)
		if span.From < 0 {
			return nil, fmt.Errorf("input: gamepad replay entry %d: negative tick %d", i, span.From)
		}

		state := GamepadState{Axes: span.Axes, Buttons: make([]bool, ButtonRight+1)}
		for _, name := range span.Buttons {
			b, ok := buttonNames[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("input: gamepad replay entry %d: unknown button %q", i, name)
			}
			state.Buttons[b] = true
		}

		for len(samples) <= to {
			samples = append(samples, GamepadState{})
		}
		for t := span.From; t <= to; t++ {
			samples[t] = state
		}
	}
	return NewGamepadReplay(samples...), nil
}

// Len returns the number of recorded ticks.
func (r *GamepadReplay) Len() int {
	return len(r.samples)
}

// Commands implements CommandDevice.
func (r *GamepadReplay) Commands() core.CommandSet {
	if r.pos < len(r.samples) {
		r.pad.Set(r.samples[r.pos])
	} else {
		r.pad.Set(GamepadState{})
	}
	return r.pad.Commands()
}

// Poll implements Poller by advancing to the next sample.
func (r *GamepadReplay) Poll() {
	if r.pos < len(r.samples) {
		r.pos++
	}
}
