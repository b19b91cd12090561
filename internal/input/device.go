// Package input turns raw devices into per-tick controller snapshots.
//
// Devices report what is active right now. Controllers and pointers sample
// their device once per tick and derive edge-triggered "push" state from the
// previous sample.
package input

import "github.com/vovakirdan/quick/internal/core"

// CommandDevice reports the logical commands active at the moment of the call.
type CommandDevice interface {
	Commands() core.CommandSet
}

// PointerState is a pointer sample in logical surface coordinates.
type PointerState struct {
	Active bool
	X, Y   float64
}

// PointerDevice reports the current pointer sample.
type PointerDevice interface {
	Pointer() PointerState
}

// Poller is implemented by devices that need a hook after every tick's
// sampling, for example to decay held keys or advance a script.
type Poller interface {
	Poll()
}
