package input

import "github.com/vovakirdan/quick/internal/core"

// Controller samples a CommandDevice once per tick.
type Controller struct {
	// Tolerance is the number of idle ticks after the last push before the
	// recorded sequence is discarded. 0 keeps the sequence forever.
	Tolerance int

	device   CommandDevice
	active   core.CommandSet
	last     core.CommandSet
	sequence []core.Command
	idle     int
}

// NewController creates a controller bound to device, which may be nil.
func NewController(device CommandDevice) *Controller {
	return &Controller{
		device: device,
		active: core.NewCommandSet(),
		last:   core.NewCommandSet(),
	}
}

// SetDevice binds the controller to a device.
func (c *Controller) SetDevice(device CommandDevice) {
	c.device = device
}

// HasDevice reports whether a device is bound.
func (c *Controller) HasDevice() bool {
	return c.device != nil
}

// Update samples the device. Without a device the controller keeps its state.
func (c *Controller) Update() {
	if c.device == nil {
		return
	}

	c.last = c.active
	c.active = c.device.Commands().Clone()

	if c.Tolerance > 0 {
		c.idle++
		if c.idle > c.Tolerance {
			c.sequence = c.sequence[:0]
			c.idle = 0
		}
	}

	for _, cmd := range core.Commands {
		if c.Push(cmd) {
			c.sequence = append(c.sequence, cmd)
			c.idle = 0
		}
	}
}

// Down reports whether cmd is active this tick.
func (c *Controller) Down(cmd core.Command) bool {
	return c.active.Has(cmd)
}

// Push reports whether cmd became active this tick.
func (c *Controller) Push(cmd core.Command) bool {
	return c.active.Has(cmd) && !c.last.Has(cmd)
}

// DidPerform reports whether the most recent pushes end with seq.
// A match clears the recorded history so it fires only once.
func (c *Controller) DidPerform(seq ...core.Command) bool {
	if len(seq) > len(c.sequence) {
		return false
	}
	offset := len(c.sequence) - len(seq)
	for i, cmd := range seq {
		if c.sequence[offset+i] != cmd {
			return false
		}
	}
	c.sequence = c.sequence[:0]
	return true
}

// Sequence returns a copy of the recorded push history.
func (c *Controller) Sequence() []core.Command {
	return append([]core.Command(nil), c.sequence...)
}
