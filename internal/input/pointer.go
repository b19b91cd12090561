package input

import "math"

// Pointer samples a PointerDevice once per tick.
type Pointer struct {
	device PointerDevice
	state  PointerState
	last   bool
}

// NewPointer creates a pointer bound to device, which may be nil.
func NewPointer(device PointerDevice) *Pointer {
	return &Pointer{device: device}
}

// SetDevice binds the pointer to a device.
func (p *Pointer) SetDevice(device PointerDevice) {
	p.device = device
}

// HasDevice reports whether a device is bound.
func (p *Pointer) HasDevice() bool {
	return p.device != nil
}

// Update samples the device.
func (p *Pointer) Update() {
	if p.device == nil {
		return
	}
	p.last = p.state.Active
	p.state = p.device.Pointer()
}

// Down reports whether the pointer is active this tick.
func (p *Pointer) Down() bool {
	return p.state.Active
}

// Push reports whether the pointer became active this tick.
func (p *Pointer) Push() bool {
	return p.state.Active && !p.last
}

// Position returns the last sampled position, floored to whole pixels.
func (p *Pointer) Position() (float64, float64) {
	return math.Floor(p.state.X), math.Floor(p.state.Y)
}

// Mouse is a PointerDevice fed by the host's mouse events.
type Mouse struct {
	state PointerState
}

// Set records the latest mouse sample.
func (m *Mouse) Set(active bool, x, y float64) {
	m.state = PointerState{Active: active, X: x, Y: y}
}

// Move updates the position and keeps the button state.
func (m *Mouse) Move(x, y float64) {
	m.state.X, m.state.Y = x, y
}

// Pointer implements PointerDevice.
func (m *Mouse) Pointer() PointerState {
	return m.state
}
