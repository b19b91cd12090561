package core

import "math"

// Motion holds the per-tick velocity state of a body.
//
// Acceleration is added to speed once per tick. MaxSpeedX/MaxSpeedY clamp the
// magnitude of the resulting speed while keeping its sign; a value <= 0 means
// no limit.
type Motion struct {
	SpeedX, SpeedY       float64
	AccelX, AccelY       float64
	MaxSpeedX, MaxSpeedY float64
}

// Integrate applies acceleration to speed and clamps the result.
func (m *Motion) Integrate() {
	m.SpeedX = clampSpeed(m.SpeedX+m.AccelX, m.MaxSpeedX)
	m.SpeedY = clampSpeed(m.SpeedY+m.AccelY, m.MaxSpeedY)
}

// Stop zeroes both speed components. Acceleration is left untouched.
func (m *Motion) Stop() {
	m.SpeedX = 0
	m.SpeedY = 0
}

// Angle returns the heading of the velocity in degrees, measured clockwise
// from the positive x axis in screen coordinates.
func (m Motion) Angle() float64 {
	return math.Atan2(m.SpeedY, m.SpeedX) * 180 / math.Pi
}

// SetSpeedToAngle points the velocity at the given heading with the given
// magnitude.
func (m *Motion) SetSpeedToAngle(speed, degrees float64) {
	rad := degrees * math.Pi / 180
	m.SpeedX = speed * math.Cos(rad)
	m.SpeedY = speed * math.Sin(rad)
}

func clampSpeed(v, max float64) float64 {
	if max > 0 && math.Abs(v) > max {
		return math.Copysign(max, v)
	}
	return v
}
