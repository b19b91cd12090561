package core

import (
	"math"
	"testing"
)

func TestMotionIntegrate(t *testing.T) {
	tests := []struct {
		name             string
		m                Motion
		expectX, expectY float64
	}{
		{"no acceleration", Motion{SpeedX: 1, SpeedY: -2}, 1, -2},
		{"acceleration adds", Motion{SpeedX: 1, AccelX: 0.5, AccelY: 0.1}, 1.5, 0.1},
		{"clamped positive", Motion{SpeedY: 1.9, AccelY: 0.5, MaxSpeedY: 2}, 0, 2},
		{"clamped keeps sign", Motion{SpeedX: -3, MaxSpeedX: 1}, -1, 0},
		{"zero max is unlimited", Motion{SpeedX: 100, AccelX: 1}, 101, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.m
			m.Integrate()
			if m.SpeedX != tc.expectX || m.SpeedY != tc.expectY {
				t.Errorf("Integrate() speed = (%v, %v), expected (%v, %v)", m.SpeedX, m.SpeedY, tc.expectX, tc.expectY)
			}
		})
	}
}

func TestMotionStop(t *testing.T) {
	m := Motion{SpeedX: 3, SpeedY: -1, AccelY: 0.2}
	m.Stop()
	if m.SpeedX != 0 || m.SpeedY != 0 {
		t.Errorf("Stop() speed = (%v, %v), expected (0, 0)", m.SpeedX, m.SpeedY)
	}
	if m.AccelY != 0.2 {
		t.Errorf("Stop() AccelY = %v, expected 0.2", m.AccelY)
	}
}

func TestMotionAngle(t *testing.T) {
	tests := []struct {
		m        Motion
		expected float64
	}{
		{Motion{SpeedX: 1}, 0},
		{Motion{SpeedY: 1}, 90},
		{Motion{SpeedX: -1}, 180},
		{Motion{SpeedY: -1}, -90},
		{Motion{SpeedX: 1, SpeedY: 1}, 45},
	}

	for _, tc := range tests {
		if got := tc.m.Angle(); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Angle() of %+v = %v, expected %v", tc.m, got, tc.expected)
		}
	}
}

func TestMotionSetSpeedToAngle(t *testing.T) {
	var m Motion
	m.SetSpeedToAngle(2, 90)
	if math.Abs(m.SpeedX) > 1e-9 || math.Abs(m.SpeedY-2) > 1e-9 {
		t.Errorf("SetSpeedToAngle(2, 90) = (%v, %v), expected (0, 2)", m.SpeedX, m.SpeedY)
	}

	m.SetSpeedToAngle(1, 225)
	if got := m.Angle(); math.Abs(got+135) > 1e-9 {
		t.Errorf("Angle() after SetSpeedToAngle(1, 225) = %v, expected -135", got)
	}
	if got := math.Hypot(m.SpeedX, m.SpeedY); math.Abs(got-1) > 1e-9 {
		t.Errorf("speed magnitude = %v, expected 1", got)
	}
}
