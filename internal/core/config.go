package core

import "time"

// DefaultFrameTime is the target interval between two simulation ticks.
const DefaultFrameTime = 16 * time.Millisecond

// RuntimeConfig contains the settings an engine is constructed with.
type RuntimeConfig struct {
	Title     string
	Width     int           // Logical surface width in pixels
	Height    int           // Logical surface height in pixels
	FrameTime time.Duration // Interval between ticks
	Layers    int           // Paint layers allocated up front; more are added on demand
	Seed      int64         // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Title:     "Quick Game",
		Width:     80,
		Height:    48,
		FrameTime: DefaultFrameTime,
		Layers:    1,
		Seed:      0,
	}
}

// Normalize fills zero or negative fields with defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.FrameTime <= 0 {
		c.FrameTime = def.FrameTime
	}
	if c.Layers <= 0 {
		c.Layers = def.Layers
	}
	return c
}
