// Package config provides YAML-based engine configuration loading and the
// difficulty curve used by the demos.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/quick/internal/audio"
	"github.com/vovakirdan/quick/internal/core"
)

// Config contains everything the CLI needs to build and host an engine.
type Config struct {
	Title       string           `yaml:"title"`
	Width       int              `yaml:"width"`
	Height      int              `yaml:"height"`
	FrameTimeMS int              `yaml:"frame_time_ms"`
	Layers      int              `yaml:"layers"` // initial count, more are added on demand
	Seed        int64            `yaml:"seed"`   // 0 = seed from the clock
	Input       InputConfig      `yaml:"input"`
	Audio       AudioConfig      `yaml:"audio"`
	Storage     StorageConfig    `yaml:"storage"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// InputConfig defines keyboard and controller parameters.
type InputConfig struct {
	KeyHoldTicks      int                 `yaml:"key_hold_ticks"`     // ticks a key press stays down
	SequenceTolerance int                 `yaml:"sequence_tolerance"` // idle ticks before push history resets
	Keys              map[string][]string `yaml:"keys"`               // command name -> key names
}

// AudioConfig defines the sound service.
type AudioConfig struct {
	Enabled       bool                    `yaml:"enabled"`
	EffectsVolume float64                 `yaml:"effects_volume"`
	SampleRate    int                     `yaml:"sample_rate"`
	Tones         map[string][]ToneConfig `yaml:"tones"` // sound id -> notes, merged over the built-in bank
}

// ToneConfig is one note of a configured sound.
type ToneConfig struct {
	Freq float64 `yaml:"freq"`
	MS   int     `yaml:"ms"`
	Wave string  `yaml:"wave"` // sine, square, saw or noise
}

// StorageConfig defines where save blobs live.
type StorageConfig struct {
	Path string `yaml:"path"`
	Slot string `yaml:"slot"` // prefix for demo save slots
}

// Runtime converts the config to the engine's runtime settings.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Title:     c.Title,
		Width:     c.Width,
		Height:    c.Height,
		FrameTime: time.Duration(c.FrameTimeMS) * time.Millisecond,
		Layers:    c.Layers,
		Seed:      c.Seed,
	}.Normalize()
}

// Bank returns the built-in sound bank with the configured tones merged
// over it.
func (c Config) Bank() (audio.Bank, error) {
	bank := audio.DefaultBank()
	for id, notes := range c.Audio.Tones {
		tones := make([]audio.Tone, 0, len(notes))
		for _, n := range notes {
			wave, err := audio.ParseWave(n.Wave)
			if err != nil {
				return nil, fmt.Errorf("config: sound %q: %w", id, err)
			}
			tones = append(tones, audio.Tone{
				Freq:     n.Freq,
				Duration: time.Duration(n.MS) * time.Millisecond,
				Wave:     wave,
			})
		}
		bank[id] = tones
	}
	return bank, nil
}

// SlotFor returns the save slot used by a demo.
func (c Config) SlotFor(demoID string) string {
	if c.Storage.Slot == "" {
		return demoID
	}
	return c.Storage.Slot + "/" + demoID
}
