package config

import (
	_ "embed"
)

//go:embed defaults/quick.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:       "quick",
		Width:       80,
		Height:      48,
		FrameTimeMS: 16,
		Layers:      2,
		Seed:        0,
		Input: InputConfig{
			KeyHoldTicks:      8,
			SequenceTolerance: 30,
		},
		Audio: AudioConfig{
			Enabled:       true,
			EffectsVolume: 0.3,
			SampleRate:    44100,
		},
		Storage: StorageConfig{
			Path: "~/.quick/quick.db",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 30,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
