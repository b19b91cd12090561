// Package audio implements the engine's sound service on top of a beep
// mixer: queued one-shot effects, a looping theme with fade-out, and mute.
package audio

import (
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	// DefaultSampleRate is used when none is configured.
	DefaultSampleRate = beep.SampleRate(44100)

	// DefaultEffectsVolume is the linear gain applied to one-shot effects.
	DefaultEffectsVolume = 0.3

	// fadeSteps is the number of ticks a theme fade-out lasts.
	fadeSteps = 100
)

// Option configures a Sound.
type Option func(*Sound)

// WithLogger sets the logger used for unknown ids.
func WithLogger(l *log.Logger) Option {
	return func(s *Sound) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEffectsVolume sets the linear gain of one-shot effects.
func WithEffectsVolume(v float64) Option {
	return func(s *Sound) {
		s.effectsVolume = v
	}
}

// Sound mixes effects and a theme into a single beep.Streamer.
//
// Game code calls Play, PlayTheme, FadeOut and Mute from the simulation
// goroutine; the engine calls Update once per tick. The audio device pulls
// samples through Stream from its own goroutine.
type Sound struct {
	mu sync.Mutex

	rate          beep.SampleRate
	bank          Bank
	effectsVolume float64
	logger        *log.Logger

	mixer beep.Mixer
	queue []string
	muted bool

	theme     *beep.Ctrl
	themeGain *effects.Volume
	themeID   string
	level     int // percent
	fading    bool
	nextTheme string
}

// New creates a sound service playing the sounds in bank at rate.
func New(rate beep.SampleRate, bank Bank, opts ...Option) *Sound {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if bank == nil {
		bank = DefaultBank()
	}
	s := &Sound{
		rate:          rate,
		bank:          bank,
		effectsVolume: DefaultEffectsVolume,
		logger:        log.NewWithOptions(io.Discard, log.Options{Prefix: "audio"}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SampleRate returns the rate samples are produced at.
func (s *Sound) SampleRate() beep.SampleRate {
	return s.rate
}

// Play queues effect id for the next Update. It is ignored while muted.
func (s *Sound) Play(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted {
		return
	}
	s.queue = append(s.queue, id)
}

// PlayTheme loops id as background music. If a theme is audible it is faded
// out first and id starts once the fade completes.
func (s *Sound) PlayTheme(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme != nil && !s.muted {
		s.nextTheme = id
		s.fading = true
		return
	}
	s.stopTheme()
	s.startTheme(id)
}

// StopTheme silences the theme at once and drops any scheduled one.
func (s *Sound) StopTheme() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTheme = ""
	s.stopTheme()
}

// FadeOut lowers the theme volume by one percent per tick, then stops it.
func (s *Sound) FadeOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme != nil {
		s.fading = true
	}
}

// Mute toggles muting. Muting pauses the theme and drops queued effects.
func (s *Sound) Mute() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = !s.muted
	if s.muted {
		s.queue = s.queue[:0]
	}
	if s.theme != nil {
		s.theme.Paused = s.muted
	}
}

// Muted reports whether sound is muted.
func (s *Sound) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Theme returns the id of the playing theme, or "".
func (s *Sound) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.themeID
}

// ThemeLevel returns the theme volume in percent.
func (s *Sound) ThemeLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Playing returns the number of streams in the mixer, theme included.
func (s *Sound) Playing() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mixer.Len()
}

// Update starts queued effects and advances a theme fade.
func (s *Sound) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.queue {
		tones, ok := s.bank[id]
		if !ok {
			s.logger.Debug("unknown sound", "id", id)
			continue
		}
		s.mixer.Add(gain(sequence(s.rate, tones), s.effectsVolume))
	}
	s.queue = s.queue[:0]

	if !s.fading || s.theme == nil || s.muted {
		return
	}
	s.level--
	if s.level > 0 {
		s.applyLevel()
		return
	}

	next := s.nextTheme
	s.nextTheme = ""
	s.stopTheme()
	if next != "" {
		s.startTheme(next)
	}
}

// Stream implements beep.Streamer. It never drains; silence is produced
// when nothing plays.
func (s *Sound) Stream(samples [][2]float64) (n int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, _ = s.mixer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (s *Sound) Err() error { return nil }

func (s *Sound) startTheme(id string) {
	tones, ok := s.bank[id]
	if !ok || Duration(tones) <= 0 {
		s.logger.Debug("unknown theme", "id", id)
		return
	}

	s.theme = &beep.Ctrl{
		Streamer: beep.Iterate(func() beep.Streamer { return sequence(s.rate, tones) }),
		Paused:   s.muted,
	}
	s.themeGain = &effects.Volume{Streamer: s.theme, Base: 2}
	s.themeID = id
	s.level = fadeSteps
	s.fading = false
	s.applyLevel()
	s.mixer.Add(s.themeGain)
}

func (s *Sound) stopTheme() {
	if s.theme != nil {
		s.theme.Streamer = nil
	}
	s.theme = nil
	s.themeGain = nil
	s.themeID = ""
	s.level = 0
	s.fading = false
}

func (s *Sound) applyLevel() {
	setGain(s.themeGain, float64(s.level)/fadeSteps)
}

// gain wraps st in a linear volume control.
func gain(st beep.Streamer, v float64) *effects.Volume {
	vol := &effects.Volume{Streamer: st, Base: 2}
	setGain(vol, v)
	return vol
}

// setGain converts a linear gain to the logarithmic scale effects.Volume
// expects. log2(0) is -Inf, so zero is expressed with Silent.
func setGain(vol *effects.Volume, v float64) {
	if v <= 0 {
		vol.Volume = 0
		vol.Silent = true
		return
	}
	vol.Volume = math.Log2(v)
	vol.Silent = false
}
