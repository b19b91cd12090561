package audio

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

func (w Wave) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSaw:
		return "saw"
	case WaveNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// ParseWave resolves a wave by name. An empty name is a sine.
func ParseWave(name string) (Wave, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sine":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "saw":
		return WaveSaw, nil
	case "noise":
		return WaveNoise, nil
	}
	return 0, fmt.Errorf("audio: unknown wave %q", name)
}

// Tone is one synthesized note. A Freq of 0 is a rest.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// Bank maps sound ids to the notes played in sequence for them.
type Bank map[string][]Tone

// DefaultBank returns the sounds used by the bundled demos.
func DefaultBank() Bank {
	ms := time.Millisecond
	return Bank{
		"bounce": {{Freq: 660, Duration: 40 * ms, Wave: WaveSquare}},
		"hit":    {{Freq: 220, Duration: 60 * ms, Wave: WaveSaw}},
		"jump":   {{Freq: 440, Duration: 50 * ms, Wave: WaveSquare}, {Freq: 660, Duration: 50 * ms, Wave: WaveSquare}},
		"land":   {{Freq: 110, Duration: 70 * ms, Wave: WaveNoise}},
		"lose": {
			{Freq: 392, Duration: 120 * ms, Wave: WaveSaw},
			{Freq: 330, Duration: 120 * ms, Wave: WaveSaw},
			{Freq: 262, Duration: 240 * ms, Wave: WaveSaw},
		},
		"theme": {
			{Freq: 262, Duration: 200 * ms, Wave: WaveSine},
			{Freq: 330, Duration: 200 * ms, Wave: WaveSine},
			{Freq: 392, Duration: 200 * ms, Wave: WaveSine},
			{Freq: 330, Duration: 200 * ms, Wave: WaveSine},
		},
		"win": {
			{Freq: 523, Duration: 80 * ms, Wave: WaveSquare},
			{Freq: 659, Duration: 80 * ms, Wave: WaveSquare},
			{Freq: 784, Duration: 160 * ms, Wave: WaveSquare},
		},
	}
}

// Duration returns the total length of a note sequence.
func Duration(tones []Tone) time.Duration {
	var d time.Duration
	for _, t := range tones {
		d += t.Duration
	}
	return d
}

// sequence returns a streamer playing tones back to back.
func sequence(rate beep.SampleRate, tones []Tone) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, newEnvelope(newOscillator(t, rate), rate.N(t.Duration), rate.N(5*time.Millisecond)))
	}
	return beep.Seq(parts...)
}

type oscillator struct {
	freq     float64
	phase    float64
	wave     Wave
	rate     beep.SampleRate
	duration int
	position int
	noise    *rand.Rand
}

func newOscillator(t Tone, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     t.Freq,
		wave:     t.Wave,
		rate:     rate,
		duration: rate.N(t.Duration),
		noise:    rand.New(rand.NewSource(int64(t.Freq))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var v float64
		if o.freq > 0 {
			switch o.wave {
			case WaveSine:
				v = math.Sin(2 * math.Pi * o.phase)
			case WaveSquare:
				v = 1
				if o.phase >= 0.5 {
					v = -1
				}
			case WaveSaw:
				v = 2 * (o.phase - 0.5)
			case WaveNoise:
				v = o.noise.Float64()*2 - 1
			}
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps the first and last ramp samples to avoid clicks.
type envelope struct {
	streamer beep.Streamer
	total    int
	ramp     int
	position int
}

func newEnvelope(s beep.Streamer, total, ramp int) *envelope {
	return &envelope{streamer: s, total: total, ramp: min(ramp, total/2)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.ramp > 0 {
			if e.position < e.ramp {
				vol = float64(e.position) / float64(e.ramp)
			} else if left := e.total - e.position; left < e.ramp {
				vol = float64(left) / float64(e.ramp)
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
