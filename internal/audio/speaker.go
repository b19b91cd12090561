package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"
)

// Start opens the default output device and plays s through it until
// Close is called.
func Start(s *Sound) error {
	rate := s.SampleRate()
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s)
	return nil
}

// Close stops playback and releases the output device.
func Close() {
	speaker.Close()
}
