package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/quick/internal/asset"
	"github.com/vovakirdan/quick/internal/audio"
	"github.com/vovakirdan/quick/internal/config"
	"github.com/vovakirdan/quick/internal/engine"
	"github.com/vovakirdan/quick/internal/input"
	"github.com/vovakirdan/quick/internal/registry"
	"github.com/vovakirdan/quick/internal/storage"
)

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		cfg.Difficulty.ApplyPreset(preset)
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagFrameTime > 0 {
		cfg.FrameTimeMS = flagFrameTime
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newLogger writes to the --log-file when set and to fallback otherwise.
// The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "quick",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore opens the save database. A failure is logged and play goes on
// without persistence.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open save database", "path", cfg.Storage.Path, "error", err)
		return nil
	}
	return store
}

// session is one demo wired to its devices and services.
type session struct {
	id       string
	engine   *engine.Engine
	keyboard *input.Keyboard
	mouse    *input.Mouse
	sound    *audio.Sound
}

// sessionOptions selects the host services a session gets.
type sessionOptions struct {
	store  *storage.Store      // nil disables Save and Load
	replay input.CommandDevice // replaces the keyboard and mouse when set
	audio  bool
}

// newSession creates the demo and the engine that runs it.
func newSession(id string, cfg config.Config, logger *log.Logger, opts sessionOptions) (*session, error) {
	demo, err := registry.Create(id, cfg.Difficulty)
	if err != nil {
		return nil, err
	}

	lib := asset.NewLibrary()
	demo.Assets(lib)

	s := &session{id: id}
	mgr := input.NewManager(cfg.Input.SequenceTolerance)
	if opts.replay != nil {
		mgr.AddDevice(opts.replay)
	} else {
		keys := input.DefaultKeyMap()
		if err := keys.Override(cfg.Input.Keys); err != nil {
			return nil, err
		}
		s.keyboard = input.NewKeyboard(keys, cfg.Input.KeyHoldTicks)
		s.mouse = &input.Mouse{}
		mgr.AddDevice(s.keyboard)
		mgr.AddPointerDevice(s.mouse)
	}

	engineOpts := []engine.Option{
		engine.WithLogger(logger.With("demo", id)),
		engine.WithInput(mgr),
		engine.WithAssets(lib),
	}

	if opts.audio && cfg.Audio.Enabled {
		bank, err := cfg.Bank()
		if err != nil {
			return nil, err
		}
		sound := audio.New(beep.SampleRate(cfg.Audio.SampleRate), bank,
			audio.WithLogger(logger),
			audio.WithEffectsVolume(cfg.Audio.EffectsVolume),
		)
		if err := audio.Start(sound); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			s.sound = sound
			engineOpts = append(engineOpts, engine.WithAudio(sound))
		}
	}

	if opts.store != nil {
		engineOpts = append(engineOpts, engine.WithStore(opts.store, cfg.SlotFor(id)))
	}

	s.engine = engine.New(cfg.Runtime(), demo.FirstScene(), engineOpts...)
	logger.Debug("session ready", "demo", id, "width", cfg.Width, "height", cfg.Height, "audio", s.sound != nil)
	return s, nil
}

// Close releases the output device.
func (s *session) Close() {
	if s.sound != nil {
		audio.Close()
	}
}
