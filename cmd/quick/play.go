package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quick/internal/config"
	"github.com/vovakirdan/quick/internal/platform/tui"
	"github.com/vovakirdan/quick/internal/registry"
	"github.com/vovakirdan/quick/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Play a demo",
	Long: `Start playing the specified demo.

Controls:
  Arrows/ESDF  - Move
  Space/A      - A
  B/X/Y        - B, X, Y
  Enter/Esc    - Start, Select
  M            - Mute
  Ctrl+S       - Screenshot
  ?            - Help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression

Examples:
  quick play paddle
  quick play bricks --difficulty easy
  quick play paddle --seed 42 --mute
  quick play bricks --config ./my-quick.yaml --log-file quick.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := args[0]

	if !registry.Exists(id) {
		return fmt.Errorf("unknown demo %q, run 'quick list' to see available demos", id)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs would tear the alt screen, so they go nowhere without --log-file.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	warnTerminalSize(cmd, cfg)
	return play(id, cfg, logger, store)
}

// play hosts one demo until the user quits.
func play(id string, cfg config.Config, logger *log.Logger, store *storage.Store) error {
	s, err := newSession(id, cfg, logger, sessionOptions{store: store, audio: true})
	if err != nil {
		return err
	}
	defer s.Close()

	logger.Info("playing", "demo", id, "seed", cfg.Seed)
	if err := tui.Run(id, s.engine, s.keyboard, s.mouse); err != nil {
		return fmt.Errorf("running %s: %w", id, err)
	}
	return nil
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a
// terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// warnTerminalSize reports when the surface will not fit. The game still
// starts and shows its own warning until the window grows.
func warnTerminalSize(cmd *cobra.Command, cfg config.Config) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	w, h := terminalSize()
	needW, needH := cfg.Width, (cfg.Height+1)/2+1
	if w < needW || h < needH {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: terminal is %dx%d, %s needs %dx%d\n", w, h, cfg.Title, needW, needH)
	}
}
