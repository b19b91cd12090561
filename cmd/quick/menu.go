package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quick/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a demo picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a demo.
After a demo ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start demo
  Tab          - Save slots
  Q            - Quit

Examples:
  quick menu
  quick menu --frame-time 33
  quick menu --db ./quick.db`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	// Menu loop
	for {
		width, height := terminalSize()
		result, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}

		switch {
		case result.Quit:
			return nil

		case result.WantsSaves:
			goBack, err := tui.RunSaves(store, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			if err := play(result.DemoID, cfg, logger, store); err != nil {
				// Report and return to the menu.
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				logger.Error("demo failed", "demo", result.DemoID, "error", err)
			}
		}
	}
}
