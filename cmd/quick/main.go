// quick hosts the engine's demo games in the terminal.
//
// Usage:
//
//	quick list               - List available demos
//	quick play <demo>        - Play a demo
//	quick menu               - Pick demos interactively
//	quick snapshot <demo>    - Run a demo headless and write a PNG
//	quick saves              - List or clear save slots
//
// Global flags:
//
//	--config <path>      - Engine config YAML
//	--seed <value>       - RNG seed for reproducible runs
//	--db <path>          - Save database (default: ~/.quick/quick.db)
//	--frame-time <ms>    - Tick interval override
//	--difficulty <name>  - easy, normal, hard or fixed
//	--mute               - Disable audio
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import demos to register them
	_ "github.com/vovakirdan/quick/internal/games/bricks"
	_ "github.com/vovakirdan/quick/internal/games/paddle"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagDBPath     string
	flagFrameTime  int
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quick",
	Short: "quick - a tiny 2D engine running in your terminal",
	Long: `quick is a small fixed-step 2D game engine. Its demos render to the
terminal with half-block characters, two pixels per cell.

Available commands:
  list      - Show all available demos
  play      - Play a specific demo directly
  menu      - Interactive demo picker
  snapshot  - Run a demo headless and save the last frame
  saves     - Inspect or clear save slots

Examples:
  quick list
  quick play paddle
  quick play bricks --difficulty hard --mute
  quick snapshot paddle --ticks 300 --out paddle.png
  quick saves --clear bricks`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to save database (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagFrameTime, "frame-time", 0, "Tick interval in milliseconds (0 = config value)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(savesCmd)
}
