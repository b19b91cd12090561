// Package tui hosts an engine in the terminal through Bubble Tea.
// It feeds key and mouse events to the engine's input devices, drives the
// frame loop with tick messages and draws the pixel surface with half-block
// characters, two pixels per cell.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an engine tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
