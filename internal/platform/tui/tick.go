// Package tui provides the Bubble Tea integration for the defender game.
// It handles the terminal UI loop, input mapping and held-key tracking.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. It carries the wall
// time the tick fired at, which the model turns into the frame delta.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
