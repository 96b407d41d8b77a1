// Package tui provides the Bubble Tea integration for the snake platform.
// It handles the terminal UI loop, input mapping, and the session flow from
// difficulty menu through game, name entry, and the score table.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickRate is the simulation tick frequency. Ticks poll the move clock;
// the snake itself moves on its per-tier interval.
const tickRate = 100

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given per-second rate.
func tickCmd(rate int) tea.Cmd {
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
