// Package tui provides the Bubble Tea front end for the snake game.
// It adapts the engine's Controller, Renderer and Prompter ports to a
// terminal program and draws snapshots with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays visible.
const statusTTL = 2 * time.Second

// clearStatusMsg hides the status line set at the given sequence number.
type clearStatusMsg int

// clearStatusCmd schedules removal of status line seq.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg(seq)
	})
}
