// Package tui runs the shooter in a terminal with Bubble Tea, locally or
// inside an SSH session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the game model to run one simulation step.
type TickMsg time.Time

// tickCmd schedules the next step. The step delta comes from the model's
// stopwatch, so the interval only sets the pace.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
