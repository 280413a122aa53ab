// Package tui hosts the Tensio game in a Bubble Tea program, locally or
// over SSH. It maps terminal events onto the session controller.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is one display refresh. Gen ties it to the loop that asked for
// it; frames from a loop stopped by Hide are dropped.
type FrameMsg struct {
	Time time.Time
	Gen  int
}

// frameCmd returns a Bubble Tea command that delivers the next frame at the specified rate.
func frameCmd(fps, gen int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, Gen: gen}
	})
}
