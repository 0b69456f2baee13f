// Package tui provides the Bubble Tea integration for the breaker
// platform: the terminal frame loop, key-to-movement mapping, and
// rendering of simulation states. The simulation core never sees any
// of this; it only receives movement intents and elapsed milliseconds.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one driver frame. It carries the wall
// clock so the model can measure real elapsed time between frames and
// hand the core an honest delta.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that emits frame messages at
// the given nominal rate. The simulation does not depend on this
// cadence; late frames simply carry a bigger delta.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
