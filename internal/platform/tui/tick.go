// Package tui is the terminal frontend of the garden: a Bubble Tea model
// over a garden.Session, the leaderboard screen and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-garden/internal/core"
)

// TickMsg is sent to trigger a simulation step.
type TickMsg time.Time

// flashDurationMs is how long a status message stays on screen.
const flashDurationMs = 1500

// tickCmd schedules the next frame at the configured tick rate. Each frame
// advances the session by a fixed TickMs so replays stay deterministic.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	interval := time.Duration(cfg.TickMs() * float64(time.Millisecond))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
