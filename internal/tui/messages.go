package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"swipedeck/internal/deck"
)

// animFPS is the frame rate of spring animations
const animFPS = 60

// settleMsg arrives when a committed card's settle delay has elapsed
type settleMsg struct {
	token deck.SettleToken
}

// frameMsg drives one step of the spring animation
type frameMsg time.Time

// settleCmd schedules the deck advance at the end of the settle window.
// The token makes a late tick harmless: the controller ignores tokens
// from superseded commits.
func settleCmd(delay time.Duration, token deck.SettleToken) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return settleMsg{token: token}
	})
}

// frameCmd schedules the next animation frame
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
