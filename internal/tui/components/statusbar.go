package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar draws the bottom bar: deck name and progress on the
// left, the most recent event (swipe, completion) on the right.
func RenderStatusBar(width int, deckName string, index, total int, event string) string {
	left := fmt.Sprintf("%s  %d/%d", deckName, index, total)

	gap := width - lipgloss.Width(left) - lipgloss.Width(event) - 2
	if gap < 1 {
		gap = 1
	}

	return StatusBarStyle.Width(width).Render(
		left + lipgloss.NewStyle().Width(gap).Render("") + event,
	)
}
