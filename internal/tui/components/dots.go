package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swipedeck/internal/tui/theme"
)

// RenderDots renders the carousel position indicator: one dot per image,
// the active one filled with the accent color. Cards with a single image
// (or none) get no indicator at all.
func RenderDots(count, active int) string {
	if count <= 1 {
		return ""
	}

	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	idleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	dots := make([]string, count)
	for i := range dots {
		if i == active {
			dots[i] = activeStyle.Render("●")
		} else {
			dots[i] = idleStyle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
