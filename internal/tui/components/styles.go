// Package components provides the visual pieces of the swipe view.
// Call InitStyles() after theme.Init() to initialize all style variables.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"swipedeck/internal/tui/theme"
)

// Cached styles for the parts whose colors never change mid-session.
// Card styles are built per frame instead: their colors fade with the drag.
var (
	// TitleStyle defines the appearance of the card title line
	TitleStyle lipgloss.Style

	// SubtleStyle defines muted/placeholder text
	SubtleStyle lipgloss.Style

	// BadgeStyle defines the corner badge chip
	BadgeStyle lipgloss.Style

	// StatusBarStyle defines the bottom status bar
	StatusBarStyle lipgloss.Style

	// ExhaustedStyle defines the end-of-deck message box
	ExhaustedStyle lipgloss.Style
)

// InitStyles initializes all style variables from the current theme
func InitStyles() {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)

	BadgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.BadgeFg)).
		Background(lipgloss.Color(theme.BadgeBg)).
		Bold(true).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg)).
		Padding(0, 1)

	ExhaustedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(1, 3)
}
