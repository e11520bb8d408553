package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"swipedeck/internal/tui/components"
)

// View renders the current application state
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(footer)

	var body string
	if m.controller.Exhausted() {
		msg := components.ExhaustedStyle.Render("Deck complete. No more cards.")
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, msg)
	} else {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Left, lipgloss.Top, m.renderCard())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// renderCard draws the card in play at its dragged position, tilted and
// faded by the current offset.
func (m Model) renderCard() string {
	card, ok := m.controller.Current()
	if !ok {
		return ""
	}

	tracker := m.controller.Tracker()
	props := components.CardProps{
		Card:        card,
		ImageCursor: m.controller.Pager().Cursor(),
		Opacity:     tracker.CardOpacity(),
		LikeOpacity: tracker.LikeOpacity(),
		NopeOpacity: tracker.NopeOpacity(),
		LikeLabel:   m.config.Swipe.LikeLabel,
		NopeLabel:   m.config.Swipe.NopeLabel,
		RenderBody:  m.hooks.RenderBody,
		RenderImage: m.hooks.RenderImage,
	}

	block := components.RenderCard(props)
	block = components.TiltBlock(block, tracker.Rotation())

	left := m.cardLeft()
	top := m.cardTop()
	if left < 0 {
		block = clipLeft(block, -left)
		left = 0
	}

	pad := lipgloss.NewStyle().MarginLeft(left).MarginTop(top)
	return pad.Render(block)
}

func (m Model) renderFooter() string {
	index := m.controller.Index()
	if !m.controller.Exhausted() {
		index++ // show 1-based position while a card is in play
	}
	bar := components.RenderStatusBar(m.width, m.deckName, index, m.controller.Len(), m.status)
	return lipgloss.JoinVertical(lipgloss.Left, m.help.View(m.keys), bar)
}

// cardLeft is the screen column of the card's left border, shifted
// horizontally by the drag.
func (m Model) cardLeft() int {
	centered := (m.width - (components.CardWidth + 2)) / 2
	shift := int(math.Round(m.controller.Tracker().Offset() / m.config.Swipe.DragScale))
	return centered + shift
}

func (m Model) cardTop() int {
	top := (m.height - (components.CardHeight + 2) - 2) / 2
	if top < 0 {
		top = 0
	}
	return top
}

// inImagePane reports whether a screen cell falls inside the card's
// image carousel area, used to tell pager clicks from drags.
func (m Model) inImagePane(x, y int) bool {
	left := m.cardLeft()
	top := m.cardTop()

	// Rows occupied by the image pane: border row, stamps row, then the pane
	paneTop := top + 2
	paneBottom := paneTop + components.ImagePaneHeight - 1
	return x > left && x <= left+components.CardWidth &&
		y >= paneTop && y <= paneBottom
}

// imageClickFraction maps a click column to its horizontal position
// within the card, 0 at the left edge and 1 at the right.
func (m Model) imageClickFraction(x int) float64 {
	f := float64(x-m.cardLeft()-1) / float64(components.CardWidth)
	return math.Max(0, math.Min(1, f))
}

// clipLeft trims n columns from every line so a card sliding off the left
// edge doesn't wrap.
func clipLeft(block string, n int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = ansi.TruncateLeft(line, n, "")
	}
	return strings.Join(lines, "\n")
}
