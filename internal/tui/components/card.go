package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swipedeck/internal/models"
	"swipedeck/internal/tui/theme"
)

// CardProps carries everything needed to draw the card in play for one
// frame. Opacities come straight from the gesture tracker.
type CardProps struct {
	Card        models.Card
	ImageCursor int

	// Opacity fades the whole card at drag extremes (1 at rest)
	Opacity float64

	// LikeOpacity / NopeOpacity drive the directional stamps
	LikeOpacity float64
	NopeOpacity float64
	LikeLabel   string
	NopeLabel   string

	// RenderBody overrides the default title/subtitle/description layout
	RenderBody func(models.Card) string

	// RenderImage overrides the default image pane content
	RenderImage func(source, alt string) string
}

// RenderCard renders the card in play as a fixed-size bordered block.
// Styles are rebuilt on every call because the drag fades their colors.
func RenderCard(props CardProps) string {
	stamps := renderStamps(props)
	image := renderImagePane(props)
	dots := lipgloss.PlaceHorizontal(CardWidth, lipgloss.Center,
		RenderDots(len(props.Card.Images), props.ImageCursor))

	var body string
	if props.RenderBody != nil {
		body = props.RenderBody(props.Card)
	} else {
		body = renderDefaultBody(props)
	}

	bodyHeight := CardHeight - ImagePaneHeight - 2 // stamps + dots rows
	body = lipgloss.NewStyle().
		Width(CardWidth).
		MaxHeight(bodyHeight).
		Render(body)

	content := lipgloss.JoinVertical(lipgloss.Left, stamps, image, dots, body)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Fade(borderColor(props), props.Opacity))).
		Width(CardWidth).
		Height(CardHeight)

	return border.Render(content)
}

// borderColor tints the card frame toward the decision the drag is
// leaning into once a stamp is more than half visible.
func borderColor(props CardProps) string {
	switch {
	case props.LikeOpacity > 0.5:
		return theme.Like
	case props.NopeOpacity > 0.5:
		return theme.Nope
	default:
		return theme.CardBorder
	}
}

// renderStamps draws the directional labels on one row: the accept stamp
// on the left, the reject stamp on the right, each faded by its opacity.
// Invisible stamps still occupy their cells so the layout never jumps.
func renderStamps(props CardProps) string {
	like := stamp(props.LikeLabel, theme.Like, props.LikeOpacity*props.Opacity)
	nope := stamp(props.NopeLabel, theme.Nope, props.NopeOpacity*props.Opacity)

	gap := CardWidth - lipgloss.Width(like) - lipgloss.Width(nope)
	if gap < 1 {
		gap = 1
	}
	return like + strings.Repeat(" ", gap) + nope
}

func stamp(label, color string, opacity float64) string {
	text := " " + label + " "
	if opacity <= 0.05 {
		return strings.Repeat(" ", lipgloss.Width(text))
	}
	return lipgloss.NewStyle().
		Bold(true).
		Reverse(true).
		Foreground(lipgloss.Color(theme.Fade(color, opacity))).
		Render(text)
}

// renderImagePane draws the carousel area: the current image through the
// injected renderer when one is supplied, a text rendition otherwise, and
// a placeholder when the card has no images at all.
func renderImagePane(props CardProps) string {
	pane := lipgloss.NewStyle().
		Width(CardWidth).
		Height(ImagePaneHeight).
		Background(lipgloss.Color(theme.Fade(theme.ImagePaneBg, props.Opacity))).
		Align(lipgloss.Center, lipgloss.Center)

	if len(props.Card.Images) == 0 {
		return pane.Render(SubtleStyle.Render("no images"))
	}

	img := props.Card.Images[props.ImageCursor]
	if props.RenderImage != nil {
		return pane.Render(props.RenderImage(img.Source, img.Alt))
	}

	alt := img.Alt
	if alt == "" {
		alt = img.Source
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Fade(theme.Normal, props.Opacity))).
			Render(alt),
		SubtleStyle.Render(img.Source),
	)
	return pane.Render(content)
}

// renderDefaultBody lays out title, badge, subtitle, and the markdown
// description.
func renderDefaultBody(props CardProps) string {
	card := props.Card

	title := card.Title
	if len(title) > cardTitleMaxLength {
		title = title[:cardTitleMaxLength] + "…"
	}
	titleLine := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Fade(theme.Title, props.Opacity))).
		Render(" " + title)

	if card.Badge != "" {
		badge := BadgeStyle.Render(card.Badge)
		gap := CardWidth - lipgloss.Width(titleLine) - lipgloss.Width(badge) - 1
		if gap > 0 {
			titleLine += strings.Repeat(" ", gap) + badge
		}
	}

	lines := []string{titleLine}
	if card.Subtitle != "" {
		lines = append(lines, SubtleStyle.Render(" "+card.Subtitle))
	}
	lines = append(lines, RenderDescription(card.Description, CardWidth-2))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
