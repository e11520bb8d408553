package theme

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"swipedeck/internal/config/colors"
)

// Colors holds the current theme colors, initialized by Init
var (
	Accent        string
	Background    string
	CardBg        string
	CardBorder    string
	ImagePaneBg   string
	Like          string
	Nope          string
	BadgeFg       string
	BadgeBg       string
	Title         string
	Subtle        string
	Normal        string
	StatusBarBg   string
	StatusBarText string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	Background = scheme.Background
	CardBg = scheme.CardBackground
	CardBorder = scheme.CardBorder
	ImagePaneBg = scheme.ImagePaneBg
	Like = scheme.Like
	Nope = scheme.Nope
	BadgeFg = scheme.BadgeFg
	BadgeBg = scheme.BadgeBg
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
}

// Fade blends a color toward the background by the given opacity: 1 keeps
// the color, 0 disappears into the background. Terminals have no alpha
// channel, so opacity is approximated in Lab space.
func Fade(hex string, opacity float64) string {
	if opacity >= 1 {
		return hex
	}
	if opacity < 0 {
		opacity = 0
	}

	fg, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	bg, err := colorful.Hex(Background)
	if err != nil {
		return hex
	}

	return bg.BlendLab(fg, opacity).Hex()
}
