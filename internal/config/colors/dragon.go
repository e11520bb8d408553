package colors

// Kanagawa Dragon palette, trimmed to the colors this scheme uses
var palette = struct {
	dragonBlack1 string
	dragonBlack3 string
	dragonBlack4 string
	dragonBlack6 string
	dragonWhite  string
	dragonAsh    string
	dragonViolet string
	dragonGreen2 string
	dragonRed    string
	dragonBlue2  string
	roninYellow  string
}{
	dragonBlack1: "#12120F",
	dragonBlack3: "#181616",
	dragonBlack4: "#282727",
	dragonBlack6: "#625E5A",
	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonViolet: "#8992A7",
	dragonGreen2: "#8A9A7B",
	dragonRed:    "#C4746E",
	dragonBlue2:  "#8BA4B0",
	roninYellow:  "#FF9E3B",
}

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		// Primary accent color
		Accent: palette.dragonViolet,

		// Backgrounds
		Background:     palette.dragonBlack1,
		CardBackground: palette.dragonBlack3,
		ImagePaneBg:    palette.dragonBlack4,

		// Semantic colors
		Like: palette.dragonGreen2,
		Nope: palette.dragonRed,

		// UI element colors
		CardBorder: palette.dragonBlack6,
		BadgeFg:    palette.dragonBlack1,
		BadgeBg:    palette.roninYellow,

		// Text colors
		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		// Status bar
		StatusBarBg:   palette.dragonViolet, // Matches accent
		StatusBarText: palette.dragonWhite,  // Matches normal text
	}
}
