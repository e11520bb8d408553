package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Backgrounds
		Background:     "#121212",
		CardBackground: "#1C1C1C",
		ImagePaneBg:    "#262626",

		// Semantic
		Like: "#FFFFFF",
		Nope: "#FFFFFF",

		// UI elements
		CardBorder: "#585858",
		BadgeFg:    "#121212",
		BadgeBg:    "#D0D0D0",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status bar
		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#D0D0D0",
	}
}
