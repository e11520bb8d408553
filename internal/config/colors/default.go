package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Backgrounds
		Background:     "#1C1C1C",
		CardBackground: "#262626",
		ImagePaneBg:    "#303030",

		// Semantic
		Like: "#5FD75F",
		Nope: "#FF5F5F",

		// UI elements
		CardBorder: "#585858",
		BadgeFg:    "#1C1C1C",
		BadgeBg:    "#FFD700",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status bar
		StatusBarBg:   "#874BFD", // Matches accent
		StatusBarText: "#D0D0D0", // Matches normal text
	}
}
