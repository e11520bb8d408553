package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "dragon")
	Preset string `yaml:"preset"`

	// Primary accent color (titles, active indicator dot)
	Accent string `yaml:"accent"`

	// Background colors
	Background     string `yaml:"background"`
	CardBackground string `yaml:"card_background"`
	ImagePaneBg    string `yaml:"image_pane_bg"`

	// Semantic colors
	Like string `yaml:"like"` // Green - accept stamp and border flash
	Nope string `yaml:"nope"` // Red - reject stamp and border flash

	// UI element colors
	CardBorder string `yaml:"card_border"`
	BadgeFg    string `yaml:"badge_fg"`
	BadgeBg    string `yaml:"badge_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// If preset is specified, loads that preset first, then overrides with
// custom values.
func (c *ColorScheme) ApplyDefaults() {
	// Get the base preset
	preset := GetPreset(c.Preset)

	// Override with custom values (only if not empty)
	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Background == "" {
		c.Background = preset.Background
	}
	if c.CardBackground == "" {
		c.CardBackground = preset.CardBackground
	}
	if c.ImagePaneBg == "" {
		c.ImagePaneBg = preset.ImagePaneBg
	}
	if c.Like == "" {
		c.Like = preset.Like
	}
	if c.Nope == "" {
		c.Nope = preset.Nope
	}
	if c.CardBorder == "" {
		c.CardBorder = preset.CardBorder
	}
	if c.BadgeFg == "" {
		c.BadgeFg = preset.BadgeFg
	}
	if c.BadgeBg == "" {
		c.BadgeBg = preset.BadgeBg
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.StatusBarBg == "" {
		c.StatusBarBg = preset.StatusBarBg
	}
	if c.StatusBarText == "" {
		c.StatusBarText = preset.StatusBarText
	}
}

// MergeFrom copies non-empty values from other into this scheme.
// Used for theme file overlays, which win over the config file.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Background != "" {
		c.Background = other.Background
	}
	if other.CardBackground != "" {
		c.CardBackground = other.CardBackground
	}
	if other.ImagePaneBg != "" {
		c.ImagePaneBg = other.ImagePaneBg
	}
	if other.Like != "" {
		c.Like = other.Like
	}
	if other.Nope != "" {
		c.Nope = other.Nope
	}
	if other.CardBorder != "" {
		c.CardBorder = other.CardBorder
	}
	if other.BadgeFg != "" {
		c.BadgeFg = other.BadgeFg
	}
	if other.BadgeBg != "" {
		c.BadgeBg = other.BadgeBg
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.StatusBarBg != "" {
		c.StatusBarBg = other.StatusBarBg
	}
	if other.StatusBarText != "" {
		c.StatusBarText = other.StatusBarText
	}
}
