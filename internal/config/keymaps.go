package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Swiping
	SwipeLeft  string `yaml:"swipe_left"`
	SwipeRight string `yaml:"swipe_right"`

	// Image paging
	NextImage string `yaml:"next_image"`
	PrevImage string `yaml:"prev_image"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		SwipeLeft:  "h",
		SwipeRight: "l",
		NextImage:  "n",
		PrevImage:  "p",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.SwipeLeft == "" {
		k.SwipeLeft = defaults.SwipeLeft
	}
	if k.SwipeRight == "" {
		k.SwipeRight = defaults.SwipeRight
	}
	if k.NextImage == "" {
		k.NextImage = defaults.NextImage
	}
	if k.PrevImage == "" {
		k.PrevImage = defaults.PrevImage
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
