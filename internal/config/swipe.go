package config

// SwipeSettings tunes the gesture and the commit sequencing.
// All distances are in gesture units; mouse motion is converted at
// DragScale units per terminal cell.
type SwipeSettings struct {
	// Threshold is the drag distance a release must exceed to commit
	Threshold float64 `yaml:"threshold"`

	// SettleMs is the commit-to-advance window in milliseconds
	SettleMs int `yaml:"settle_ms"`

	// DragScale converts horizontal mouse movement (cells) into gesture units
	DragScale float64 `yaml:"drag_scale"`

	// LikeLabel is the stamp shown while dragging right
	LikeLabel string `yaml:"like_label"`

	// NopeLabel is the stamp shown while dragging left
	NopeLabel string `yaml:"nope_label"`
}

// DefaultSwipeSettings returns the stock gesture tuning
func DefaultSwipeSettings() SwipeSettings {
	return SwipeSettings{
		Threshold: 100,
		SettleMs:  300,
		DragScale: 8,
		LikeLabel: "YES",
		NopeLabel: "NAH",
	}
}

// applyDefaults fills in missing swipe settings with defaults
func (s *SwipeSettings) applyDefaults() {
	defaults := DefaultSwipeSettings()

	if s.Threshold <= 0 {
		s.Threshold = defaults.Threshold
	}
	if s.SettleMs <= 0 {
		s.SettleMs = defaults.SettleMs
	}
	if s.DragScale <= 0 {
		s.DragScale = defaults.DragScale
	}
	if s.LikeLabel == "" {
		s.LikeLabel = defaults.LikeLabel
	}
	if s.NopeLabel == "" {
		s.NopeLabel = defaults.NopeLabel
	}
}
