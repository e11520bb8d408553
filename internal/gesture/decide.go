package gesture

import "swipedeck/internal/models"

// Decision is the outcome of releasing a drag.
type Decision int

const (
	// SnapBack returns the card to rest without dismissing it
	SnapBack Decision = iota

	// CommitLeft dismisses the card to the left
	CommitLeft

	// CommitRight dismisses the card to the right
	CommitRight
)

// String implements fmt.Stringer
func (d Decision) String() string {
	switch d {
	case CommitLeft:
		return "commit-left"
	case CommitRight:
		return "commit-right"
	default:
		return "snap-back"
	}
}

// Direction converts a commit decision into a swipe direction.
// Only meaningful for CommitLeft and CommitRight.
func (d Decision) Direction() models.Direction {
	if d == CommitLeft {
		return models.DirectionLeft
	}
	return models.DirectionRight
}

// Decide is the single place a drag release turns into swipe intent: the
// release offset must exceed the threshold (strictly - landing exactly on it
// snaps back) and the sign of the offset picks the direction. Button/key
// commits never pass through here; they carry an explicit direction.
func Decide(offset, threshold float64) Decision {
	switch {
	case offset > threshold:
		return CommitRight
	case offset < -threshold:
		return CommitLeft
	default:
		return SnapBack
	}
}

// Release decides the tracker's current offset against its own threshold
func (t *Tracker) Release() Decision {
	return Decide(t.offset, t.threshold)
}
