// Package gesture turns a continuous horizontal drag offset into the derived
// visual signals for the top card (tilt, fade, stamp opacities) and decides,
// on release, whether the drag commits a swipe or snaps back.
package gesture

// Interpolation control points for the derived signals. The drag offset is
// measured in abstract gesture units; the tui layer scales terminal cells
// into units before feeding the tracker.
const (
	// tiltRange is the offset at which the card reaches its maximum tilt
	tiltRange = 200.0

	// MaxTilt is the tilt at ±tiltRange
	MaxTilt = 15.0

	// fadeStart is the offset where the card begins fading out
	fadeStart = 100.0

	// fadeEnd is the offset where the fade bottoms out
	fadeEnd = 200.0

	// minCardOpacity is the opacity at and beyond fadeEnd
	minCardOpacity = 0.5

	// DefaultThreshold is the drag distance a release must exceed to commit
	DefaultThreshold = 100.0
)

// Tracker owns the live drag offset for the top card. All derived signals
// are pure functions of the offset and the threshold; they hold no state of
// their own and recompute on every read.
type Tracker struct {
	offset    float64
	threshold float64
}

// NewTracker creates a tracker with the given commit threshold.
// A zero or negative threshold falls back to DefaultThreshold.
func NewTracker(threshold float64) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Tracker{threshold: threshold}
}

// Offset returns the current drag offset in gesture units
func (t *Tracker) Offset() float64 {
	return t.offset
}

// SetOffset replaces the drag offset. The offset is intentionally not
// clamped; the derived signals clamp at their own domain edges instead.
func (t *Tracker) SetOffset(x float64) {
	t.offset = x
}

// MoveBy shifts the drag offset by a delta
func (t *Tracker) MoveBy(dx float64) {
	t.offset += dx
}

// Reset returns the offset to the rest position. Called when a card settles,
// either after snapping back or once the next card takes over.
func (t *Tracker) Reset() {
	t.offset = 0
}

// Threshold returns the commit threshold the tracker was built with
func (t *Tracker) Threshold() float64 {
	return t.threshold
}

// Rotation maps the offset to a card tilt in degrees: ±tiltRange units of
// drag produce ±MaxTilt, clamped beyond that.
func (t *Tracker) Rotation() float64 {
	return lerp(t.offset, -tiltRange, tiltRange, -MaxTilt, MaxTilt)
}

// CardOpacity fades the card at the extremes of a drag: full opacity within
// ±fadeStart, easing down to minCardOpacity at ±fadeEnd.
func (t *Tracker) CardOpacity() float64 {
	x := t.offset
	if x < 0 {
		x = -x
	}
	return lerp(x, fadeStart, fadeEnd, 1, minCardOpacity)
}

// LikeOpacity is the visibility of the accept stamp: 0 at or left of rest,
// rising linearly to 1 at the commit threshold.
func (t *Tracker) LikeOpacity() float64 {
	return lerp(t.offset, 0, t.threshold, 0, 1)
}

// NopeOpacity is the visibility of the reject stamp: 1 at or beyond the
// negative threshold, falling linearly to 0 at rest.
func (t *Tracker) NopeOpacity() float64 {
	return lerp(t.offset, -t.threshold, 0, 1, 0)
}

// lerp linearly maps x from [x0, x1] to [y0, y1], clamping outside the
// domain to the nearest endpoint.
func lerp(x, x0, x1, y0, y1 float64) float64 {
	if x <= x0 {
		return y0
	}
	if x >= x1 {
		return y1
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
