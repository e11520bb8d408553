package models

// Direction is the side a card leaves the deck on.
type Direction string

const (
	// DirectionLeft is the reject/"NAH" side
	DirectionLeft Direction = "left"

	// DirectionRight is the accept/"YES" side
	DirectionRight Direction = "right"
)

// Sign returns -1 for left and +1 for right, the multiplier used when
// sliding a committed card off-screen.
func (d Direction) Sign() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// String implements fmt.Stringer
func (d Direction) String() string {
	return string(d)
}
