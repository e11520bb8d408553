package components

import (
	"math"
	"strings"

	"swipedeck/internal/gesture"
)

// TiltBlock fakes card rotation in a cell grid by shearing the block:
// under a positive (clockwise) tilt the top rows lean right, under a
// negative tilt the bottom rows do. The whole block only ever gains left
// padding, so the caller can still position it freely.
func TiltBlock(block string, rotationDegrees float64) string {
	if rotationDegrees == 0 {
		return block
	}

	lines := strings.Split(block, "\n")
	n := len(lines)
	if n < 2 {
		return block
	}

	shear := rotationDegrees / gesture.MaxTilt * maxShearCells
	lean := math.Abs(shear)

	var b strings.Builder
	for i, line := range lines {
		// 0 at one edge, lean at the other
		var offset float64
		if shear > 0 {
			offset = lean * float64(n-1-i) / float64(n-1)
		} else {
			offset = lean * float64(i) / float64(n-1)
		}

		b.WriteString(strings.Repeat(" ", int(math.Round(offset))))
		b.WriteString(line)
		if i < n-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
