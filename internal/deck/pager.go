package deck

// Pager cycles through the image carousel nested inside the card in play.
// Pure per-card state: it resets whenever the deck cursor moves and calls
// nothing back.
type Pager struct {
	cursor int
	count  int
}

// ResetFor rewinds the cursor for a card carrying count images
func (p *Pager) ResetFor(count int) {
	p.cursor = 0
	p.count = count
}

// Cursor returns the index of the visible image. Meaningless (always 0)
// when the card has no images.
func (p *Pager) Cursor() int {
	return p.cursor
}

// Count returns how many images the card in play has
func (p *Pager) Count() int {
	return p.count
}

// Advance pages from a click at the given horizontal fraction of the image
// area: the right half moves forward, the left half moves back. Cards with
// one image or none don't page.
func (p *Pager) Advance(clickXFraction float64) {
	if clickXFraction >= 0.5 {
		p.Next()
	} else {
		p.Prev()
	}
}

// Next moves to the following image, wrapping past the last one
func (p *Pager) Next() {
	if p.count <= 1 {
		return
	}
	p.cursor = (p.cursor + 1) % p.count
}

// Prev moves to the previous image, wrapping before the first one
func (p *Pager) Prev() {
	if p.count <= 1 {
		return
	}
	p.cursor = (p.cursor - 1 + p.count) % p.count
}
