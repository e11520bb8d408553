// Package deck sequences a session over an ordered set of cards: one card is
// in play at a time, a commit slides it out and advances the cursor after a
// settle delay, and exhausting the deck is terminal.
package deck

import (
	"time"

	"swipedeck/internal/gesture"
	"swipedeck/internal/models"
)

// DefaultSettleDelay is the window between a commit and the cursor actually
// advancing, reserved for the exit animation.
const DefaultSettleDelay = 300 * time.Millisecond

// Options is the public configuration surface of the component.
type Options struct {
	// Cards is the deck for this session, read-only once handed over
	Cards []models.Card

	// Threshold is the drag distance a release must exceed to commit.
	// Zero means gesture.DefaultThreshold.
	Threshold float64

	// SettleDelay overrides DefaultSettleDelay when positive
	SettleDelay time.Duration

	// OnSwipe fires synchronously at the moment of commit, before the exit
	// animation, once per card.
	OnSwipe func(cardID string, dir models.Direction)

	// OnComplete fires exactly once, when the cursor first reaches the end
	// of a non-empty deck.
	OnComplete func()
}

// SettleToken identifies one scheduled exit settlement. Settle ignores
// tokens from a superseded commit, so a stale timer firing after teardown or
// reuse cannot advance the deck twice.
type SettleToken struct {
	gen int
}

// Controller is the deck state machine. It is single-threaded by contract:
// all transitions happen on the caller's event loop.
//
// States: idle (card in play, no pending exit), exiting (commit issued,
// waiting out the settle delay), exhausted (terminal, no current card).
type Controller struct {
	cards       []models.Card
	index       int
	exiting     bool
	pendingExit models.Direction
	settleGen   int
	settleDelay time.Duration
	completed   bool

	tracker *gesture.Tracker
	pager   *Pager

	onSwipe    func(cardID string, dir models.Direction)
	onComplete func()
}

// New builds a controller over the given deck. An empty deck constructs
// directly into the exhausted state and never announces completion, since no
// card was ever shown.
func New(opts Options) *Controller {
	delay := opts.SettleDelay
	if delay <= 0 {
		delay = DefaultSettleDelay
	}

	c := &Controller{
		cards:       opts.Cards,
		settleDelay: delay,
		tracker:     gesture.NewTracker(opts.Threshold),
		pager:       &Pager{},
		onSwipe:     opts.OnSwipe,
		onComplete:  opts.OnComplete,
	}

	if len(c.cards) == 0 {
		// Vacuously exhausted; suppress OnComplete
		c.completed = true
	} else {
		c.pager.ResetFor(len(c.cards[0].Images))
	}

	return c
}

// Current returns the card in play, or false once the deck is exhausted
func (c *Controller) Current() (models.Card, bool) {
	if c.Exhausted() {
		return models.Card{}, false
	}
	return c.cards[c.index], true
}

// Index returns the 0-based deck cursor. It only ever moves forward, one
// card per commit, and equals Len once the deck is exhausted.
func (c *Controller) Index() int {
	return c.index
}

// Len returns the deck size
func (c *Controller) Len() int {
	return len(c.cards)
}

// Exhausted reports whether every card has been swiped
func (c *Controller) Exhausted() bool {
	return c.index >= len(c.cards)
}

// Exiting reports whether a committed card is still animating out
func (c *Controller) Exiting() bool {
	return c.exiting
}

// PendingExit returns the direction of the in-flight exit, if any
func (c *Controller) PendingExit() (models.Direction, bool) {
	return c.pendingExit, c.exiting
}

// SettleDelay returns the configured commit-to-advance window
func (c *Controller) SettleDelay() time.Duration {
	return c.settleDelay
}

// Tracker returns the drag tracker for the card in play
func (c *Controller) Tracker() *gesture.Tracker {
	return c.tracker
}

// Pager returns the image pager for the card in play
func (c *Controller) Pager() *Pager {
	return c.pager
}

// Release converts the current drag offset into intent: past the threshold
// it commits in the drag's direction, otherwise the card snaps back. On
// snap-back nothing changes here - no callback, no cursor movement - and the
// caller animates the offset home (or calls Tracker().Reset() directly).
func (c *Controller) Release() (gesture.Decision, SettleToken) {
	d := c.tracker.Release()
	if d == gesture.SnapBack {
		return d, SettleToken{}
	}

	tok, ok := c.Commit(d.Direction())
	if !ok {
		return gesture.SnapBack, SettleToken{}
	}
	return d, tok
}

// Commit irrevocably dismisses the card in play toward dir, fires OnSwipe,
// and hands back the token the caller must feed to Settle after the settle
// delay. Commits are refused while a previous card is still exiting and
// once the deck is exhausted.
func (c *Controller) Commit(dir models.Direction) (SettleToken, bool) {
	if c.exiting || c.Exhausted() {
		return SettleToken{}, false
	}

	c.exiting = true
	c.pendingExit = dir
	c.settleGen++

	if c.onSwipe != nil {
		c.onSwipe(c.cards[c.index].ID, dir)
	}

	return SettleToken{gen: c.settleGen}, true
}

// Settle finishes an exit: the cursor advances, the drag offset and image
// pager reset for the next card, and on the last card OnComplete fires.
// Stale or zero tokens are ignored and report false.
func (c *Controller) Settle(tok SettleToken) bool {
	if !c.exiting || tok.gen != c.settleGen {
		return false
	}

	c.exiting = false
	c.pendingExit = ""
	c.index++
	c.tracker.Reset()

	if c.Exhausted() {
		if !c.completed {
			c.completed = true
			if c.onComplete != nil {
				c.onComplete()
			}
		}
		return true
	}

	c.pager.ResetFor(len(c.cards[c.index].Images))
	return true
}
