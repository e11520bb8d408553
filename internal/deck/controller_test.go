package deck

import (
	"fmt"
	"testing"

	"swipedeck/internal/gesture"
	"swipedeck/internal/models"
)

// testDeck builds n cards with IDs card-0..card-n-1
func testDeck(n int) []models.Card {
	cards := make([]models.Card, n)
	for i := range cards {
		cards[i] = models.Card{
			ID:    fmt.Sprintf("card-%d", i),
			Title: fmt.Sprintf("Card %d", i),
		}
	}
	return cards
}

// swipeRecorder captures callback invocations for assertions
type swipeRecorder struct {
	swipes    []string // "id/direction"
	completes int
}

func (r *swipeRecorder) options(cards []models.Card) Options {
	return Options{
		Cards: cards,
		OnSwipe: func(cardID string, dir models.Direction) {
			r.swipes = append(r.swipes, cardID+"/"+dir.String())
		},
		OnComplete: func() {
			r.completes++
		},
	}
}

func TestController_CommitAdvancesThroughDeck(t *testing.T) {
	// After N commits: index == N, OnComplete fired once, OnSwipe fired N
	// times with matching directions.
	const n = 4
	rec := &swipeRecorder{}
	c := New(rec.options(testDeck(n)))

	dirs := []models.Direction{
		models.DirectionRight,
		models.DirectionLeft,
		models.DirectionLeft,
		models.DirectionRight,
	}

	for i, dir := range dirs {
		tok, ok := c.Commit(dir)
		if !ok {
			t.Fatalf("Commit %d refused", i)
		}
		if !c.Exiting() {
			t.Fatalf("Commit %d: controller not exiting", i)
		}
		if !c.Settle(tok) {
			t.Fatalf("Settle %d refused", i)
		}
	}

	if c.Index() != n {
		t.Errorf("Index after %d commits = %d, want %d", n, c.Index(), n)
	}
	if !c.Exhausted() {
		t.Error("controller should be exhausted")
	}
	if rec.completes != 1 {
		t.Errorf("OnComplete fired %d times, want 1", rec.completes)
	}
	if len(rec.swipes) != n {
		t.Fatalf("OnSwipe fired %d times, want %d", len(rec.swipes), n)
	}

	want := []string{"card-0/right", "card-1/left", "card-2/left", "card-3/right"}
	for i, w := range want {
		if rec.swipes[i] != w {
			t.Errorf("swipe %d = %q, want %q", i, rec.swipes[i], w)
		}
	}
}

func TestController_OnSwipeFiresBeforeSettle(t *testing.T) {
	// The swipe callback belongs to the commit, not to the settle
	fired := false
	c := New(Options{
		Cards:   testDeck(1),
		OnSwipe: func(string, models.Direction) { fired = true },
	})

	tok, ok := c.Commit(models.DirectionRight)
	if !ok {
		t.Fatal("Commit refused")
	}
	if !fired {
		t.Error("OnSwipe did not fire at commit time")
	}
	if c.Index() != 0 {
		t.Errorf("Index moved before settle: %d", c.Index())
	}

	c.Settle(tok)
	if c.Index() != 1 {
		t.Errorf("Index after settle = %d, want 1", c.Index())
	}
}

func TestController_CommitRefusedWhileExiting(t *testing.T) {
	// A departing card stops accepting input; a second commit for the same
	// card must be impossible.
	rec := &swipeRecorder{}
	c := New(rec.options(testDeck(2)))

	tok, ok := c.Commit(models.DirectionRight)
	if !ok {
		t.Fatal("first Commit refused")
	}
	if _, ok := c.Commit(models.DirectionLeft); ok {
		t.Error("Commit accepted while exiting")
	}
	if len(rec.swipes) != 1 {
		t.Errorf("OnSwipe fired %d times, want 1", len(rec.swipes))
	}

	c.Settle(tok)
	if c.Index() != 1 {
		t.Errorf("Index = %d, want 1", c.Index())
	}
}

func TestController_CommitRefusedWhenExhausted(t *testing.T) {
	c := New(Options{Cards: testDeck(1)})
	tok, _ := c.Commit(models.DirectionLeft)
	c.Settle(tok)

	if _, ok := c.Commit(models.DirectionRight); ok {
		t.Error("Commit accepted on exhausted deck")
	}
	if _, ok := c.Current(); ok {
		t.Error("Current() returned a card on exhausted deck")
	}
}

func TestController_StaleSettleTokenIgnored(t *testing.T) {
	// A timer that fires late (or twice) must not advance the deck again
	c := New(Options{Cards: testDeck(3)})

	tok, _ := c.Commit(models.DirectionRight)
	if !c.Settle(tok) {
		t.Fatal("Settle refused a live token")
	}
	if c.Settle(tok) {
		t.Error("Settle accepted an already-consumed token")
	}
	if c.Settle(SettleToken{}) {
		t.Error("Settle accepted a zero token")
	}
	if c.Index() != 1 {
		t.Errorf("Index = %d, want 1", c.Index())
	}
}

func TestController_SnapBackChangesNothing(t *testing.T) {
	rec := &swipeRecorder{}
	c := New(rec.options(testDeck(2)))

	c.Tracker().SetOffset(-50)
	d, _ := c.Release()
	if d != gesture.SnapBack {
		t.Fatalf("Release at -50 = %v, want SnapBack", d)
	}
	if c.Index() != 0 {
		t.Errorf("snap-back moved the cursor to %d", c.Index())
	}
	if c.Exiting() {
		t.Error("snap-back left the controller exiting")
	}
	if len(rec.swipes) != 0 {
		t.Errorf("snap-back fired OnSwipe %d times", len(rec.swipes))
	}
}

func TestController_ReleasePastThresholdCommits(t *testing.T) {
	rec := &swipeRecorder{}
	c := New(rec.options(testDeck(1)))

	c.Tracker().SetOffset(150)
	d, tok := c.Release()
	if d != gesture.CommitRight {
		t.Fatalf("Release at 150 = %v, want CommitRight", d)
	}
	if len(rec.swipes) != 1 || rec.swipes[0] != "card-0/right" {
		t.Errorf("swipes = %v, want [card-0/right]", rec.swipes)
	}

	c.Settle(tok)
	if c.Tracker().Offset() != 0 {
		t.Errorf("drag offset after settle = %v, want 0", c.Tracker().Offset())
	}
}

func TestController_EmptyDeck(t *testing.T) {
	// Empty deck: immediately exhausted, renders nothing, and never
	// announces completion because no card was ever shown.
	rec := &swipeRecorder{}
	c := New(rec.options(nil))

	if !c.Exhausted() {
		t.Error("empty deck should be exhausted")
	}
	if _, ok := c.Current(); ok {
		t.Error("empty deck returned a current card")
	}
	if rec.completes != 0 {
		t.Errorf("OnComplete fired %d times on empty deck, want 0", rec.completes)
	}
	if _, ok := c.Commit(models.DirectionRight); ok {
		t.Error("Commit accepted on empty deck")
	}
}

func TestController_PagerResetsOnAdvance(t *testing.T) {
	// Changing the active card always rewinds the image cursor
	cards := testDeck(2)
	cards[0].Images = []models.ImageRef{{Source: "a"}, {Source: "b"}, {Source: "c"}}
	cards[1].Images = []models.ImageRef{{Source: "x"}, {Source: "y"}}

	c := New(Options{Cards: cards})
	c.Pager().Next()
	c.Pager().Next()
	if c.Pager().Cursor() != 2 {
		t.Fatalf("pager cursor = %d, want 2", c.Pager().Cursor())
	}

	tok, _ := c.Commit(models.DirectionRight)
	c.Settle(tok)

	if c.Pager().Cursor() != 0 {
		t.Errorf("pager cursor after advance = %d, want 0", c.Pager().Cursor())
	}
	if c.Pager().Count() != 2 {
		t.Errorf("pager count after advance = %d, want 2", c.Pager().Count())
	}
}

// TestController_TwoCardScenario walks the full interaction from the design
// conversation: deck [A,B], drag A right past the threshold, snap B back
// from a shallow drag, then dismiss B with an explicit direction.
func TestController_TwoCardScenario(t *testing.T) {
	cards := []models.Card{
		{ID: "A", Title: "A", Images: []models.ImageRef{{Source: "1"}, {Source: "2"}}},
		{ID: "B", Title: "B"},
	}
	rec := &swipeRecorder{}
	c := New(rec.options(cards))

	// Drag A to 150 and release: commits right immediately
	c.Pager().Next()
	c.Tracker().SetOffset(150)
	d, tok := c.Release()
	if d != gesture.CommitRight {
		t.Fatalf("Release = %v, want CommitRight", d)
	}
	if len(rec.swipes) != 1 || rec.swipes[0] != "A/right" {
		t.Fatalf("swipes = %v, want [A/right]", rec.swipes)
	}

	// After the settle delay B is current, image cursor rewound
	c.Settle(tok)
	if c.Index() != 1 {
		t.Fatalf("Index = %d, want 1", c.Index())
	}
	if cur, _ := c.Current(); cur.ID != "B" {
		t.Fatalf("current card = %q, want B", cur.ID)
	}
	if c.Pager().Cursor() != 0 {
		t.Errorf("image cursor = %d, want 0", c.Pager().Cursor())
	}

	// Drag B to -50 and release: snap-back, nothing fires
	c.Tracker().SetOffset(-50)
	if d, _ := c.Release(); d != gesture.SnapBack {
		t.Fatalf("Release = %v, want SnapBack", d)
	}
	if c.Index() != 1 || len(rec.swipes) != 1 {
		t.Fatal("snap-back changed state")
	}
	c.Tracker().Reset()

	// Dismiss B via the explicit-direction path (the nope button)
	tok, ok := c.Commit(models.DirectionLeft)
	if !ok {
		t.Fatal("Commit refused")
	}
	if rec.swipes[1] != "B/left" {
		t.Errorf("swipes[1] = %q, want B/left", rec.swipes[1])
	}
	c.Settle(tok)

	if c.Index() != 2 {
		t.Errorf("Index = %d, want 2", c.Index())
	}
	if rec.completes != 1 {
		t.Errorf("OnComplete fired %d times, want 1", rec.completes)
	}
}

func TestController_DefaultSettleDelay(t *testing.T) {
	c := New(Options{Cards: testDeck(1)})
	if c.SettleDelay() != DefaultSettleDelay {
		t.Errorf("SettleDelay = %v, want %v", c.SettleDelay(), DefaultSettleDelay)
	}
}
