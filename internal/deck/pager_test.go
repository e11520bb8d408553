package deck

import "testing"

func TestPager_FullCycleReturnsToStart(t *testing.T) {
	// L consecutive forward pages from cursor 0 land back on 0
	for _, length := range []int{2, 3, 5} {
		p := &Pager{}
		p.ResetFor(length)

		for i := 0; i < length; i++ {
			p.Next()
		}
		if p.Cursor() != 0 {
			t.Errorf("cursor after %d Next calls = %d, want 0", length, p.Cursor())
		}
	}
}

func TestPager_PrevWrapsToLast(t *testing.T) {
	p := &Pager{}
	p.ResetFor(4)

	p.Prev()
	if p.Cursor() != 3 {
		t.Errorf("cursor after Prev from 0 = %d, want 3", p.Cursor())
	}
}

func TestPager_SingleImageNeverPages(t *testing.T) {
	for _, count := range []int{0, 1} {
		p := &Pager{}
		p.ResetFor(count)

		p.Next()
		p.Prev()
		p.Advance(0.9)
		p.Advance(0.1)

		if p.Cursor() != 0 {
			t.Errorf("cursor with %d images = %d, want 0", count, p.Cursor())
		}
	}
}

func TestPager_AdvanceByClickHalves(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		want     int
	}{
		{"right half pages forward", 0.75, 1},
		{"left half pages back", 0.25, 2},
		{"midpoint counts as right", 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pager{}
			p.ResetFor(3)
			p.Advance(tt.fraction)
			if p.Cursor() != tt.want {
				t.Errorf("cursor = %d, want %d", p.Cursor(), tt.want)
			}
		})
	}
}

func TestPager_ResetForRewinds(t *testing.T) {
	p := &Pager{}
	p.ResetFor(5)
	p.Next()
	p.Next()

	p.ResetFor(2)
	if p.Cursor() != 0 {
		t.Errorf("cursor after ResetFor = %d, want 0", p.Cursor())
	}
	if p.Count() != 2 {
		t.Errorf("count after ResetFor = %d, want 2", p.Count())
	}
}
