package listview

import "testing"

func uniformHeight(h float32) HeightFunc {
	return func(i int) (float32, bool) { return h, true }
}

func TestRowMetrics_OffsetInvariant(t *testing.T) {
	heights := []float32{20, 35, 10, 50, 25, 5}
	m := NewRowMetrics()
	m.EnsureValid(len(heights), 100, func(i int) (float32, bool) {
		return heights[i], true
	})

	if m.Count() != len(heights) {
		t.Fatalf("Expected count %d, got %d", len(heights), m.Count())
	}
	if m.OffsetAt(0) != 0 {
		t.Errorf("Expected offset 0 for row 0, got %f", m.OffsetAt(0))
	}

	sum := float32(0)
	for i := 0; i < m.Count(); i++ {
		if m.OffsetAt(i) != sum {
			t.Errorf("Row %d: expected offset %f, got %f", i, sum, m.OffsetAt(i))
		}
		if m.HeightAt(i) != heights[i] {
			t.Errorf("Row %d: expected height %f, got %f", i, heights[i], m.HeightAt(i))
		}
		sum += heights[i]
	}
	if m.TotalHeight() != sum {
		t.Errorf("Expected total height %f, got %f", sum, m.TotalHeight())
	}
}

func TestRowMetrics_LazyRecompute(t *testing.T) {
	calls := 0
	heightOf := func(i int) (float32, bool) {
		calls++
		return 20, true
	}

	m := NewRowMetrics()
	m.EnsureValid(10, 100, heightOf)
	if calls != 10 {
		t.Fatalf("Expected 10 height calls, got %d", calls)
	}

	// Same count and width: served from cache, no provider calls.
	m.EnsureValid(10, 100, heightOf)
	if calls != 10 {
		t.Errorf("Expected cached result, got %d extra calls", calls-10)
	}

	// Invalidate forces a full recompute.
	m.Invalidate()
	m.EnsureValid(10, 100, heightOf)
	if calls != 20 {
		t.Errorf("Expected recompute after Invalidate, got %d calls", calls)
	}
}

func TestRowMetrics_WidthChangeInvalidates(t *testing.T) {
	calls := 0
	heightOf := func(i int) (float32, bool) {
		calls++
		return 20, true
	}

	m := NewRowMetrics()
	m.EnsureValid(5, 100, heightOf)
	m.EnsureValid(5, 200, heightOf) // width changed; heights may depend on it

	if calls != 10 {
		t.Errorf("Expected recompute on width change, got %d calls", calls)
	}
}

func TestRowMetrics_CountChangeInvalidates(t *testing.T) {
	m := NewRowMetrics()
	m.EnsureValid(5, 100, uniformHeight(20))
	m.EnsureValid(7, 100, uniformHeight(20))

	if m.Count() != 7 {
		t.Errorf("Expected count 7 after growth, got %d", m.Count())
	}
	if m.TotalHeight() != 140 {
		t.Errorf("Expected total height 140, got %f", m.TotalHeight())
	}
}

func TestRowMetrics_StaleRowSkipped(t *testing.T) {
	// Row 2 no longer exists in the backing data. It must be skipped
	// without corrupting the offsets of the rows after it.
	m := NewRowMetrics()
	m.EnsureValid(5, 100, func(i int) (float32, bool) {
		if i == 2 {
			return 0, false
		}
		return 20, true
	})

	if m.Count() != 4 {
		t.Fatalf("Expected effective count 4 after stale skip, got %d", m.Count())
	}
	for i := 0; i < m.Count(); i++ {
		if want := float32(i) * 20; m.OffsetAt(i) != want {
			t.Errorf("Row %d: expected offset %f, got %f", i, want, m.OffsetAt(i))
		}
	}
	if m.TotalHeight() != 80 {
		t.Errorf("Expected total height 80, got %f", m.TotalHeight())
	}
}

func TestRowMetrics_IndexAtOffset(t *testing.T) {
	m := NewRowMetrics()
	m.EnsureValid(5, 100, uniformHeight(20))

	tests := []struct {
		y    float32
		want int
	}{
		{-10, 0},  // above content clamps to first row
		{0, 0},    // first row top
		{19.9, 0}, // just inside first row
		{20, 1},   // second row top
		{55, 2},
		{99.9, 4},
		{100, 4}, // at content bottom clamps to last row
		{500, 4}, // far below clamps to last row
	}
	for _, tt := range tests {
		if got := m.IndexAtOffset(tt.y); got != tt.want {
			t.Errorf("IndexAtOffset(%f): expected %d, got %d", tt.y, tt.want, got)
		}
	}

	empty := NewRowMetrics()
	empty.EnsureValid(0, 100, uniformHeight(20))
	if got := empty.IndexAtOffset(0); got != -1 {
		t.Errorf("Expected -1 for empty list, got %d", got)
	}
}

func TestRowMetrics_VisibleRange(t *testing.T) {
	m := NewRowMetrics()
	m.EnsureValid(10, 100, uniformHeight(20)) // content height 200

	// Viewport fully inside the content.
	i0, i1 := m.VisibleRange(50, 130)
	if i0 != 2 || i1 != 6 {
		t.Errorf("Expected range [2, 6], got [%d, %d]", i0, i1)
	}

	// Viewport covering everything.
	i0, i1 = m.VisibleRange(0, 1000)
	if i0 != 0 || i1 != 9 {
		t.Errorf("Expected range [0, 9], got [%d, %d]", i0, i1)
	}

	// Viewport below the content.
	i0, i1 = m.VisibleRange(300, 400)
	if i1 >= i0 {
		t.Errorf("Expected empty range below content, got [%d, %d]", i0, i1)
	}

	// Every row in the range must intersect the viewport, and the rows just
	// outside the range must not.
	i0, i1 = m.VisibleRange(45, 95)
	for i := i0; i <= i1; i++ {
		top := m.OffsetAt(i)
		bottom := top + m.HeightAt(i)
		if bottom < 45 || top > 95 {
			t.Errorf("Row %d in range does not intersect viewport", i)
		}
	}
	if i0 > 0 && m.OffsetAt(i0-1)+m.HeightAt(i0-1) >= 45 {
		t.Errorf("Row %d below range intersects viewport", i0-1)
	}
	if i1 < m.Count()-1 && m.OffsetAt(i1+1) <= 95 {
		t.Errorf("Row %d above range intersects viewport", i1+1)
	}
}
