package listview

import "sort"

// HeightFunc reports the height of row index. The second result is false
// when the row's backing data no longer exists (a stale handle); the row is
// then excluded from layout for the current frame instead of producing an
// error. The callback is only invoked during EnsureValid, never per query.
type HeightFunc func(index int) (height float32, ok bool)

// RowMetrics caches per-row heights and cumulative offsets so that row
// geometry queries are O(1) between structural changes. The cache is reused
// across frames and recomputed lazily: any structural change, height change
// or width change must Invalidate it before the next query.
//
// Invariants after EnsureValid:
//
//	OffsetAt(0) == 0
//	OffsetAt(i) == OffsetAt(i-1) + HeightAt(i-1)
//	TotalHeight() == OffsetAt(n-1) + HeightAt(n-1)
type RowMetrics struct {
	heights []float32
	offsets []float32
	total   float32

	count       int     // effective row count after stale-handle skips
	sourceCount int     // count passed to the last EnsureValid
	width       float32 // geometry input; heights may depend on it
	valid       bool
}

// NewRowMetrics creates an empty, invalid metrics cache.
func NewRowMetrics() *RowMetrics {
	return &RowMetrics{}
}

// Invalidate marks the entire cache stale. The next EnsureValid recomputes
// every row.
func (m *RowMetrics) Invalidate() {
	m.valid = false
}

// Valid reports whether the cache can serve queries without recomputation.
func (m *RowMetrics) Valid() bool {
	return m.valid
}

// EnsureValid recomputes the height/offset table if it is stale. A width
// different from the previous call counts as stale, since row heights
// commonly depend on the available width. heightOf is called once per row;
// rows it reports as gone are skipped and do not contribute to offsets.
// Returns true if a recomputation happened.
func (m *RowMetrics) EnsureValid(count int, width float32, heightOf HeightFunc) bool {
	if m.valid && count == m.sourceCount && width == m.width {
		return false
	}

	m.sourceCount = count
	m.width = width
	m.heights = m.heights[:0]
	m.offsets = m.offsets[:0]
	m.total = 0

	for i := 0; i < count; i++ {
		h, ok := heightOf(i)
		if !ok {
			// Stale handle: the row shrank out from under us. Skip it so
			// later offsets stay coherent.
			listLogger.Debug("RowMetrics: skipping stale row", "index", i)
			continue
		}
		m.offsets = append(m.offsets, m.total)
		m.heights = append(m.heights, h)
		m.total += h
	}

	m.count = len(m.heights)
	m.valid = true
	return true
}

// Count returns the effective row count (rows skipped as stale excluded).
func (m *RowMetrics) Count() int {
	return m.count
}

// HeightAt returns the height of row i, or 0 if i is out of range.
func (m *RowMetrics) HeightAt(i int) float32 {
	if i < 0 || i >= m.count {
		return 0
	}
	return m.heights[i]
}

// OffsetAt returns the top offset of row i, or 0 if i is out of range.
func (m *RowMetrics) OffsetAt(i int) float32 {
	if i < 0 || i >= m.count {
		return 0
	}
	return m.offsets[i]
}

// TotalHeight returns the summed height of all rows.
func (m *RowMetrics) TotalHeight() float32 {
	return m.total
}

// IndexAtOffset returns the index of the row containing the vertical offset
// y, clamped to the first/last row for offsets outside the content. Returns
// -1 for an empty list.
func (m *RowMetrics) IndexAtOffset(y float32) int {
	if m.count == 0 {
		return -1
	}
	if y < 0 {
		return 0
	}
	if y >= m.total {
		return m.count - 1
	}
	// Largest i with offsets[i] <= y.
	i := sort.Search(m.count, func(i int) bool { return m.offsets[i] > y })
	return i - 1
}

// VisibleRange returns the minimal contiguous index range [i0, i1] of rows
// intersecting the viewport [y0, y1]. i1 < i0 means no row is visible.
func (m *RowMetrics) VisibleRange(y0, y1 float32) (i0, i1 int) {
	if m.count == 0 || y1 < y0 {
		return 0, -1
	}
	// First row whose bottom reaches the viewport top.
	i0 = sort.Search(m.count, func(i int) bool {
		return m.offsets[i]+m.heights[i] >= y0
	})
	// Last row whose top is at or above the viewport bottom.
	i1 = sort.Search(m.count, func(i int) bool { return m.offsets[i] > y1 }) - 1
	if i0 >= m.count || i1 < i0 {
		return 0, -1
	}
	return i0, i1
}
