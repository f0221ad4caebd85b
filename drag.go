package listview

// DragSession tracks the state of one drag-to-reorder gesture.
type DragSession struct {
	Active      bool
	SourceIndex int     // Row under the pointer when the drag began
	DragOffset  float32 // Pointer Y minus row top at drag start, list-relative
	TargetIndex int     // Live insertion index, updated every pointer move
	DraggedTop  float32 // Clamped top of the dragged row, list-relative
}

// Reset clears the drag session.
func (d *DragSession) Reset() {
	d.Active = false
	d.SourceIndex = 0
	d.DragOffset = 0
	d.TargetIndex = 0
	d.DraggedTop = 0
}

// DragReorder converts a pointer-Y stream into a discrete reordering
// preview: a live target insertion index computed against ghost-shifted row
// rects, with midpoint tie-breaking so the target never flickers at row
// boundaries. The final move is returned by EndDrag; the engine itself
// never mutates the backing sequence.
//
// A drag is only valid while the engine holds pointer capture. Losing
// capture (ReleaseCapture) cancels the gesture rather than leaving the
// target stale.
type DragReorder struct {
	metrics   *RowMetrics
	selection *Selection

	session  DragSession
	captured bool
}

// NewDragReorder creates a reorder engine over the given geometry and
// selection.
func NewDragReorder(metrics *RowMetrics, selection *Selection) *DragReorder {
	return &DragReorder{
		metrics:   metrics,
		selection: selection,
	}
}

// BeginDrag starts a drag on the row at source. pointerY is the pointer
// position and listTop the list's top edge, both in host coordinates.
// A multi-selection collapses to the dragged row: the gesture only ever
// moves one row's position. Returns ErrOutOfRange for an invalid source.
func (d *DragReorder) BeginDrag(source int, pointerY, listTop float32) error {
	if source < 0 || source >= d.metrics.Count() {
		return ErrOutOfRange
	}

	d.session.Active = true
	d.session.SourceIndex = source
	d.session.TargetIndex = source
	d.session.DraggedTop = d.metrics.OffsetAt(source)
	d.session.DragOffset = pointerY - listTop - d.session.DraggedTop
	d.captured = true

	if d.selection != nil {
		d.selection.Select(source, false)
	}

	listLogger.Debug("drag begin", "source", source, "offset", d.session.DragOffset)
	return nil
}

// UpdateDrag advances the gesture to a new pointer position and returns the
// live target insertion index. The dragged row's top is clamped to the list
// content, then compared against the midpoints of the remaining rows laid
// out as if the dragged row were already removed (the ghost ordering).
// The target only advances past row i once the dragged top passes the
// midpoint of i's ghost rect.
func (d *DragReorder) UpdateDrag(pointerY, listTop float32) int {
	if !d.session.Active || !d.captured {
		return d.session.TargetIndex
	}

	src := d.session.SourceIndex
	if src >= d.metrics.Count() {
		// The source row disappeared mid-gesture; cancel rather than
		// reorder against stale geometry.
		d.CancelDrag()
		return 0
	}

	srcHeight := d.metrics.HeightAt(src)
	minY := d.session.DragOffset
	maxY := d.metrics.TotalHeight() - srcHeight + d.session.DragOffset
	clampedY := clampf(pointerY-listTop, minY, maxY)
	d.session.DraggedTop = clampedY - d.session.DragOffset

	target := 0
	ghostOffset := float32(0)
	for i := 0; i < d.metrics.Count(); i++ {
		if i == src {
			continue
		}
		h := d.metrics.HeightAt(i)
		if d.session.DraggedTop > ghostOffset+h/2 {
			target++
		}
		ghostOffset += h
	}

	if target != d.session.TargetIndex {
		listLogger.Debug("drag target", "source", src, "target", target)
	}
	d.session.TargetIndex = target
	return target
}

// EndDrag finishes the gesture. moved is true when the row ended up at a
// new position; the caller then applies Move(from, to) to the backing
// sequence and notifies the host. A drag released in place is a click, not
// a move.
func (d *DragReorder) EndDrag() (from, to int, moved bool) {
	if !d.session.Active {
		return 0, 0, false
	}
	from = d.session.SourceIndex
	to = d.session.TargetIndex
	moved = from != to
	d.session.Reset()
	d.captured = false
	listLogger.Debug("drag end", "from", from, "to", to, "moved", moved)
	return from, to, moved
}

// CancelDrag discards the gesture without producing a move.
func (d *DragReorder) CancelDrag() {
	if !d.session.Active {
		return
	}
	listLogger.Debug("drag cancel", "source", d.session.SourceIndex)
	d.session.Reset()
	d.captured = false
}

// ReleaseCapture reports an externally-forced loss of pointer capture.
// An active gesture is cancelled, never committed.
func (d *DragReorder) ReleaseCapture() {
	d.captured = false
	d.CancelDrag()
}

// HasCapture reports whether the engine owns pointer input.
func (d *DragReorder) HasCapture() bool {
	return d.captured
}

// Dragging returns true while a gesture is in flight.
func (d *DragReorder) Dragging() bool {
	return d.session.Active
}

// Session returns a copy of the current drag session.
func (d *DragReorder) Session() DragSession {
	return d.session
}

// TargetIndex returns the live insertion index of the active gesture.
func (d *DragReorder) TargetIndex() int {
	return d.session.TargetIndex
}

// DraggedTop returns the clamped list-relative top of the dragged row, for
// rendering the row under the pointer.
func (d *DragReorder) DraggedTop() float32 {
	return d.session.DraggedTop
}
