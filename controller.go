package listview

import "sort"

// ChangeKind classifies a structural change of the backing sequence.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeRemoved
	ChangeMoved
)

// StructuralChange describes a structural mutation for host notification.
// For ChangeAdded, Indices are the newly created indices. For ChangeRemoved,
// the original pre-removal indices in ascending order. For ChangeMoved,
// Indices is [from, to].
type StructuralChange struct {
	Kind    ChangeKind
	Indices []int
}

// RowRect is one visible row's draw instruction.
type RowRect struct {
	Index   int
	Rect    Rect
	Dragged bool // true for the floating row under the pointer during a drag
}

// phase is the controller's interaction state.
type phase int

const (
	phaseIdle phase = iota
	phaseSelecting // pointer down, not yet past the drag threshold
	phaseDragging  // reorder gesture in flight
	phaseKeyboard  // last interaction was keyboard navigation
)

// Controller coordinates input, geometry, selection and mutation for one
// virtualized, reorderable list. The host calls HandleInput once per frame
// with the current InputState and the list's screen rectangle, then asks
// VisibleRows for the rows to draw. All methods are synchronous and must be
// called from the host's UI dispatch; each structural operation either
// fully applies or leaves the sequence untouched.
type Controller struct {
	seq       Sequence
	selection *Selection
	metrics   *RowMetrics
	drag      *DragReorder
	viewport  *Viewport

	heightOf      HeightFunc
	uniformHeight float32

	draggable        bool
	dragThreshold    float32
	scrollStep       float32
	edgeScrollMargin float32

	// Per-row auxiliary UI state. Travels with content across reorders.
	expanded []bool

	ph         phase
	pressPos   Vec2
	pressIndex int
	pressShift bool
	pressCtrl  bool

	listRect Rect
	lastGen  uint64
	hasGen   bool

	onSelectionChanged func(active int, selected []int)
	onChanged          func(StructuralChange)
	onReorder          func(from, to int)
}

// NewController creates a controller over the given backing sequence.
func NewController(seq Sequence, opts ...Option) *Controller {
	o := applyOptions(opts)

	selection := NewSelection(GetOpt(o, OptMultiSelect))
	metrics := NewRowMetrics()

	c := &Controller{
		seq:              seq,
		selection:        selection,
		metrics:          metrics,
		drag:             NewDragReorder(metrics, selection),
		viewport:         &Viewport{},
		uniformHeight:    GetOpt(o, OptUniformRowHeight),
		draggable:        GetOpt(o, OptDraggable),
		dragThreshold:    GetOpt(o, OptDragThreshold),
		scrollStep:       GetOpt(o, OptScrollStep),
		edgeScrollMargin: GetOpt(o, OptEdgeScrollMargin),
		expanded:         make([]bool, seq.Len()),
		pressIndex:       -1,
	}
	return c
}

// SetHeightFunc installs a per-row height callback, replacing the uniform
// row height. Pass nil to restore uniform heights.
func (c *Controller) SetHeightFunc(f HeightFunc) {
	c.heightOf = f
	c.metrics.Invalidate()
}

// heightFor is the metrics cache's height provider.
func (c *Controller) heightFor(i int) (float32, bool) {
	if c.heightOf != nil {
		return c.heightOf(i)
	}
	return c.uniformHeight, true
}

// Invalidate marks the row geometry stale. Call after changing row content
// in a way that affects heights.
func (c *Controller) Invalidate() {
	c.metrics.Invalidate()
}

// Len returns the backing sequence length.
func (c *Controller) Len() int {
	return c.seq.Len()
}

// Sequence returns the backing sequence.
func (c *Controller) Sequence() Sequence {
	return c.seq
}

// Metrics returns the row geometry cache.
func (c *Controller) Metrics() *RowMetrics {
	return c.metrics
}

// Viewport returns the scroll state.
func (c *Controller) Viewport() *Viewport {
	return c.viewport
}

// Dragging returns true while a reorder gesture is in flight.
func (c *Controller) Dragging() bool {
	return c.drag.Dragging()
}

// OnSelectionChanged sets the selection-change callback.
func (c *Controller) OnSelectionChanged(fn func(active int, selected []int)) *Controller {
	c.onSelectionChanged = fn
	return c
}

// OnChanged sets the structural-change callback.
func (c *Controller) OnChanged(fn func(StructuralChange)) *Controller {
	c.onChanged = fn
	return c
}

// OnReorder sets the callback fired when a drag gesture commits a move.
func (c *Controller) OnReorder(fn func(from, to int)) *Controller {
	c.onReorder = fn
	return c
}

// ensureMetrics brings row geometry up to date for the given width. A moved
// generation token on the data source forces a local invalidate, so the
// controller never serves offsets computed against externally mutated data.
func (c *Controller) ensureMetrics(width float32) {
	if g, ok := c.seq.(Generational); ok {
		gen := g.Generation()
		if !c.hasGen || gen != c.lastGen {
			c.metrics.Invalidate()
			c.lastGen = gen
			c.hasGen = true
		}
	}

	count := c.seq.Len()
	recomputed := c.metrics.EnsureValid(count, width, c.heightFor)

	// Keep the auxiliary state sized to the sequence even when the host
	// mutated the backing data directly.
	if len(c.expanded) != count {
		next := make([]bool, count)
		copy(next, c.expanded)
		c.expanded = next
	}

	// A recomputation that dropped rows mid-gesture means the dragged data
	// is no longer trustworthy; cancel rather than commit a stale move.
	if recomputed && c.drag.Dragging() && c.metrics.Count() != count {
		listLogger.Debug("stale rows during drag, cancelling", "count", count, "effective", c.metrics.Count())
		c.drag.CancelDrag()
		c.ph = phaseIdle
	}
}

// =============================================================================
// Structural operations
// =============================================================================

// AddItems appends n default-constructed elements and returns their
// indices. Returns ErrInvalidOperation for n <= 0.
func (c *Controller) AddItems(n int) ([]int, error) {
	if n <= 0 {
		return nil, ErrInvalidOperation
	}

	start := c.seq.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		c.seq.Insert(c.seq.Len())
		c.expanded = append(c.expanded, false)
		indices = append(indices, start+i)
	}

	c.metrics.Invalidate()
	c.notifyChanged(StructuralChange{Kind: ChangeAdded, Indices: indices})
	return indices, nil
}

// RemoveItems removes the rows at the given indices. Out-of-range indices
// and duplicates are ignored. Removal happens in descending index order so
// earlier removals never invalidate later ones; the notification carries
// the original indices in ascending order. The selection is adjusted:
// removed members are dropped and higher members shift down.
func (c *Controller) RemoveItems(indices []int) {
	count := c.seq.Len()
	valid := make([]int, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= count || seen[i] {
			continue
		}
		seen[i] = true
		valid = append(valid, i)
	}
	if len(valid) == 0 {
		return
	}
	sort.Ints(valid)

	for i := len(valid) - 1; i >= 0; i-- {
		idx := valid[i]
		c.seq.RemoveAt(idx)
		c.expanded = append(c.expanded[:idx], c.expanded[idx+1:]...)
	}

	c.adjustSelectionAfterRemoval(valid)
	c.metrics.Invalidate()
	c.notifyChanged(StructuralChange{Kind: ChangeRemoved, Indices: valid})
}

// RemoveSelected removes all selected rows.
func (c *Controller) RemoveSelected() {
	c.RemoveItems(c.selection.Indices())
}

// adjustSelectionAfterRemoval drops removed members and shifts the rest.
// removed must be sorted ascending.
func (c *Controller) adjustSelectionAfterRemoval(removed []int) {
	if c.selection.Len() == 0 {
		return
	}

	old := c.selection.Indices()
	c.selection.Clear()
	changed := false
	for _, s := range old {
		pos := sort.SearchInts(removed, s)
		if pos < len(removed) && removed[pos] == s {
			changed = true
			continue // this row is gone
		}
		// pos is the number of removed rows below s.
		c.selection.Select(s-pos, true)
		if pos > 0 {
			changed = true
		}
	}
	if changed {
		c.notifySelection()
	}
}

// MoveItem moves the row at from so that it ends up at to. Out-of-range
// indices are a no-op. The per-row auxiliary state travels with the moved
// content: rows strictly between the two positions shift by one slot and
// the moved row keeps its own flag. Selection members are remapped the same
// way.
func (c *Controller) MoveItem(from, to int) {
	count := c.seq.Len()
	if from < 0 || from >= count || to < 0 || to >= count || from == to {
		return
	}

	c.seq.Move(from, to)

	// Transplant auxiliary state with the same remove/insert shift.
	flag := c.expanded[from]
	c.expanded = append(c.expanded[:from], c.expanded[from+1:]...)
	c.expanded = append(c.expanded, false)
	copy(c.expanded[to+1:], c.expanded[to:])
	c.expanded[to] = flag

	c.remapSelectionAfterMove(from, to)
	c.metrics.Invalidate()
	c.notifyChanged(StructuralChange{Kind: ChangeMoved, Indices: []int{from, to}})
}

// remapSelectionAfterMove shifts selection members so they keep pointing at
// the same content after a move.
func (c *Controller) remapSelectionAfterMove(from, to int) {
	if c.selection.Len() == 0 {
		return
	}
	old := c.selection.Indices()
	c.selection.Clear()
	for _, s := range old {
		switch {
		case s == from:
			s = to
		case from < to && s > from && s <= to:
			s--
		case to < from && s >= to && s < from:
			s++
		}
		c.selection.Select(s, true)
	}
	c.notifySelection()
}

// =============================================================================
// Selection operations
// =============================================================================

// Select selects the row at index, replacing the selection unless appendTo
// is set. Returns ErrOutOfRange for an invalid index.
func (c *Controller) Select(index int, appendTo bool) error {
	if index < 0 || index >= c.seq.Len() {
		return ErrOutOfRange
	}
	c.selection.Select(index, appendTo)
	c.notifySelection()
	return nil
}

// SelectRange selects the closed interval between from and to. Returns
// ErrInvalidOperation when multi-select is disabled and ErrOutOfRange when
// either bound is invalid.
func (c *Controller) SelectRange(from, to int) error {
	count := c.seq.Len()
	if from < 0 || from >= count || to < 0 || to >= count {
		return ErrOutOfRange
	}
	if err := c.selection.SelectRange(from, to); err != nil {
		return err
	}
	c.notifySelection()
	return nil
}

// Deselect removes index from the selection. Out-of-range is a no-op.
func (c *Controller) Deselect(index int) {
	c.selection.Deselect(index)
	c.notifySelection()
}

// ClearSelection removes all selection members.
func (c *Controller) ClearSelection() {
	if c.selection.Len() == 0 {
		return
	}
	c.selection.Clear()
	c.notifySelection()
}

// IsSelected returns true if index is selected.
func (c *Controller) IsSelected(index int) bool {
	return c.selection.IsSelected(index)
}

// ActiveIndex returns the primary selection member, or the last row when
// nothing is selected.
func (c *Controller) ActiveIndex() int {
	return c.selection.ActiveIndex(c.seq.Len())
}

// SelectedIndices returns the selected indices, sorted ascending.
func (c *Controller) SelectedIndices() []int {
	return c.selection.Indices()
}

func (c *Controller) notifySelection() {
	if c.onSelectionChanged != nil {
		c.onSelectionChanged(c.ActiveIndex(), c.selection.Indices())
	}
}

func (c *Controller) notifyChanged(change StructuralChange) {
	if c.onChanged != nil {
		c.onChanged(change)
	}
}

// =============================================================================
// Auxiliary per-row state
// =============================================================================

// Expanded returns the auxiliary expanded flag of the row at index.
func (c *Controller) Expanded(index int) bool {
	if index < 0 || index >= len(c.expanded) {
		return false
	}
	return c.expanded[index]
}

// SetExpanded sets the auxiliary expanded flag of the row at index.
// Out-of-range is a no-op.
func (c *Controller) SetExpanded(index int, expanded bool) {
	if index < 0 || index >= len(c.expanded) {
		return
	}
	if c.expanded[index] != expanded {
		c.expanded[index] = expanded
		c.metrics.Invalidate() // expanded rows commonly change height
	}
}

// =============================================================================
// Input handling
// =============================================================================

// contentTop returns the screen Y of the content's first row.
func (c *Controller) contentTop() float32 {
	return c.listRect.Y - c.viewport.ScrollY
}

// contentY converts a screen Y into a content-relative offset.
func (c *Controller) contentY(screenY float32) float32 {
	return screenY - c.contentTop()
}

// HandleInput processes one frame of input against the list's screen
// rectangle. Call once per frame between input collection and drawing.
func (c *Controller) HandleInput(in *InputState, listRect Rect) {
	c.listRect = listRect
	c.viewport.Height = listRect.H
	c.ensureMetrics(listRect.W)
	c.viewport.SetContentHeight(c.metrics.TotalHeight())

	if in == nil {
		return
	}

	mouse := Vec2{X: in.MouseX, Y: in.MouseY}
	hovered := listRect.Contains(mouse)

	// Wheel scrolling when hovered, regardless of phase.
	if hovered && in.MouseWheelY != 0 {
		c.viewport.ScrollBy(-in.MouseWheelY * c.scrollStep)
	}

	switch c.ph {
	case phaseIdle, phaseKeyboard:
		if hovered && in.MouseClicked(MouseButtonLeft) {
			y := c.contentY(in.MouseY)
			if idx := c.metrics.IndexAtOffset(y); idx >= 0 && y < c.metrics.TotalHeight() {
				c.ph = phaseSelecting
				c.pressPos = mouse
				c.pressIndex = idx
				c.pressShift = in.ModShift
				c.pressCtrl = in.ModCtrl
			}
		}
		c.handleKeys(in)

	case phaseSelecting:
		if in.MouseDown(MouseButtonLeft) {
			past := maxf(absf(mouse.X-c.pressPos.X), absf(mouse.Y-c.pressPos.Y)) > c.dragThreshold
			if past && c.draggable && !c.pressShift && !c.pressCtrl {
				if err := c.drag.BeginDrag(c.pressIndex, c.pressPos.Y, c.contentTop()); err == nil {
					c.ph = phaseDragging
					c.drag.UpdateDrag(in.MouseY, c.contentTop())
				}
			}
		} else {
			// Released without dragging: this is a click.
			c.applyClickSelection(c.pressIndex, c.pressShift, c.pressCtrl)
			c.ph = phaseIdle
		}

	case phaseDragging:
		if in.KeyPressed(KeyEscape) {
			c.drag.CancelDrag()
			c.ph = phaseIdle
			break
		}
		if in.MouseDown(MouseButtonLeft) {
			c.dragEdgeScroll(in.MouseY)
			c.drag.UpdateDrag(in.MouseY, c.contentTop())
		} else {
			from, to, moved := c.drag.EndDrag()
			if moved {
				c.MoveItem(from, to)
				if c.onReorder != nil {
					c.onReorder(from, to)
				}
			}
			c.ph = phaseIdle
		}
	}

	// Forced capture loss while the state machine still thinks it is
	// dragging means the gesture was cancelled externally.
	if c.ph == phaseDragging && !c.drag.HasCapture() {
		c.ph = phaseIdle
	}
}

// dragEdgeScroll auto-scrolls while the pointer is dragged near the
// viewport edges, so long lists can be reordered across a page.
func (c *Controller) dragEdgeScroll(pointerY float32) {
	if pointerY < c.listRect.Y+c.edgeScrollMargin {
		c.viewport.ScrollBy(-c.scrollStep / 3)
	} else if pointerY > c.listRect.Y+c.listRect.H-c.edgeScrollMargin {
		c.viewport.ScrollBy(c.scrollStep / 3)
	}
}

// applyClickSelection applies click-on-release selection semantics:
// shift extends from the active index, ctrl toggles membership, a plain
// click replaces the selection.
func (c *Controller) applyClickSelection(index int, shift, ctrl bool) {
	if index < 0 || index >= c.seq.Len() {
		return
	}

	switch {
	case shift && c.selection.MultiSelect():
		anchor := c.selection.ActiveIndex(c.seq.Len())
		if anchor < 0 {
			anchor = index
		}
		if err := c.selection.SelectRange(anchor, index); err != nil {
			c.selection.Select(index, false)
		}
	case ctrl && c.selection.MultiSelect():
		if c.selection.IsSelected(index) {
			c.selection.Deselect(index)
		} else {
			c.selection.Select(index, true)
		}
	default:
		c.selection.Select(index, false)
	}
	c.notifySelection()
}

// handleKeys processes keyboard navigation.
func (c *Controller) handleKeys(in *InputState) {
	count := c.seq.Len()
	if count == 0 {
		return
	}

	if in.KeyRepeated(KeyUp) {
		c.moveActive(-1)
	}
	if in.KeyRepeated(KeyDown) {
		c.moveActive(1)
	}
	if in.KeyPressed(KeyLeft) {
		c.SetExpanded(c.ActiveIndex(), false)
		c.ph = phaseKeyboard
	}
	if in.KeyPressed(KeyRight) {
		c.SetExpanded(c.ActiveIndex(), true)
		c.ph = phaseKeyboard
	}
	if in.KeyPressed(KeyHome) {
		c.viewport.ScrollToTop()
	}
	if in.KeyPressed(KeyEnd) {
		c.viewport.ScrollToBottom()
	}
	if in.KeyPressed(KeyPageUp) {
		c.viewport.ScrollBy(-c.viewport.Height * 0.8)
	}
	if in.KeyPressed(KeyPageDown) {
		c.viewport.ScrollBy(c.viewport.Height * 0.8)
	}
	if in.KeyPressed(KeyDelete) {
		c.RemoveSelected()
	}
}

// moveActive moves the active index by delta with wraparound at the ends.
func (c *Controller) moveActive(delta int) {
	count := c.seq.Len()
	next := c.ActiveIndex() + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}

	c.selection.Select(next, false)
	c.ph = phaseKeyboard
	c.viewport.EnsureVisible(c.metrics.OffsetAt(next), c.metrics.HeightAt(next), c.metrics.HeightAt(next))
	c.notifySelection()
}

// =============================================================================
// Draw queries
// =============================================================================

// VisibleRange returns the minimal contiguous index range [i0, i1] of rows
// intersecting the content viewport [y0, y1]. Pure geometry; does not
// account for an in-flight drag.
func (c *Controller) VisibleRange(y0, y1 float32) (int, int) {
	return c.metrics.VisibleRange(y0, y1)
}

// VisibleRows returns draw instructions for every row intersecting the
// current viewport, in draw order. During a drag the displaced rows appear
// at their ghost-shifted positions and the dragged row comes last, floating
// at the pointer.
func (c *Controller) VisibleRows() []RowRect {
	if c.metrics.Count() == 0 {
		return nil
	}

	if !c.drag.Dragging() {
		i0, i1 := c.metrics.VisibleRange(c.viewport.ScrollY, c.viewport.ScrollY+c.listRect.H)
		if i1 < i0 {
			return nil
		}
		rows := make([]RowRect, 0, i1-i0+1)
		for i := i0; i <= i1; i++ {
			rows = append(rows, RowRect{
				Index: i,
				Rect: Rect{
					X: c.listRect.X,
					Y: c.contentTop() + c.metrics.OffsetAt(i),
					W: c.listRect.W,
					H: c.metrics.HeightAt(i),
				},
			})
		}
		return rows
	}

	// Drag preview: lay the remaining rows out as if the dragged row were
	// already moved to its target slot, and float the dragged row itself at
	// the clamped pointer position.
	session := c.drag.Session()
	src := session.SourceIndex
	target := session.TargetIndex

	rows := make([]RowRect, 0, 16)
	slot := 0
	offset := float32(0)
	for i := 0; i < c.metrics.Count(); i++ {
		if i == src {
			continue
		}
		if slot == target {
			offset += c.metrics.HeightAt(src) // gap for the dragged row
		}
		r := Rect{
			X: c.listRect.X,
			Y: c.contentTop() + offset,
			W: c.listRect.W,
			H: c.metrics.HeightAt(i),
		}
		if r.Intersects(c.listRect) {
			rows = append(rows, RowRect{Index: i, Rect: r})
		}
		offset += c.metrics.HeightAt(i)
		slot++
	}

	dragged := Rect{
		X: c.listRect.X,
		Y: c.contentTop() + session.DraggedTop,
		W: c.listRect.W,
		H: c.metrics.HeightAt(src),
	}
	if dragged.Intersects(c.listRect) {
		rows = append(rows, RowRect{Index: src, Rect: dragged, Dragged: true})
	}
	return rows
}

// InsertionCursor returns the screen rect of the drag insertion marker and
// whether a drag is in flight.
func (c *Controller) InsertionCursor() (Rect, bool) {
	if !c.drag.Dragging() {
		return Rect{}, false
	}

	session := c.drag.Session()
	offset := float32(0)
	slot := 0
	for i := 0; i < c.metrics.Count() && slot < session.TargetIndex; i++ {
		if i == session.SourceIndex {
			continue
		}
		offset += c.metrics.HeightAt(i)
		slot++
	}

	return Rect{
		X: c.listRect.X,
		Y: c.contentTop() + offset,
		W: c.listRect.W,
		H: 2,
	}, true
}
