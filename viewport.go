package listview

// Viewport tracks the scroll position of a list over its content. ScrollY
// is always kept within [0, maxScroll]; hosts read it to translate row
// offsets into screen positions.
type Viewport struct {
	ScrollY float32
	Height  float32

	contentHeight float32

	// Scrollbar thumb drag state
	dragging        bool
	dragStartY      float32
	dragStartScroll float32
}

// SetContentHeight updates the content height and re-clamps the scroll
// position.
func (v *Viewport) SetContentHeight(h float32) {
	v.contentHeight = h
	v.ScrollY = clampf(v.ScrollY, 0, v.maxScroll())
}

// ContentHeight returns the current content height.
func (v *Viewport) ContentHeight() float32 {
	return v.contentHeight
}

func (v *Viewport) maxScroll() float32 {
	return maxf(0, v.contentHeight-v.Height)
}

// ScrollBy scrolls by delta, clamped to the content.
func (v *Viewport) ScrollBy(delta float32) {
	v.ScrollY = clampf(v.ScrollY+delta, 0, v.maxScroll())
}

// ScrollTo scrolls to an absolute position, clamped to the content.
func (v *Viewport) ScrollTo(y float32) {
	v.ScrollY = clampf(y, 0, v.maxScroll())
}

// ScrollToTop scrolls to the start of the content.
func (v *Viewport) ScrollToTop() {
	v.ScrollY = 0
}

// ScrollToBottom scrolls to the end of the content.
func (v *Viewport) ScrollToBottom() {
	v.ScrollY = v.maxScroll()
}

// EnsureVisible scrolls the minimum amount needed to bring the content
// range [targetY, targetY+targetH] into view, with padding rows of slack.
// Call this when the keyboard selection changes.
func (v *Viewport) EnsureVisible(targetY, targetH, padding float32) {
	maxScroll := v.maxScroll()

	visibleTop := v.ScrollY + padding
	visibleBottom := v.ScrollY + v.Height - padding

	if targetY < visibleTop {
		// Target is above the visible area - scroll up
		v.ScrollY = clampf(targetY-padding, 0, maxScroll)
	} else if targetY+targetH > visibleBottom {
		// Target is below the visible area - scroll down
		v.ScrollY = clampf(targetY+targetH-v.Height+padding, 0, maxScroll)
	}
}

// ThumbRect returns the scrollbar thumb rectangle for a vertical track at
// (trackX, trackY) with width trackW and the viewport's height, and whether
// a scrollbar is needed at all.
func (v *Viewport) ThumbRect(trackX, trackY, trackW float32) (Rect, bool) {
	if v.contentHeight <= v.Height || v.Height <= 0 {
		return Rect{}, false
	}

	scrollRatio := v.Height / v.contentHeight
	thumbHeight := maxf(minf(20, v.Height), v.Height*scrollRatio)
	thumbPos := float32(0)
	if maxScroll := v.maxScroll(); maxScroll > 0 {
		thumbPos = (v.ScrollY / maxScroll) * (v.Height - thumbHeight)
	}

	return Rect{X: trackX, Y: trackY + thumbPos, W: trackW, H: thumbHeight}, true
}

// BeginThumbDrag starts a scrollbar thumb drag at pointer position y.
func (v *Viewport) BeginThumbDrag(y float32) {
	v.dragging = true
	v.dragStartY = y
	v.dragStartScroll = v.ScrollY
}

// UpdateThumbDrag converts pointer movement into scroll movement while the
// thumb is being dragged.
func (v *Viewport) UpdateThumbDrag(y float32) {
	if !v.dragging {
		return
	}
	thumb, ok := v.ThumbRect(0, 0, 0)
	if !ok {
		return
	}
	track := v.Height - thumb.H
	if track <= 0 {
		return
	}
	delta := (y - v.dragStartY) * (v.maxScroll() / track)
	v.ScrollY = clampf(v.dragStartScroll+delta, 0, v.maxScroll())
}

// EndThumbDrag finishes a scrollbar thumb drag.
func (v *Viewport) EndThumbDrag() {
	v.dragging = false
}

// ThumbDragging reports whether the scrollbar thumb is being dragged.
func (v *Viewport) ThumbDragging() bool {
	return v.dragging
}
