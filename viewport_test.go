package listview

import "testing"

func TestViewport_ScrollClamped(t *testing.T) {
	v := &Viewport{Height: 100}
	v.SetContentHeight(300)

	v.ScrollBy(-50)
	if v.ScrollY != 0 {
		t.Errorf("Expected scroll clamped to 0, got %f", v.ScrollY)
	}

	v.ScrollBy(1000)
	if v.ScrollY != 200 {
		t.Errorf("Expected scroll clamped to 200, got %f", v.ScrollY)
	}

	v.ScrollToTop()
	if v.ScrollY != 0 {
		t.Errorf("Expected 0 after ScrollToTop, got %f", v.ScrollY)
	}
	v.ScrollToBottom()
	if v.ScrollY != 200 {
		t.Errorf("Expected 200 after ScrollToBottom, got %f", v.ScrollY)
	}
}

func TestViewport_ShrinkingContentReclamps(t *testing.T) {
	v := &Viewport{Height: 100}
	v.SetContentHeight(300)
	v.ScrollTo(200)

	v.SetContentHeight(150)
	if v.ScrollY != 50 {
		t.Errorf("Expected scroll re-clamped to 50, got %f", v.ScrollY)
	}
}

func TestViewport_EnsureVisible(t *testing.T) {
	v := &Viewport{Height: 100}
	v.SetContentHeight(400)

	// Target below the visible area scrolls down just enough.
	v.EnsureVisible(180, 20, 0)
	if v.ScrollY != 100 {
		t.Errorf("Expected scroll 100, got %f", v.ScrollY)
	}

	// Target already visible: no movement.
	v.EnsureVisible(120, 20, 0)
	if v.ScrollY != 100 {
		t.Errorf("Expected scroll unchanged, got %f", v.ScrollY)
	}

	// Target above the visible area scrolls up to it.
	v.EnsureVisible(40, 20, 0)
	if v.ScrollY != 40 {
		t.Errorf("Expected scroll 40, got %f", v.ScrollY)
	}
}

func TestViewport_ThumbGeometry(t *testing.T) {
	v := &Viewport{Height: 100}
	v.SetContentHeight(400)

	thumb, ok := v.ThumbRect(90, 0, 10)
	if !ok {
		t.Fatal("Expected a scrollbar for overflowing content")
	}
	if thumb.H != 25 {
		t.Errorf("Expected thumb height 25 (100 * 100/400), got %f", thumb.H)
	}
	if thumb.Y != 0 {
		t.Errorf("Expected thumb at top when unscrolled, got %f", thumb.Y)
	}

	v.ScrollToBottom()
	thumb, _ = v.ThumbRect(90, 0, 10)
	if thumb.Y+thumb.H != 100 {
		t.Errorf("Expected thumb at track bottom, got y=%f h=%f", thumb.Y, thumb.H)
	}

	// Content that fits needs no scrollbar.
	v.SetContentHeight(80)
	if _, ok := v.ThumbRect(90, 0, 10); ok {
		t.Error("Expected no scrollbar for fitting content")
	}
}

func TestViewport_ThumbDrag(t *testing.T) {
	v := &Viewport{Height: 100}
	v.SetContentHeight(400) // maxScroll 300, thumb 25, track 75

	v.BeginThumbDrag(10)
	if !v.ThumbDragging() {
		t.Fatal("Expected thumb drag active")
	}

	// 75 pixels of thumb travel map to 300 of scroll: 4x.
	v.UpdateThumbDrag(25)
	if v.ScrollY != 60 {
		t.Errorf("Expected scroll 60 after 15px thumb travel, got %f", v.ScrollY)
	}

	v.UpdateThumbDrag(1000)
	if v.ScrollY != 300 {
		t.Errorf("Expected scroll clamped to 300, got %f", v.ScrollY)
	}

	v.EndThumbDrag()
	if v.ThumbDragging() {
		t.Error("Expected thumb drag ended")
	}
}
