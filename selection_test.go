package listview

import (
	"errors"
	"testing"
)

func TestSelection_SingleSelect(t *testing.T) {
	s := NewSelection(false)

	s.Select(3, false)
	if !s.IsSelected(3) || s.Len() != 1 {
		t.Errorf("Expected only row 3 selected, got %v", s.Indices())
	}

	// Replacing select drops the previous member.
	s.Select(1, false)
	if s.IsSelected(3) || !s.IsSelected(1) {
		t.Errorf("Expected selection replaced by row 1, got %v", s.Indices())
	}

	// Append is ignored without multi-select.
	s.Select(4, true)
	if s.Len() != 1 || !s.IsSelected(4) {
		t.Errorf("Expected append to behave as replace, got %v", s.Indices())
	}
}

func TestSelection_AppendKeepsSortedDistinct(t *testing.T) {
	s := NewSelection(true)

	for _, i := range []int{5, 1, 3, 1, 5} {
		s.Select(i, true)
	}

	got := s.Indices()
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}

func TestSelection_SelectRange(t *testing.T) {
	s := NewSelection(true)
	if err := s.SelectRange(4, 1); err != nil {
		t.Fatalf("SelectRange failed: %v", err)
	}

	got := s.Indices()
	if len(got) != 4 {
		t.Fatalf("Expected 4 members for range [1,4], got %v", got)
	}
	for i, idx := range got {
		if idx != i+1 {
			t.Errorf("Expected contiguous range [1,4], got %v", got)
			break
		}
	}
}

func TestSelection_SelectRangeRequiresMulti(t *testing.T) {
	s := NewSelection(false)
	err := s.SelectRange(0, 3)
	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Expected ErrInvalidOperation, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Expected selection untouched on error, got %v", s.Indices())
	}
}

func TestSelection_Deselect(t *testing.T) {
	s := NewSelection(true)
	s.SelectRange(0, 2)

	s.Deselect(1)
	if s.IsSelected(1) || s.Len() != 2 {
		t.Errorf("Expected row 1 removed, got %v", s.Indices())
	}

	// Deselecting a non-member is a no-op.
	s.Deselect(7)
	if s.Len() != 2 {
		t.Errorf("Expected no-op deselect, got %v", s.Indices())
	}
}

func TestSelection_ActiveIndexFallback(t *testing.T) {
	s := NewSelection(true)

	// Empty selection falls back to the last row so keyboard navigation
	// has somewhere to start.
	if got := s.ActiveIndex(5); got != 4 {
		t.Errorf("Expected fallback active 4, got %d", got)
	}
	if got := s.ActiveIndex(0); got != -1 {
		t.Errorf("Expected -1 for empty list, got %d", got)
	}

	s.Select(2, false)
	s.Select(4, true)
	if got := s.ActiveIndex(5); got != 2 {
		t.Errorf("Expected active 2 (lowest member), got %d", got)
	}
}

func TestSelection_DisablingMultiCollapses(t *testing.T) {
	s := NewSelection(true)
	s.SelectRange(1, 3)

	s.SetMultiSelect(false)
	if s.Len() != 1 {
		t.Errorf("Expected collapse to one member, got %v", s.Indices())
	}
	if got := s.ActiveIndex(10); got != 1 {
		t.Errorf("Expected active member 1 kept, got %d", got)
	}
}
