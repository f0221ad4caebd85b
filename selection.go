package listview

import "sort"

// Selection is an ordered set of selected row indices with an "active"
// index convention: the lowest selected index, falling back to the last row
// when nothing is selected so keyboard navigation has somewhere to start.
//
// The selection does not track structural changes of the backing sequence;
// after an add/remove/move the owner must adjust or clear it explicitly.
type Selection struct {
	indices []int // sorted ascending, distinct
	multi   bool
}

// NewSelection creates a selection. multi enables range and toggle select.
func NewSelection(multi bool) *Selection {
	return &Selection{multi: multi}
}

// MultiSelect reports whether multi-selection is enabled.
func (s *Selection) MultiSelect() bool {
	return s.multi
}

// SetMultiSelect enables or disables multi-selection. Disabling collapses
// the selection to its active member.
func (s *Selection) SetMultiSelect(multi bool) {
	s.multi = multi
	if !multi && len(s.indices) > 1 {
		s.indices = s.indices[:1]
	}
}

// Select selects index. When appendTo is false the selection is replaced;
// when true (and multi-select is enabled) index joins the selection in
// sorted position, without duplicates.
func (s *Selection) Select(index int, appendTo bool) {
	if !appendTo || !s.multi {
		s.indices = s.indices[:0]
		s.indices = append(s.indices, index)
		return
	}
	i := sort.SearchInts(s.indices, index)
	if i < len(s.indices) && s.indices[i] == index {
		return
	}
	s.indices = append(s.indices, 0)
	copy(s.indices[i+1:], s.indices[i:])
	s.indices[i] = index
}

// SelectRange replaces the selection with the closed interval
// [min(from,to), max(from,to)]. Returns ErrInvalidOperation when
// multi-select is disabled.
func (s *Selection) SelectRange(from, to int) error {
	if !s.multi {
		return ErrInvalidOperation
	}
	if from > to {
		from, to = to, from
	}
	s.indices = s.indices[:0]
	for i := from; i <= to; i++ {
		s.indices = append(s.indices, i)
	}
	return nil
}

// Deselect removes index from the selection if present.
func (s *Selection) Deselect(index int) {
	i := sort.SearchInts(s.indices, index)
	if i < len(s.indices) && s.indices[i] == index {
		s.indices = append(s.indices[:i], s.indices[i+1:]...)
	}
}

// IsSelected returns true if index is selected.
func (s *Selection) IsSelected(index int) bool {
	i := sort.SearchInts(s.indices, index)
	return i < len(s.indices) && s.indices[i] == index
}

// Clear removes all members.
func (s *Selection) Clear() {
	s.indices = s.indices[:0]
}

// Len returns the number of selected rows.
func (s *Selection) Len() int {
	return len(s.indices)
}

// Indices returns a copy of the selected indices, sorted ascending.
func (s *Selection) Indices() []int {
	return append([]int(nil), s.indices...)
}

// ActiveIndex returns the primary selection member: the lowest selected
// index, or the last row (count-1) when the selection is empty. Returns -1
// for an empty list.
func (s *Selection) ActiveIndex(count int) int {
	if len(s.indices) > 0 {
		return s.indices[0]
	}
	return count - 1
}
