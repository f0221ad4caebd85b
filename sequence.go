package listview

// Sequence is the backing collection a list controller operates on.
// It is index-addressable and mutated only through the controller, one
// structural operation at a time. Implementations must treat out-of-range
// indices passed to mutation methods as no-ops rather than panic.
type Sequence interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at index, or nil if index is out of range.
	At(index int) any

	// Insert inserts a default-constructed element at index.
	// index == Len() appends.
	Insert(index int)

	// RemoveAt removes the element at index.
	RemoveAt(index int)

	// Move moves the element at from so that it ends up at to,
	// shifting the elements in between by one slot.
	Move(from, to int)
}

// Generational is implemented by sequences whose backing data can change
// outside the controller. The controller compares the generation each frame
// and invalidates its row metrics when it moved, so externally mutated data
// never renders with stale geometry.
type Generational interface {
	Generation() uint64
}

// SliceSequence is an in-memory Sequence backed by a slice.
// newItem produces default-constructed elements for Insert.
type SliceSequence[T any] struct {
	items   []T
	newItem func() T
	gen     uint64
}

// NewSliceSequence creates a slice-backed sequence seeded with items.
// newItem may be nil, in which case Insert inserts the zero value.
func NewSliceSequence[T any](newItem func() T, items ...T) *SliceSequence[T] {
	return &SliceSequence[T]{
		items:   append([]T(nil), items...),
		newItem: newItem,
	}
}

// Len returns the number of elements.
func (s *SliceSequence[T]) Len() int {
	return len(s.items)
}

// At returns the element at index, or nil if index is out of range.
func (s *SliceSequence[T]) At(index int) any {
	if index < 0 || index >= len(s.items) {
		return nil
	}
	return s.items[index]
}

// Item returns the typed element at index and whether it exists.
func (s *SliceSequence[T]) Item(index int) (T, bool) {
	if index < 0 || index >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[index], true
}

// SetItem replaces the element at index.
func (s *SliceSequence[T]) SetItem(index int, item T) {
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items[index] = item
	s.gen++
}

// Items returns the backing slice. The caller must not mutate it.
func (s *SliceSequence[T]) Items() []T {
	return s.items
}

// Insert inserts a default-constructed element at index.
func (s *SliceSequence[T]) Insert(index int) {
	if index < 0 || index > len(s.items) {
		return
	}
	var item T
	if s.newItem != nil {
		item = s.newItem()
	}
	s.items = append(s.items, item)
	copy(s.items[index+1:], s.items[index:])
	s.items[index] = item
	s.gen++
}

// RemoveAt removes the element at index.
func (s *SliceSequence[T]) RemoveAt(index int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.gen++
}

// Move moves the element at from to position to.
func (s *SliceSequence[T]) Move(from, to int) {
	if from < 0 || from >= len(s.items) || to < 0 || to >= len(s.items) || from == to {
		return
	}
	item := s.items[from]
	if from < to {
		copy(s.items[from:to], s.items[from+1:to+1])
	} else {
		copy(s.items[to+1:from+1], s.items[to:from])
	}
	s.items[to] = item
	s.gen++
}

// Generation returns a counter that advances on every mutation.
func (s *SliceSequence[T]) Generation() uint64 {
	return s.gen
}

// FuncSequence adapts an external, property-style store to the Sequence
// interface through callbacks, in the builder-function style used by
// terminal list widgets. Nil callbacks degrade to no-ops (or zero values),
// so a read-only host only needs LenFunc and AtFunc.
type FuncSequence struct {
	LenFunc        func() int
	AtFunc         func(index int) any
	InsertFunc     func(index int)
	RemoveAtFunc   func(index int)
	MoveFunc       func(from, to int)
	GenerationFunc func() uint64
}

// Len returns the number of elements.
func (f *FuncSequence) Len() int {
	if f.LenFunc == nil {
		return 0
	}
	return f.LenFunc()
}

// At returns the element at index.
func (f *FuncSequence) At(index int) any {
	if f.AtFunc == nil || index < 0 || index >= f.Len() {
		return nil
	}
	return f.AtFunc(index)
}

// Insert inserts an element at index.
func (f *FuncSequence) Insert(index int) {
	if f.InsertFunc == nil {
		listLogger.Debug("FuncSequence.Insert ignored: no InsertFunc", "index", index)
		return
	}
	f.InsertFunc(index)
}

// RemoveAt removes the element at index.
func (f *FuncSequence) RemoveAt(index int) {
	if f.RemoveAtFunc == nil {
		listLogger.Debug("FuncSequence.RemoveAt ignored: no RemoveAtFunc", "index", index)
		return
	}
	f.RemoveAtFunc(index)
}

// Move moves the element at from to position to.
func (f *FuncSequence) Move(from, to int) {
	if f.MoveFunc == nil {
		listLogger.Debug("FuncSequence.Move ignored: no MoveFunc", "from", from, "to", to)
		return
	}
	f.MoveFunc(from, to)
}

// Generation returns the external store's generation counter, or 0 if the
// host did not provide one.
func (f *FuncSequence) Generation() uint64 {
	if f.GenerationFunc == nil {
		return 0
	}
	return f.GenerationFunc()
}
