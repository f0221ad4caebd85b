package listview

import "testing"

func TestSliceSequence_InsertRemove(t *testing.T) {
	s := NewSliceSequence(func() int { return -1 }, 10, 20, 30)

	s.Insert(1)
	want := []int{10, -1, 20, 30}
	for i, w := range want {
		if got, _ := s.Item(i); got != w {
			t.Errorf("Row %d: expected %d, got %d", i, w, got)
		}
	}

	s.RemoveAt(0)
	if s.Len() != 3 {
		t.Errorf("Expected length 3, got %d", s.Len())
	}
	if got, _ := s.Item(0); got != -1 {
		t.Errorf("Expected -1 at head, got %d", got)
	}

	// Out-of-range mutations are no-ops.
	s.RemoveAt(10)
	s.Insert(-1)
	if s.Len() != 3 {
		t.Errorf("Expected length unchanged, got %d", s.Len())
	}
}

func TestSliceSequence_Move(t *testing.T) {
	s := NewSliceSequence(nil, "a", "b", "c", "d", "e")

	s.Move(1, 3)
	want := []string{"a", "c", "d", "b", "e"}
	for i, w := range want {
		if got, _ := s.Item(i); got != w {
			t.Errorf("Row %d: expected %q, got %q", i, w, got)
		}
	}

	s.Move(3, 1)
	want = []string{"a", "b", "c", "d", "e"}
	for i, w := range want {
		if got, _ := s.Item(i); got != w {
			t.Errorf("Row %d after round trip: expected %q, got %q", i, w, got)
		}
	}
}

func TestSliceSequence_GenerationAdvances(t *testing.T) {
	s := NewSliceSequence(nil, 1, 2, 3)
	gen := s.Generation()

	s.Insert(0)
	if s.Generation() == gen {
		t.Error("Expected generation bump on Insert")
	}
	gen = s.Generation()

	s.RemoveAt(0)
	if s.Generation() == gen {
		t.Error("Expected generation bump on RemoveAt")
	}
	gen = s.Generation()

	s.Move(0, 2)
	if s.Generation() == gen {
		t.Error("Expected generation bump on Move")
	}

	// No-op mutations don't advance the generation.
	gen = s.Generation()
	s.RemoveAt(99)
	s.Move(0, 0)
	if s.Generation() != gen {
		t.Error("Expected no generation bump for no-ops")
	}
}

func TestFuncSequence_NilCallbacksDegrade(t *testing.T) {
	f := &FuncSequence{}

	if f.Len() != 0 {
		t.Errorf("Expected 0 length, got %d", f.Len())
	}
	if f.At(0) != nil {
		t.Error("Expected nil element")
	}
	// None of these may panic.
	f.Insert(0)
	f.RemoveAt(0)
	f.Move(0, 1)
	if f.Generation() != 0 {
		t.Errorf("Expected generation 0, got %d", f.Generation())
	}
}

func TestFuncSequence_DelegatesToCallbacks(t *testing.T) {
	items := []string{"x", "y", "z"}
	var movedFrom, movedTo int

	f := &FuncSequence{
		LenFunc: func() int { return len(items) },
		AtFunc:  func(i int) any { return items[i] },
		MoveFunc: func(from, to int) {
			movedFrom, movedTo = from, to
		},
	}

	if f.Len() != 3 {
		t.Errorf("Expected length 3, got %d", f.Len())
	}
	if f.At(1) != "y" {
		t.Errorf("Expected \"y\", got %v", f.At(1))
	}
	if f.At(5) != nil {
		t.Error("Expected nil for out-of-range index")
	}

	f.Move(0, 2)
	if movedFrom != 0 || movedTo != 2 {
		t.Errorf("Expected move (0, 2) delegated, got (%d, %d)", movedFrom, movedTo)
	}
}
