// Package listview implements a virtualized, reorderable list engine,
// decoupled from any particular rendering backend.
//
// The engine maintains a lazily-computed table of per-row heights and
// cumulative offsets over an index-addressable backing sequence, a sorted
// multi-selection model, and an animated-preview drag-to-reorder gesture.
// It consumes pointer and keyboard input once per frame and produces draw
// instructions (visible row rects, an insertion cursor during drags); the
// host owns all actual drawing.
//
// # Basic usage
//
//	seq := listview.NewSliceSequence(func() string { return "new item" },
//		"alpha", "beta", "gamma")
//
//	ctrl := listview.NewController(seq,
//		listview.MultiSelect(true),
//		listview.UniformRowHeight(20),
//	)
//
//	// Once per frame:
//	ctrl.HandleInput(input, listview.Rect{X: 0, Y: 0, W: 300, H: 400})
//	for _, row := range ctrl.VisibleRows() {
//		drawRow(seq.At(row.Index), row.Rect, ctrl.IsSelected(row.Index))
//	}
//	if cursor, ok := ctrl.InsertionCursor(); ok {
//		drawInsertionLine(cursor)
//	}
//
// Rows with non-uniform heights install a height callback:
//
//	ctrl.SetHeightFunc(func(i int) (float32, bool) {
//		item, ok := store.Lookup(i)
//		if !ok {
//			return 0, false // row vanished; skipped this frame
//		}
//		return item.Height(), true
//	})
//
// The callback's ok result is how externally-deleted rows are reported:
// the engine skips them for the frame instead of failing, and a drag that
// encounters one cancels cleanly.
//
// # Backing sequences
//
// Controllers are polymorphic over the Sequence interface. SliceSequence
// adapts an in-memory slice; FuncSequence adapts an external property store
// through callbacks. Sequences that also implement Generational expose a
// generation counter the controller checks every frame, so data mutated
// outside the controller invalidates cached geometry automatically.
//
// The backend/term package contains a terminal host adapter, and example/
// a runnable demo.
package listview
