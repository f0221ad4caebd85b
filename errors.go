package listview

import "errors"

// Error taxonomy for the list engine.
//
// ErrInvalidOperation and ErrOutOfRange signal caller mistakes and surface
// as return values. Stale rows (backing data deleted out from under the
// list mid-frame) are not errors at all: the height provider reports them
// via its ok result and the engine skips the row for one frame.
var (
	// ErrInvalidOperation is returned when an operation is not valid in the
	// current configuration or state, e.g. a range-select on a list without
	// multi-select, or starting a drag on a non-draggable list.
	ErrInvalidOperation = errors.New("listview: invalid operation")

	// ErrOutOfRange is returned when an index outside [0, count) is passed
	// to an operation that cannot treat it as a no-op.
	ErrOutOfRange = errors.New("listview: index out of range")
)
