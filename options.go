package listview

// Option configures a list controller.
type Option func(*options)

// options holds all configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for controller options.
//
// Example:
//
//	var OptCustomThing = listview.NewOptKey("customThing", defaultValue)
//
//	ctrl := listview.NewController(seq, listview.WithOpt(OptCustomThing, value))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// DefaultRowHeight is the row height used when no height callback and no
// explicit uniform height are configured.
const DefaultRowHeight float32 = 20

var (
	// OptMultiSelect enables multi-selection (range and toggle select).
	OptMultiSelect = NewOptKey("multiSelect", false)

	// OptDraggable enables drag-to-reorder.
	OptDraggable = NewOptKey("draggable", true)

	// OptDragThreshold is the pointer travel in pixels before a press
	// becomes a drag.
	OptDragThreshold = NewOptKey("dragThreshold", float32(4))

	// OptUniformRowHeight sets a fixed height for all rows. Ignored when a
	// height callback is installed.
	OptUniformRowHeight = NewOptKey("uniformRowHeight", DefaultRowHeight)

	// OptScrollStep is the scroll distance per mouse wheel notch.
	OptScrollStep = NewOptKey("scrollStep", float32(30))

	// OptEdgeScrollMargin is the distance from the viewport edge within
	// which an active drag auto-scrolls the list.
	OptEdgeScrollMargin = NewOptKey("edgeScrollMargin", float32(16))
)

// MultiSelect enables or disables multi-selection.
func MultiSelect(enabled bool) Option {
	return WithOpt(OptMultiSelect, enabled)
}

// Draggable enables or disables drag-to-reorder.
func Draggable(enabled bool) Option {
	return WithOpt(OptDraggable, enabled)
}

// DragThreshold sets the pointer travel before a press becomes a drag.
func DragThreshold(pixels float32) Option {
	return WithOpt(OptDragThreshold, pixels)
}

// UniformRowHeight sets a fixed height for all rows.
func UniformRowHeight(h float32) Option {
	return WithOpt(OptUniformRowHeight, h)
}

// ScrollStep sets the scroll distance per mouse wheel notch.
func ScrollStep(step float32) Option {
	return WithOpt(OptScrollStep, step)
}
