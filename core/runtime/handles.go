package runtime

// Value constrains the types an input handle can decode to.
// Every input crosses the wire as a string; the handle's type parameter
// decides how that string is decoded inside a handler.
type Value interface {
	string | int | int64 | float64 | bool
}

// InputHandle is a typed capability token naming one input component.
// It carries no value itself; it is resolved against the invocation's
// input map at execution time via Read.
//
// Handles are normally obtained from builder.Builder when the component
// is declared. NewInputHandle exists for adapters and tests.
type InputHandle[T Value] struct {
	id string
}

// NewInputHandle creates a handle for the given component identifier.
func NewInputHandle[T Value](id string) InputHandle[T] {
	return InputHandle[T]{id: id}
}

// ID returns the component identifier this handle names.
func (h InputHandle[T]) ID() string { return h.id }

// OutputHandle is a typed capability token naming one output component.
// It is consumed only inside action handlers via Write.
type OutputHandle[T any] struct {
	id string
}

// NewOutputHandle creates a handle for the given component identifier.
func NewOutputHandle[T any](id string) OutputHandle[T] {
	return OutputHandle[T]{id: id}
}

// ID returns the component identifier this handle names.
func (h OutputHandle[T]) ID() string { return h.id }
