package runtime

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned by registry lookups for identifiers
// no handler was registered under. The transport layer maps it to a
// not-found response.
var ErrUnknownAction = errors.New("unknown action")

// MissingInputError reports a read of an input identifier absent from
// the invocation's input map.
type MissingInputError struct {
	ID string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input %q not present in invocation", e.ID)
}

// InputTypeError reports a raw input value that failed to decode to the
// type declared by its handle.
type InputTypeError struct {
	ID   string
	Raw  string
	Want string
	Err  error
}

func (e *InputTypeError) Error() string {
	return fmt.Sprintf("input %q: cannot decode %q as %s: %v", e.ID, e.Raw, e.Want, e.Err)
}

func (e *InputTypeError) Unwrap() error { return e.Err }

// UnsupportedOutputTypeError reports an update value of a type that has
// no wire representation.
type UnsupportedOutputTypeError struct {
	ID   string
	Type string
}

func (e *UnsupportedOutputTypeError) Error() string {
	return fmt.Sprintf("output %q: unsupported update value type %s", e.ID, e.Type)
}

// HandlerError wraps a failure raised by handler logic, including
// recovered panics. It is caught at the dispatch boundary and surfaced
// as a server-error response; it never crashes the process.
type HandlerError struct {
	Action string
	Err    error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("action %q: %v", e.Action, e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }
