package runtime

import (
	"context"
	"fmt"

	"github.com/artpar/pagekit/core/schema"
)

// Registry maps action identifiers to their handlers. It is populated
// once by the builder and read-only thereafter, so concurrent
// invocations share no mutable state through it.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates a registry over the given handler map.
// The map is copied; later mutation of the argument has no effect.
func NewRegistry(handlers map[string]Handler) *Registry {
	m := make(map[string]Handler, len(handlers))
	for id, fn := range handlers {
		m[id] = fn
	}
	return &Registry{handlers: m}
}

// Lookup returns the handler registered under id.
func (r *Registry) Lookup(id string) (Handler, error) {
	fn, ok := r.handlers[id]
	if !ok {
		return nil, fmt.Errorf("action %q: %w", id, ErrUnknownAction)
	}
	return fn, nil
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int { return len(r.handlers) }

// Dispatch runs the invocation's action against a fresh context and
// returns the queued updates. Handler errors and panics are converted to
// a HandlerError; an unregistered identifier yields ErrUnknownAction.
// The process never crashes on handler failure.
func (r *Registry) Dispatch(ctx context.Context, inv schema.Invocation) (updates map[string]schema.Update, err error) {
	fn, err := r.Lookup(inv.ID)
	if err != nil {
		return nil, err
	}

	ac := NewContext(inv.Inputs)

	defer func() {
		if rec := recover(); rec != nil {
			updates = nil
			err = &HandlerError{Action: inv.ID, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	if herr := fn(ctx, ac); herr != nil {
		return nil, &HandlerError{Action: inv.ID, Err: herr}
	}

	return ac.Updates(), nil
}
