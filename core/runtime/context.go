// Package runtime executes action handlers against invocation inputs.
// It maps action identifiers to handler closures and gives each
// invocation an isolated context for reading declared inputs and
// queuing output updates.
package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/artpar/pagekit/core/schema"
)

// Handler is one named unit of server-side behavior. It reads inputs and
// queues updates through the per-invocation Context; any error it returns
// becomes a failed response for that invocation only.
type Handler func(ctx context.Context, ac *Context) error

// Context is the per-invocation execution context. It is created fresh
// for each invocation and discarded after producing a response; no state
// crosses invocations. It is not safe for concurrent use, which is fine:
// each invocation owns its context exclusively.
type Context struct {
	inputs  map[string]string
	updates map[string]schema.Update
}

// NewContext creates a context over one invocation's input snapshot.
func NewContext(inputs map[string]string) *Context {
	return &Context{
		inputs:  inputs,
		updates: make(map[string]schema.Update),
	}
}

// Read resolves a handle against the invocation's inputs and decodes the
// raw string value to the handle's declared type. The decode is explicit
// and fallible; there is no unchecked narrowing.
func Read[T Value](ac *Context, h InputHandle[T]) (T, error) {
	var zero T

	raw, ok := ac.inputs[h.ID()]
	if !ok {
		return zero, &MissingInputError{ID: h.ID()}
	}

	v, err := decode[T](raw)
	if err != nil {
		return zero, &InputTypeError{
			ID:   h.ID(),
			Raw:  raw,
			Want: fmt.Sprintf("%T", zero),
			Err:  err,
		}
	}
	return v, nil
}

// Write queues an update for the output named by h. Calling Write twice
// for the same handle overwrites the previously queued value; last write
// wins within one invocation.
func Write[T any](ac *Context, h OutputHandle[T], value T) error {
	return ac.Update(h.ID(), value)
}

// Update queues an update for the output with the given identifier.
// A string produces a TEXT update carrying the string verbatim. A string
// slice or raw-JSON slice produces a LIST update whose value is a JSON
// array. Any other value type fails with UnsupportedOutputTypeError.
func (ac *Context) Update(id string, value any) error {
	switch v := value.(type) {
	case string:
		ac.updates[id] = schema.Update{Type: schema.UpdateText, Value: v}
	case []string:
		ac.updates[id] = schema.Update{Type: schema.UpdateList, Value: schema.EncodeList(v)}
	case []json.RawMessage:
		items := make([]string, len(v))
		for i, r := range v {
			items[i] = string(r)
		}
		ac.updates[id] = schema.Update{Type: schema.UpdateList, Value: schema.EncodeList(items)}
	default:
		return &UnsupportedOutputTypeError{ID: id, Type: fmt.Sprintf("%T", value)}
	}
	return nil
}

// Updates returns the final identifier-to-update mapping for this
// invocation. Order carries no semantic meaning.
func (ac *Context) Updates() map[string]schema.Update {
	out := make(map[string]schema.Update, len(ac.updates))
	for id, u := range ac.updates {
		out[id] = u
	}
	return out
}

func decode[T Value](raw string) (T, error) {
	var out T
	var err error

	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *int:
		*p, err = strconv.Atoi(strings.TrimSpace(raw))
	case *int64:
		*p, err = strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	case *float64:
		*p, err = strconv.ParseFloat(strings.TrimSpace(raw), 64)
	case *bool:
		*p, err = strconv.ParseBool(strings.TrimSpace(raw))
	}
	return out, err
}
