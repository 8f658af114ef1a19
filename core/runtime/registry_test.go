package runtime

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/artpar/pagekit/core/schema"
)

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(map[string]Handler{
		"greet": func(ctx context.Context, ac *Context) error { return nil },
	})

	if _, err := reg.Lookup("greet"); err != nil {
		t.Errorf("Lookup(greet) error: %v", err)
	}

	_, err := reg.Lookup("nope")
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Lookup(nope) error = %v, want ErrUnknownAction", err)
	}
}

func TestDispatch(t *testing.T) {
	out := NewOutputHandle[string]("greet")
	in := NewInputHandle[string]("name")

	reg := NewRegistry(map[string]Handler{
		"greet-action": func(ctx context.Context, ac *Context) error {
			name, err := Read(ac, in)
			if err != nil {
				return err
			}
			return Write(ac, out, "Hello, "+name+"!")
		},
	})

	updates, err := reg.Dispatch(context.Background(), schema.Invocation{
		ID:     "greet-action",
		Inputs: map[string]string{"name": "Ada"},
	})
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if got := updates["greet"]; got.Type != schema.UpdateText || got.Value != "Hello, Ada!" {
		t.Errorf("updates[greet] = %+v, want TEXT Hello, Ada!", got)
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	reg := NewRegistry(nil)

	_, err := reg.Dispatch(context.Background(), schema.Invocation{ID: "missing"})
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Dispatch() error = %v, want ErrUnknownAction", err)
	}
}

func TestDispatchHandlerError(t *testing.T) {
	reg := NewRegistry(map[string]Handler{
		"boom": func(ctx context.Context, ac *Context) error {
			return fmt.Errorf("upstream unavailable")
		},
	})

	_, err := reg.Dispatch(context.Background(), schema.Invocation{ID: "boom"})
	var herr *HandlerError
	if !errors.As(err, &herr) {
		t.Fatalf("Dispatch() error = %v, want HandlerError", err)
	}
	if herr.Action != "boom" {
		t.Errorf("HandlerError.Action = %q, want boom", herr.Action)
	}
}

func TestDispatchRecoversPanic(t *testing.T) {
	reg := NewRegistry(map[string]Handler{
		"panic": func(ctx context.Context, ac *Context) error {
			panic("handler exploded")
		},
		"ok": func(ctx context.Context, ac *Context) error {
			return ac.Update("out", "still serving")
		},
	})

	_, err := reg.Dispatch(context.Background(), schema.Invocation{ID: "panic"})
	var herr *HandlerError
	if !errors.As(err, &herr) {
		t.Fatalf("Dispatch() error = %v, want HandlerError from panic", err)
	}

	// The registry keeps serving after a panic.
	updates, err := reg.Dispatch(context.Background(), schema.Invocation{ID: "ok"})
	if err != nil {
		t.Fatalf("Dispatch() after panic error: %v", err)
	}
	if updates["out"].Value != "still serving" {
		t.Error("registry did not keep serving after a recovered panic")
	}
}

func TestDispatchContextIsolation(t *testing.T) {
	out := NewOutputHandle[string]("tick")
	reg := NewRegistry(map[string]Handler{
		"tick": func(ctx context.Context, ac *Context) error {
			if len(ac.Updates()) != 0 {
				return fmt.Errorf("context not fresh")
			}
			return Write(ac, out, "t")
		},
	})

	for i := 0; i < 3; i++ {
		if _, err := reg.Dispatch(context.Background(), schema.Invocation{ID: "tick"}); err != nil {
			t.Fatalf("invocation %d: %v", i, err)
		}
	}
}
