package runtime

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/artpar/pagekit/core/schema"
)

func TestReadString(t *testing.T) {
	ac := NewContext(map[string]string{"name": "Ada"})
	h := NewInputHandle[string]("name")

	got, err := Read(ac, h)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != "Ada" {
		t.Errorf("Read() = %q, want %q", got, "Ada")
	}
}

func TestReadMissingInput(t *testing.T) {
	ac := NewContext(map[string]string{})
	h := NewInputHandle[string]("name")

	_, err := Read(ac, h)
	var miss *MissingInputError
	if !errors.As(err, &miss) {
		t.Fatalf("Read() error = %v, want MissingInputError", err)
	}
	if miss.ID != "name" {
		t.Errorf("MissingInputError.ID = %q, want %q", miss.ID, "name")
	}
}

func TestReadTypedDecode(t *testing.T) {
	ac := NewContext(map[string]string{
		"count": "42",
		"ratio": "0.5",
		"flag":  "true",
		"big":   "9000000000",
	})

	if got, err := Read(ac, NewInputHandle[int]("count")); err != nil || got != 42 {
		t.Errorf("Read[int] = %d, %v; want 42, nil", got, err)
	}
	if got, err := Read(ac, NewInputHandle[float64]("ratio")); err != nil || got != 0.5 {
		t.Errorf("Read[float64] = %v, %v; want 0.5, nil", got, err)
	}
	if got, err := Read(ac, NewInputHandle[bool]("flag")); err != nil || !got {
		t.Errorf("Read[bool] = %v, %v; want true, nil", got, err)
	}
	if got, err := Read(ac, NewInputHandle[int64]("big")); err != nil || got != 9000000000 {
		t.Errorf("Read[int64] = %d, %v; want 9000000000, nil", got, err)
	}
}

func TestReadTypeError(t *testing.T) {
	ac := NewContext(map[string]string{"count": "not a number"})

	_, err := Read(ac, NewInputHandle[int]("count"))
	var typeErr *InputTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("Read() error = %v, want InputTypeError", err)
	}
	if typeErr.ID != "count" || typeErr.Raw != "not a number" {
		t.Errorf("InputTypeError = %+v, want ID count, Raw preserved", typeErr)
	}
}

func TestWriteText(t *testing.T) {
	ac := NewContext(nil)
	h := NewOutputHandle[string]("greet")

	if err := Write(ac, h, "x"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	updates := ac.Updates()
	u, ok := updates["greet"]
	if !ok {
		t.Fatal("Updates() missing key greet")
	}
	if u.Type != schema.UpdateText || u.Value != "x" {
		t.Errorf("update = %+v, want TEXT x", u)
	}
}

func TestWriteLastWins(t *testing.T) {
	ac := NewContext(nil)
	h := NewOutputHandle[string]("greet")

	if err := Write(ac, h, "x"); err != nil {
		t.Fatal(err)
	}
	if err := Write(ac, h, "y"); err != nil {
		t.Fatal(err)
	}

	updates := ac.Updates()
	if len(updates) != 1 {
		t.Fatalf("Updates() has %d entries, want 1", len(updates))
	}
	if updates["greet"].Value != "y" {
		t.Errorf("update value = %q, want %q (last write wins)", updates["greet"].Value, "y")
	}
}

func TestWriteList(t *testing.T) {
	ac := NewContext(nil)
	h := NewOutputHandle[[]string]("items")

	if err := Write(ac, h, []string{"a", "b"}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	u := ac.Updates()["items"]
	if u.Type != schema.UpdateList {
		t.Errorf("update type = %q, want LIST", u.Type)
	}
	if u.Value != `["a","b"]` {
		t.Errorf("update value = %s, want [\"a\",\"b\"]", u.Value)
	}
}

func TestWriteRawJSONList(t *testing.T) {
	ac := NewContext(nil)
	h := NewOutputHandle[[]json.RawMessage]("rows")

	if err := Write(ac, h, []json.RawMessage{json.RawMessage(`{"n":1}`)}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	u := ac.Updates()["rows"]
	if u.Value != `[{"n":1}]` {
		t.Errorf("update value = %s, want raw fragment embedded verbatim", u.Value)
	}
}

func TestUpdateUnsupportedType(t *testing.T) {
	ac := NewContext(nil)

	err := ac.Update("out", 3.14)
	var unsupported *UnsupportedOutputTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Update() error = %v, want UnsupportedOutputTypeError", err)
	}
	if unsupported.ID != "out" {
		t.Errorf("UnsupportedOutputTypeError.ID = %q, want out", unsupported.ID)
	}
}

func TestUpdatesIsolatedCopy(t *testing.T) {
	ac := NewContext(nil)
	if err := ac.Update("a", "1"); err != nil {
		t.Fatal(err)
	}

	first := ac.Updates()
	delete(first, "a")

	if _, ok := ac.Updates()["a"]; !ok {
		t.Error("Updates() must return a copy, not the live map")
	}
}
