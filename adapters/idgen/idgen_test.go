package idgen

import "testing"

func TestUUIDUnique(t *testing.T) {
	g := UUID{}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.New()
		if len(id) != 36 {
			t.Fatalf("New() = %q, want 36-char UUID", id)
		}
		if seen[id] {
			t.Fatalf("duplicate UUID %q", id)
		}
		seen[id] = true
	}
}

func TestSequential(t *testing.T) {
	g := NewSequential("inv-")

	if got := g.New(); got != "inv-1" {
		t.Errorf("New() = %q, want inv-1", got)
	}
	if got := g.New(); got != "inv-2" {
		t.Errorf("New() = %q, want inv-2", got)
	}

	g.Reset()
	if got := g.New(); got != "inv-1" {
		t.Errorf("New() after Reset = %q, want inv-1", got)
	}
}
