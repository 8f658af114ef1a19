package builder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/artpar/pagekit/core/runtime"
	"github.com/artpar/pagekit/core/schema"
)

func noop(ctx context.Context, ac *runtime.Context) error { return nil }

func TestBuildGreeter(t *testing.T) {
	b := New()
	p := b.Page("Greeter")

	name := p.TextInput("Your name", "name")
	greet := p.TextOutput("Greeting", "greet", false)
	p.Action("Greet", "greet-action", func(ctx context.Context, ac *runtime.Context) error {
		v, err := runtime.Read(ac, name)
		if err != nil {
			return err
		}
		return runtime.Write(ac, greet, "Hello, "+v+"!")
	})

	s, reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	page, ok := s.First()
	if !ok {
		t.Fatal("schema has no pages")
	}
	if len(page.Components) != 3 {
		t.Fatalf("page has %d components, want 3", len(page.Components))
	}

	wantRoles := []schema.Role{schema.RoleTextInput, schema.RoleTextOutput, schema.RoleAction}
	wantIDs := []string{"name", "greet", "greet-action"}
	for i, c := range page.Components {
		if c.Role != wantRoles[i] || c.ID != wantIDs[i] {
			t.Errorf("component[%d] = %s %q, want %s %q", i, c.Role, c.ID, wantRoles[i], wantIDs[i])
		}
	}

	if len(page.Actions) != 1 || page.Actions[0].ID != "greet-action" {
		t.Errorf("action projection = %v, want one entry greet-action", page.Actions)
	}

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

func TestDuplicateIdentifierFailsBuild(t *testing.T) {
	tests := []struct {
		name    string
		declare func(p *PageBuilder)
	}{
		{
			name: "component vs component",
			declare: func(p *PageBuilder) {
				p.TextInput("A", "dup")
				p.TextOutput("B", "dup", false)
			},
		},
		{
			name: "component vs action",
			declare: func(p *PageBuilder) {
				p.TextInput("A", "dup")
				p.Action("Run", "dup", noop)
			},
		},
		{
			name: "action vs component",
			declare: func(p *PageBuilder) {
				p.Action("Run", "dup", noop)
				p.Text("hello", "dup")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.declare(b.Page("P"))

			_, _, err := b.Build()
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Build() error = %v, want ConfigurationError", err)
			}
			if !strings.Contains(cfgErr.Error(), `"dup"`) {
				t.Errorf("error %q does not name the duplicate identifier", cfgErr.Error())
			}
		})
	}
}

func TestDuplicateAcrossPagesAllowed(t *testing.T) {
	b := New()
	b.Page("One").TextInput("A", "name")
	b.Page("Two").TextInput("A", "name")

	if _, _, err := b.Build(); err != nil {
		t.Errorf("identifiers are page-scoped; cross-page reuse should build, got %v", err)
	}
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		level int
		valid bool
	}{
		{0, false}, {1, true}, {3, true}, {6, true}, {7, false},
	}

	for _, tt := range tests {
		b := New()
		b.Page("P").Heading("Title", tt.level, "")
		_, _, err := b.Build()
		if tt.valid && err != nil {
			t.Errorf("level %d: Build() error = %v, want success", tt.level, err)
		}
		if !tt.valid {
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("level %d: Build() error = %v, want ConfigurationError", tt.level, err)
			}
		}
	}
}

func TestGeneratedIdentifiers(t *testing.T) {
	b := New()
	p := b.Page("P")

	h1 := p.TextInput("A", "")
	p.Divider()
	h2 := p.TextOutput("B", "", false)

	if h1.ID() != "text-input-1" {
		t.Errorf("first generated id = %q, want text-input-1", h1.ID())
	}
	if h2.ID() != "text-output-3" {
		t.Errorf("counter must be shared across kinds; got %q, want text-output-3", h2.ID())
	}

	// A fresh builder starts its own counter.
	b2 := New()
	if got := b2.Page("Q").TextInput("A", ""); got.ID() != "text-input-1" {
		t.Errorf("second builder first id = %q, want text-input-1", got.ID())
	}
}

func TestActionDoubleInsert(t *testing.T) {
	b := New()
	p := b.Page("P")
	p.Text("before", "")
	p.Action("Run", "run", noop)
	p.Text("after", "")

	s, reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	page := s.Pages[0]
	if page.Components[1].Role != schema.RoleAction {
		t.Error("action component not inserted at declaration position")
	}
	if page.Components[1].ActionID != "run" {
		t.Errorf("action component back-reference = %q, want run", page.Components[1].ActionID)
	}
	if reg.Len() != 1 {
		t.Errorf("registry has %d handlers, want 1", reg.Len())
	}
	if _, err := reg.Lookup("run"); err != nil {
		t.Errorf("Lookup(run) error: %v", err)
	}
}

func TestNilHandlerFailsBuild(t *testing.T) {
	b := New()
	b.Page("P").Action("Run", "run", nil)

	_, _, err := b.Build()
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Build() error = %v, want ConfigurationError", err)
	}
}

func TestBuilderSingleUse(t *testing.T) {
	b := New()
	b.Page("P").Text("hi", "")

	if _, _, err := b.Build(); err != nil {
		t.Fatalf("first Build() error: %v", err)
	}
	if _, _, err := b.Build(); err == nil {
		t.Error("second Build() should fail; builders are single-use")
	}
}

func TestTypedInputHandle(t *testing.T) {
	b := New()
	p := b.Page("P")
	count := TextInputAs[int](p, "Count", "count")

	if _, _, err := b.Build(); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	ac := runtime.NewContext(map[string]string{"count": "7"})
	got, err := runtime.Read(ac, count)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != 7 {
		t.Errorf("Read() = %d, want 7", got)
	}
}

func TestFileInputAccept(t *testing.T) {
	b := New()
	b.Page("P").FileInput("Data", "data", ".csv", ".tsv")

	s, _, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	c := s.Pages[0].Components[0]
	if c.Role != schema.RoleFileInput {
		t.Fatalf("component role = %s, want file_input", c.Role)
	}
	if len(c.Accept) != 2 || c.Accept[0] != ".csv" {
		t.Errorf("accept filters = %v, want [.csv .tsv]", c.Accept)
	}
}
