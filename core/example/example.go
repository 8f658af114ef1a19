// Package example declares a small demo page exercising every component
// kind. The serve command mounts it when no user application is wired in,
// and the end-to-end tests drive it over the wire.
package example

import (
	"context"
	"fmt"
	"strings"

	"github.com/artpar/pagekit/core/builder"
	"github.com/artpar/pagekit/core/runtime"
	"github.com/artpar/pagekit/core/schema"
)

// Greeter builds the canonical three-component page: a name input, a
// greeting output, and the action connecting them.
func Greeter() (schema.Schema, *runtime.Registry, error) {
	b := builder.New()
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

	return b.Build()
}

// Showcase builds a page touching every component role, used for manual
// poking at the embedded browser client.
func Showcase() (schema.Schema, *runtime.Registry, error) {
	b := builder.New()
	p := b.Page("Showcase")

	p.Heading("Showcase", 1, "")
	p.Text("Every component kind on one page.", "")
	p.Divider()

	name := p.TextInput("Your name", "name")
	times := builder.TextInputAs[int](p, "Repeat", "times")
	file := p.FileInput("Data file", "file", ".csv", ".txt")

	greeting := p.TextOutput("Greeting", "greeting", false)
	echoed := p.TextOutput("Echoed file", "echoed", true)
	lines := p.ListOutput("Lines", "lines", false)

	p.Action("Greet", "greet", func(ctx context.Context, ac *runtime.Context) error {
		who, err := runtime.Read(ac, name)
		if err != nil {
			return err
		}
		n, err := runtime.Read(ac, times)
		if err != nil {
			return err
		}
		if n < 1 {
			return fmt.Errorf("repeat must be at least 1, got %d", n)
		}

		out := make([]string, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, "Hello, "+who+"!")
		}
		if err := runtime.Write(ac, greeting, strings.Join(out, " ")); err != nil {
			return err
		}
		return runtime.Write(ac, lines, out)
	})

	p.Action("Echo file", "echo-file", func(ctx context.Context, ac *runtime.Context) error {
		fn, err := runtime.Read(ac, file)
		if err != nil {
			return err
		}
		return runtime.Write(ac, echoed, "received filename: "+fn)
	})

	p.Divider()
	p.Code("curl -s localhost:8080/schema | jq .", "shell", "")
	p.HTML(`<small>rendered from raw markup</small>`, "")

	return b.Build()
}
