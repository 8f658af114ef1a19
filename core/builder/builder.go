// Package builder constructs schemas declaratively while enforcing
// identifier invariants. Declaration order is render order; every
// violation is collected and surfaced at Build, never at runtime.
package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/artpar/pagekit/core/runtime"
	"github.com/artpar/pagekit/core/schema"
)

// Builder accumulates pages, components, and action handlers, then emits
// an immutable schema plus a read-only handler registry. A Builder is a
// construction-time object: it is not safe for concurrent use and must
// not be reused after Build.
type Builder struct {
	pages    []*PageBuilder
	handlers map[string]runtime.Handler
	seq      uint64
	problems []string
	built    bool
}

// New creates an empty builder. The identifier counter is scoped to this
// instance, so independently built applications never collide.
func New() *Builder {
	return &Builder{
		handlers: make(map[string]runtime.Handler),
	}
}

// Page starts a new page. Components declared through the returned
// PageBuilder are appended to it in declaration order.
func (b *Builder) Page(title string) *PageBuilder {
	p := &PageBuilder{b: b, title: title}
	b.pages = append(b.pages, p)
	return p
}

// Build produces the immutable schema and the handler registry.
// It fails with a ConfigurationError if any declaration violated an
// invariant (duplicate identifier, invalid heading level). The builder
// must not be used again after Build.
func (b *Builder) Build() (schema.Schema, *runtime.Registry, error) {
	if b.built {
		return schema.Schema{}, nil, &ConfigurationError{
			Problems: []string{"builder already built; builders are single-use"},
		}
	}
	b.built = true

	if len(b.problems) > 0 {
		return schema.Schema{}, nil, &ConfigurationError{Problems: b.problems}
	}

	s := schema.Schema{Pages: make([]schema.Page, 0, len(b.pages))}
	for _, p := range b.pages {
		s.Pages = append(s.Pages, schema.Page{
			Title:      p.title,
			Components: append([]schema.Component(nil), p.components...),
			Actions:    append([]schema.Action(nil), p.actions...),
		})
	}

	return s, runtime.NewRegistry(b.handlers), nil
}

// nextID generates an identifier from a role-specific prefix and the
// builder's shared monotonic counter.
func (b *Builder) nextID(prefix string) string {
	b.seq++
	return prefix + "-" + strconv.FormatUint(b.seq, 10)
}

func (b *Builder) problemf(format string, args ...any) {
	b.problems = append(b.problems, fmt.Sprintf(format, args...))
}

// ConfigurationError reports build-time invariant violations. It is
// fatal: an application that fails to build must not start.
type ConfigurationError struct {
	Problems []string
}

// Error returns all collected problems.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid page configuration:\n  - %s", strings.Join(e.Problems, "\n  - "))
}
