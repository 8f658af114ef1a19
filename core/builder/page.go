package builder

import (
	"github.com/artpar/pagekit/core/runtime"
	"github.com/artpar/pagekit/core/schema"
)

// PageBuilder declares components for one page. Every operation pushes
// one component onto the page; input and output operations additionally
// return the typed handle used inside action handlers.
//
// For every operation, id may be empty to have one generated from a
// role-specific prefix and the builder's counter.
type PageBuilder struct {
	b          *Builder
	title      string
	components []schema.Component
	actions    []schema.Action
}

// TextInput declares a single-line text input.
func (p *PageBuilder) TextInput(label, id string) runtime.InputHandle[string] {
	return TextInputAs[string](p, label, id)
}

// TextInputAs declares a text input whose value decodes to T inside
// handlers. The wire value stays a string; the handle carries the type.
func TextInputAs[T runtime.Value](p *PageBuilder, label, id string) runtime.InputHandle[T] {
	id = p.add(schema.Component{
		Role:  schema.RoleTextInput,
		ID:    id,
		Label: label,
	}, "text-input")
	return runtime.NewInputHandle[T](id)
}

// FileInput declares a file picker restricted to the given type filters.
// Only the chosen filename reaches handlers, never file content.
func (p *PageBuilder) FileInput(label, id string, accept ...string) runtime.InputHandle[string] {
	id = p.add(schema.Component{
		Role:   schema.RoleFileInput,
		ID:     id,
		Label:  label,
		Accept: accept,
	}, "file-input")
	return runtime.NewInputHandle[string](id)
}

// TextOutput declares a text display, hidden until first updated.
// monospace requests fixed-width rendering.
func (p *PageBuilder) TextOutput(label, id string, monospace bool) runtime.OutputHandle[string] {
	id = p.add(schema.Component{
		Role:      schema.RoleTextOutput,
		ID:        id,
		Label:     label,
		Monospace: monospace,
	}, "text-output")
	return runtime.NewOutputHandle[string](id)
}

// ListOutput declares an item-list display, hidden until first updated.
func (p *PageBuilder) ListOutput(label, id string, monospace bool) runtime.OutputHandle[[]string] {
	id = p.add(schema.Component{
		Role:      schema.RoleListOutput,
		ID:        id,
		Label:     label,
		Monospace: monospace,
	}, "list-output")
	return runtime.NewOutputHandle[[]string](id)
}

// Action registers fn under one identifier and inserts an action
// component at the current position, so the trigger renders inline in
// declaration order. The component and the page's action entry always
// share the identifier; they cannot be registered independently.
func (p *PageBuilder) Action(label, id string, fn runtime.Handler) {
	id = p.add(schema.Component{
		Role:  schema.RoleAction,
		ID:    id,
		Label: label,
	}, "action")

	// add already reported a duplicate; keep the projection and the
	// registry consistent with the component list regardless.
	p.components[len(p.components)-1].ActionID = id
	p.actions = append(p.actions, schema.Action{ID: id, Label: label})

	if _, exists := p.b.handlers[id]; exists {
		p.b.problemf("page %q: action %q already registered on another page", p.title, id)
		return
	}
	if fn == nil {
		p.b.problemf("page %q: action %q has no handler", p.title, id)
		return
	}
	p.b.handlers[id] = fn
}

// Heading declares a static heading. level must be in [1,6].
func (p *PageBuilder) Heading(text string, level int, id string) {
	if level < 1 || level > 6 {
		p.b.problemf("page %q: heading %q: level %d outside [1,6]", p.title, text, level)
	}
	p.add(schema.Component{
		Role:    schema.RoleHeading,
		ID:      id,
		Content: text,
		Level:   level,
	}, "heading")
}

// Text declares a static paragraph.
func (p *PageBuilder) Text(content, id string) {
	p.add(schema.Component{
		Role:    schema.RoleText,
		ID:      id,
		Content: content,
	}, "text")
}

// Code declares a static code block with an optional language tag.
func (p *PageBuilder) Code(content, language, id string) {
	p.add(schema.Component{
		Role:     schema.RoleCode,
		ID:       id,
		Content:  content,
		Language: language,
	}, "code")
}

// Divider declares a horizontal separator.
func (p *PageBuilder) Divider() {
	p.add(schema.Component{Role: schema.RoleDivider}, "divider")
}

// HTML declares raw markup embedded verbatim.
func (p *PageBuilder) HTML(content, id string) {
	p.add(schema.Component{
		Role:    schema.RoleHTML,
		ID:      id,
		Content: content,
	}, "html")
}

// add assigns the identifier, checks page-level uniqueness across the
// shared component and action namespace, and appends the component.
// It returns the final identifier so callers can mint handles from it.
func (p *PageBuilder) add(c schema.Component, prefix string) string {
	if c.ID == "" {
		c.ID = p.b.nextID(prefix)
	}

	if p.hasID(c.ID) {
		p.b.problemf("page %q: identifier %q already in use", p.title, c.ID)
	}

	p.components = append(p.components, c)
	return c.ID
}

func (p *PageBuilder) hasID(id string) bool {
	for _, c := range p.components {
		if c.ID == id {
			return true
		}
	}
	for _, a := range p.actions {
		if a.ID == id {
			return true
		}
	}
	return false
}
