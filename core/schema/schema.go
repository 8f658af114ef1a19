// Package schema defines the core types for declarative page definitions.
// A Schema is the immutable description of an application's pages, their
// components, and their actions. It is the contract shared by the builder,
// the server, and the client: the builder produces it, the server serializes
// it, and the client renders it.
package schema

// Schema is the root description of an application.
// Once built it never changes; there is no runtime add/remove/reorder.
type Schema struct {
	Pages []Page `json:"pages"`
}

// Page is one declared page: a title plus ordered components.
// Actions is a redundant projection of the action-role components,
// kept for quick enumeration without walking the component list.
type Page struct {
	Title      string      `json:"title"`
	Components []Component `json:"components"`
	Actions    []Action    `json:"actions"`
}

// Action is a named, server-resident unit of behavior keyed by identifier.
// The invocation handler is not serializable and lives only in the
// runtime registry, never in the schema.
type Action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// First returns the first page of the schema.
// Clients render only the first page; there is no multi-page routing.
func (s Schema) First() (Page, bool) {
	if len(s.Pages) == 0 {
		return Page{}, false
	}
	return s.Pages[0], true
}

// Component returns the component with the given ID on this page.
func (p Page) Component(id string) (Component, bool) {
	for _, c := range p.Components {
		if c.ID == id {
			return c, true
		}
	}
	return Component{}, false
}

// HasID reports whether id is already claimed on this page.
// Components and actions share one namespace.
func (p Page) HasID(id string) bool {
	if _, ok := p.Component(id); ok {
		return true
	}
	for _, a := range p.Actions {
		if a.ID == id {
			return true
		}
	}
	return false
}
