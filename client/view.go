// Package client renders a fetched schema into a live view tree and keeps
// it synchronized with the server. It is the Go counterpart of the embedded
// browser client: the same binding and update rules, expressed as a plain
// data structure so hosts can drive or test the protocol headlessly.
package client

import (
	"errors"
	"fmt"

	"github.com/artpar/pagekit/core/schema"
	"github.com/rs/zerolog"
)

// Node is one live view element. The renderer produces exactly one node
// per component, in declaration order, under a single root.
type Node struct {
	Role  schema.Role
	ID    string
	Label string

	// Text holds static content for display components, the current
	// value for text inputs and file inputs (filename only), and the
	// displayed text for text outputs.
	Text string

	// Items holds the displayed items of a list output.
	Items []string

	Level     int
	Language  string
	ActionID  string
	Accept    []string
	Monospace bool

	// Hidden marks output nodes that have not received an update yet.
	Hidden bool

	Children []*Node
}

// View is a mounted page: the node tree plus the binding tables that
// connect component identifiers to live nodes. Bindings are created once
// at render time and mutated in place by updates; they are never rebuilt.
type View struct {
	Title string
	Root  *Node

	inputs  map[string]*Node
	outputs map[string]*Node
	logger  zerolog.Logger
}

// Render builds a view from a schema in a single pass. Only the first
// page is rendered; multi-page navigation does not exist on the client.
func Render(s schema.Schema, logger zerolog.Logger) (*View, error) {
	page, ok := s.First()
	if !ok {
		return nil, errors.New("render: schema has no pages")
	}

	v := &View{
		Title:   page.Title,
		Root:    &Node{Role: "root"},
		inputs:  make(map[string]*Node),
		outputs: make(map[string]*Node),
		logger:  logger,
	}

	for _, c := range page.Components {
		n := newNode(c)
		v.Root.Children = append(v.Root.Children, n)

		if c.IsInput() {
			v.inputs[c.ID] = n
		}
		if c.IsOutput() {
			v.outputs[c.ID] = n
		}
	}

	return v, nil
}

func newNode(c schema.Component) *Node {
	n := &Node{
		Role:      c.Role,
		ID:        c.ID,
		Label:     c.Label,
		Level:     c.Level,
		Language:  c.Language,
		ActionID:  c.ActionID,
		Accept:    c.Accept,
		Monospace: c.Monospace,
	}

	switch c.Role {
	case schema.RoleHeading, schema.RoleText, schema.RoleCode, schema.RoleHTML:
		n.Text = c.Content
	case schema.RoleTextOutput, schema.RoleListOutput:
		n.Hidden = true
	}

	return n
}

// SetInput records a new value on a bound input. File inputs take a
// filename, never content.
func (v *View) SetInput(id, value string) error {
	n, ok := v.inputs[id]
	if !ok {
		return fmt.Errorf("set input: no input bound to %q", id)
	}
	n.Text = value
	return nil
}

// Snapshot captures the current value of every bound input. This is the
// atomic read the client performs just before dispatching an action.
func (v *View) Snapshot() map[string]string {
	inputs := make(map[string]string, len(v.inputs))
	for id, n := range v.inputs {
		inputs[id] = n.Text
	}
	return inputs
}

// Invocation assembles the wire request for one action from the current
// input snapshot.
func (v *View) Invocation(actionID string) schema.Invocation {
	return schema.Invocation{
		ID:     actionID,
		Inputs: v.Snapshot(),
	}
}

// OutputText returns the displayed text of a bound text output.
func (v *View) OutputText(id string) (string, bool) {
	n, ok := v.outputs[id]
	if !ok {
		return "", false
	}
	return n.Text, true
}

// OutputItems returns the displayed items of a bound list output.
func (v *View) OutputItems(id string) ([]string, bool) {
	n, ok := v.outputs[id]
	if !ok {
		return nil, false
	}
	return n.Items, true
}

// Apply mutates the view with a response's updates. An update for an
// unbound identifier is reported and skipped; sibling updates in the
// same response are still applied. Applying the same update twice
// leaves the view unchanged.
func (v *View) Apply(updates map[string]schema.Update) error {
	var errs []error

	for id, u := range updates {
		n, ok := v.outputs[id]
		if !ok {
			err := &BindingError{ID: id}
			v.logger.Error().Str("output", id).Msg("update for unbound identifier")
			errs = append(errs, err)
			continue
		}

		switch u.Type {
		case schema.UpdateText:
			n.Text = u.Value
			n.Hidden = false
		case schema.UpdateList:
			items, err := schema.DecodeList(u.Value)
			if err != nil {
				v.logger.Error().Str("output", id).Err(err).Msg("malformed list update")
				errs = append(errs, fmt.Errorf("apply %q: %w", id, err))
				continue
			}
			n.Items = items
			n.Hidden = false
		default:
			errs = append(errs, fmt.Errorf("apply %q: unknown update type %q", id, u.Type))
		}
	}

	return errors.Join(errs...)
}

// BindingError reports an update that referenced an identifier with no
// matching output binding. It never aborts sibling updates.
type BindingError struct {
	ID string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("no output bound to %q", e.ID)
}
