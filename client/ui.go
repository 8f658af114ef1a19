package client

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// UI ties a schema client to a mounted view: fetch once, render once,
// then dispatch actions and apply the updates they return.
type UI struct {
	client *Client
	view   *View
	logger zerolog.Logger
}

// NewUI creates a UI over the given client. Mount must be called before
// any dispatch.
func NewUI(c *Client, logger zerolog.Logger) *UI {
	return &UI{client: c, logger: logger}
}

// Mount fetches the schema and renders the first page.
func (u *UI) Mount(ctx context.Context) error {
	s, err := u.client.FetchSchema(ctx)
	if err != nil {
		return err
	}

	v, err := Render(s, u.logger)
	if err != nil {
		return err
	}

	u.view = v
	u.logger.Debug().Str("page", v.Title).Int("components", len(v.Root.Children)).Msg("mounted")
	return nil
}

// View returns the mounted view, or nil before Mount.
func (u *UI) View() *View {
	return u.view
}

// SetInput records a value on a bound input of the mounted view.
func (u *UI) SetInput(id, value string) error {
	if u.view == nil {
		return fmt.Errorf("set input: not mounted")
	}
	return u.view.SetInput(id, value)
}

// Dispatch snapshots the bound inputs, invokes the action, and applies
// the returned updates to the view. A failed action surfaces as a
// DispatchError carrying the server's message; it is reported once and
// never retried.
func (u *UI) Dispatch(ctx context.Context, actionID string) error {
	if u.view == nil {
		return fmt.Errorf("dispatch: not mounted")
	}

	inv := u.view.Invocation(actionID)
	resp, err := u.client.Invoke(ctx, inv)
	if err != nil {
		return err
	}

	if !resp.Success {
		u.logger.Warn().Str("action", actionID).Str("error", resp.Error).Msg("action failed")
		return &DispatchError{Action: actionID, Message: resp.Error}
	}

	return u.view.Apply(resp.Updates)
}

// DispatchError is a failed action response: the server ran (or refused)
// the action and reported why.
type DispatchError struct {
	Action  string
	Message string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("action %q failed: %s", e.Action, e.Message)
}
