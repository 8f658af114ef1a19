package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UpdateType tags the kind of an output update.
type UpdateType string

const (
	// UpdateText replaces an output's displayed text.
	UpdateText UpdateType = "TEXT"

	// UpdateList replaces an output's item list. Value holds a JSON array.
	UpdateList UpdateType = "LIST"
)

// Update is a server-issued instruction to change one output component's
// displayed value. For LIST updates Value is a serialized JSON array.
type Update struct {
	Type  UpdateType `json:"type"`
	Value string     `json:"value"`
}

// Invocation is a single client-initiated request to run one action with
// a snapshot of input values. Only string values cross the wire; file
// inputs contribute a filename, never content.
type Invocation struct {
	ID     string            `json:"id"`
	Inputs map[string]string `json:"inputs"`
}

// Response is the result of one invocation: either success with the
// queued updates, or failure with an error message.
type Response struct {
	Success bool              `json:"success"`
	Updates map[string]Update `json:"updates,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// EncodeList serializes items into the JSON array carried by a LIST update.
// Items that are already valid JSON are embedded verbatim; plain strings
// are quoted and escaped.
func EncodeList(items []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		if json.Valid([]byte(item)) {
			b.WriteString(item)
			continue
		}
		quoted, _ := json.Marshal(item)
		b.Write(quoted)
	}
	b.WriteByte(']')
	return b.String()
}

// DecodeList parses a LIST update value back into display items.
// JSON strings decode to their text; any other element keeps its
// compact JSON form.
func DecodeList(value string) ([]string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return nil, fmt.Errorf("decode list value: %w", err)
	}

	items := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			items = append(items, s)
			continue
		}
		items = append(items, string(r))
	}
	return items, nil
}
