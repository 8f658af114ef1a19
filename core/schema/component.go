package schema

// Role identifies what kind of UI element a component is.
// The role decides which payload fields are meaningful and how the
// client renders and binds the component.
type Role string

const (
	// RoleTextInput is a single-line text entry bound on the read path.
	RoleTextInput Role = "text_input"

	// RoleFileInput is a file picker. Only the filename crosses the wire;
	// binary upload is out of scope.
	RoleFileInput Role = "file_input"

	// RoleTextOutput is a text display bound on the write path.
	// Hidden until first updated.
	RoleTextOutput Role = "text_output"

	// RoleListOutput is an item-list display bound on the write path.
	// Hidden until first updated.
	RoleListOutput Role = "list_output"

	// RoleAction is an inline trigger for a server-side action.
	RoleAction Role = "action"

	// RoleHeading is a static heading with a level in [1,6].
	RoleHeading Role = "heading"

	// RoleText is a static paragraph.
	RoleText Role = "text"

	// RoleCode is a static code block with an optional language tag.
	RoleCode Role = "code"

	// RoleDivider is a horizontal separator.
	RoleDivider Role = "divider"

	// RoleHTML is raw markup embedded verbatim.
	RoleHTML Role = "html"
)

// Component is one declared UI element, tagged by role and uniquely
// identified within its page. Only the fields matching the role carry
// meaning; the rest stay at their zero value and are omitted on the wire.
type Component struct {
	Role Role   `json:"role"`
	ID   string `json:"id"`

	// Label for inputs, outputs, and action triggers.
	Label string `json:"label,omitempty"`

	// Accept lists accepted type filters for file inputs (e.g. ".csv").
	Accept []string `json:"accept,omitempty"`

	// Content is the free text of heading, text, code, and html components.
	Content string `json:"content,omitempty"`

	// Level is the heading level, 1 through 6.
	Level int `json:"level,omitempty"`

	// Language is the code language tag for code components.
	Language string `json:"language,omitempty"`

	// ActionID back-references the action this component triggers.
	// Always equal to ID for action-role components.
	ActionID string `json:"action_id,omitempty"`

	// Monospace requests fixed-width rendering for output components.
	Monospace bool `json:"monospace,omitempty"`
}

// IsInput reports whether the component binds on the client read path.
func (c Component) IsInput() bool {
	return c.Role == RoleTextInput || c.Role == RoleFileInput
}

// IsOutput reports whether the component binds on the client write path.
func (c Component) IsOutput() bool {
	return c.Role == RoleTextOutput || c.Role == RoleListOutput
}
