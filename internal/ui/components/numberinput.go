package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnboard/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for numeric form fields. Keys that
// cannot appear in a number are dropped before they reach the text model.
type NumberInput struct {
	Label   string
	Model   textinput.Model
	Decimal bool
	Hint    string
	invalid bool
}

// NewNumberInput creates an unfocused numeric input holding value.
func NewNumberInput(label, value string, decimal bool, charLimit int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.SetValue(value)
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return NumberInput{
		Label:   label,
		Model:   ti,
		Decimal: decimal,
	}
}

// Focus focuses the underlying text model.
func (n *NumberInput) Focus() tea.Cmd {
	return n.Model.Focus()
}

// Blur removes focus.
func (n *NumberInput) Blur() {
	n.Model.Blur()
}

// Focused reports whether the input has focus.
func (n NumberInput) Focused() bool {
	return n.Model.Focused()
}

// Update handles messages. Editing clears the invalid marker.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
		if !n.accepts(kmsg.Text) {
			return n, nil
		}
		n.invalid = false
	}
	if pmsg, ok := msg.(tea.PasteMsg); ok {
		if !n.accepts(pmsg.Content) {
			return n, nil
		}
		n.invalid = false
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "backspace", "delete":
			n.invalid = false
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// accepts reports whether text may be inserted at the current value.
func (n NumberInput) accepts(text string) bool {
	dots := strings.Count(n.Model.Value(), ".")
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && n.Decimal && dots == 0:
			dots++
		default:
			return false
		}
	}
	return true
}

// Value returns the raw text.
func (n NumberInput) Value() string {
	return n.Model.Value()
}

// SetValue replaces the text.
func (n *NumberInput) SetValue(v string) {
	n.Model.SetValue(v)
}

// Float parses the text as a number.
func (n NumberInput) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(n.Model.Value()), 64)
}

// MarkInvalid flags the field until it is next edited.
func (n *NumberInput) MarkInvalid() {
	n.invalid = true
}

// Invalid reports whether the field is flagged.
func (n NumberInput) Invalid() bool {
	return n.invalid
}

// View renders the label, the text model and the hint.
func (n NumberInput) View() string {
	label := theme.FieldLabel.Render(n.Label)
	if n.Model.Focused() {
		label = theme.Selected.Render("▸ " + n.Label)
	}

	view := n.Model.View()
	if n.invalid {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	if n.Hint != "" {
		view += "  " + theme.Hint.Render(n.Hint)
	}
	return label + "\n" + view
}
