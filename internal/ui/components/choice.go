package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnboard/internal/ui/theme"
)

// ChoiceStyle controls how a Choice lays out its options.
type ChoiceStyle int

const (
	// ChoiceRadio shows every option on one line.
	ChoiceRadio ChoiceStyle = iota
	// ChoiceSelect shows only the selected option between arrows.
	ChoiceSelect
)

// Choice is a single-select field. Exactly one option is always selected.
type Choice struct {
	Label    string
	Options  []string
	Selected int
	Style    ChoiceStyle
	Focused  bool
}

// NewChoice creates a choice field with the given option selected.
func NewChoice(label string, options []string, selected int, style ChoiceStyle) Choice {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Choice{
		Label:    label,
		Options:  options,
		Selected: selected,
		Style:    style,
	}
}

// Update moves the selection. Selection wraps around at either end.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if !c.Focused || len(c.Options) == 0 {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		c.Selected = (c.Selected - 1 + len(c.Options)) % len(c.Options)
	case "right", "l", "space":
		c.Selected = (c.Selected + 1) % len(c.Options)
	}

	return c, nil
}

// Value returns the selected option, or "" when there are no options.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the label and the options.
func (c Choice) View() string {
	label := theme.FieldLabel.Render(c.Label)
	if c.Focused {
		label = theme.Selected.Render("▸ " + c.Label)
	}

	if c.Style == ChoiceSelect {
		arrow := lipgloss.NewStyle().Foreground(theme.TextDim)
		value := theme.Unselected.Render(c.Value())
		if c.Focused {
			arrow = arrow.Foreground(theme.Primary)
			value = theme.Selected.Render(c.Value())
		}
		return label + "\n" + arrow.Render("◂ ") + value + arrow.Render(" ▸")
	}

	parts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		switch {
		case i == c.Selected && c.Focused:
			parts[i] = theme.Selected.Render("(●) " + opt)
		case i == c.Selected:
			parts[i] = theme.Unselected.Bold(true).Render("(●) " + opt)
		default:
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("( ) " + opt)
		}
	}
	return label + "\n" + strings.Join(parts, "  ")
}
