package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/churnboard/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
	OnPress  func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		OnPress: onPress,
	}
}

// Update fires OnPress when the focused, enabled button receives enter.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused || b.Disabled {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "space":
			if b.OnPress != nil {
				return b, b.OnPress()
			}
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := "  " + b.Label + " "
	if b.Focused && !b.Disabled {
		return theme.ButtonActive.Render("▸ " + b.Label + " ")
	}
	return theme.ButtonInactive.Render(label)
}
