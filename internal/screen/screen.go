package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/churnboard/internal/ui/layout"
)

// Screen is one page of the dashboard. The router owns a stack of them and
// draws the top one between the shared header and footer.
type Screen interface {
	Init() tea.Cmd

	// Update may return a different Screen to replace itself.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area only; width and height exclude the
	// header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
