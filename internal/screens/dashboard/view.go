package dashboard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnboard/internal/ui/components"
	"github.com/abhisek/churnboard/internal/ui/layout"
	"github.com/abhisek/churnboard/internal/ui/theme"
)

// maxResultWidth caps the result card and gauge.
const maxResultWidth = 40

func (s *DashboardScreen) View(width, height int) string {
	profile := s.renderSection("Customer Profile", fieldGender, fieldContract)
	account := s.renderSection("Account", fieldContract, fieldPredict)
	form := lipgloss.JoinHorizontal(lipgloss.Top, profile, "  ", account) +
		"\n\n" + "  " + s.button.View()

	// Padding takes four columns and the gap three.
	_, panel, stacked := layout.SplitColumns(width-4, maxResultWidth+3)
	result := s.renderResult(panel - 3)

	var body string
	switch {
	case result == "":
		body = form
	case stacked:
		body = form + "\n\n" + result
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, form, "   ", result)
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(body)
}

// renderSection renders the fields in [from, to) under a heading.
func (s *DashboardScreen) renderSection(title string, from, to field) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	for f := from; f < to; f++ {
		b.WriteString("\n")
		if f.isChoice() {
			b.WriteString(s.choices[f].View())
		} else {
			b.WriteString(s.number(f).View())
		}
	}
	return theme.Card.Render(b.String())
}

// renderResult returns "" until the first prediction has been triggered.
func (s *DashboardScreen) renderResult(width int) string {
	switch {
	case s.failed:
		return components.FailureNotice(s.detail, width)
	case s.result != nil:
		card := components.NewResultCard(*s.result, width).View()
		if s.pending {
			card += "\n" + theme.Hint.Render("Updating…")
		}
		return card
	case s.pending:
		return theme.Hint.Render("Predicting…")
	}
	return ""
}
