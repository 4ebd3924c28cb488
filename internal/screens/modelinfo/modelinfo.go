package modelinfo

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnboard/internal/churn"
	"github.com/abhisek/churnboard/internal/screen"
	"github.com/abhisek/churnboard/internal/ui/layout"
	"github.com/abhisek/churnboard/internal/ui/theme"
)

// ModelInfoScreen lists the loaded artifacts and the feature schema.
type ModelInfoScreen struct {
	info   churn.ModelInfo
	offset int
}

var _ screen.Screen = (*ModelInfoScreen)(nil)
var _ screen.KeyHintProvider = (*ModelInfoScreen)(nil)

// New creates the screen.
func New(info churn.ModelInfo) *ModelInfoScreen {
	return &ModelInfoScreen{info: info}
}

func (s *ModelInfoScreen) Init() tea.Cmd {
	return nil
}

func (s *ModelInfoScreen) Title() string {
	return "Model"
}

func (s *ModelInfoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ModelInfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < len(s.info.Columns)-1 {
			s.offset++
		}
	}
	return s, nil
}

// Unmapped returns the schema columns the form does not produce.
func (s *ModelInfoScreen) Unmapped() []string {
	var out []string
	for _, c := range s.info.Columns {
		if !c.Mapped {
			out = append(out, c.Name)
		}
	}
	return out
}

func (s *ModelInfoScreen) View(width, height int) string {
	var b strings.Builder

	row := func(k, v string) {
		b.WriteString(theme.FieldLabel.Render(fmt.Sprintf("%-12s", k)))
		b.WriteString(theme.Body.Render(v))
		b.WriteString("\n")
	}
	row("Classifier", s.info.ClassifierKind)
	row("Scaler", s.info.ScalerKind)
	row("Features", fmt.Sprint(s.info.NumFeatures))
	if len(s.info.Columns) != s.info.NumFeatures {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("Schema has %d columns; predictions will fail.", len(s.info.Columns))))
		b.WriteString("\n")
	}
	if n := len(s.Unmapped()); n > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("%d column(s) are not produced by the form and are encoded as 0.", n)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Feature Columns"))
	b.WriteString("\n")

	// Header, summary and card chrome take about 12 lines.
	visible := height - 12
	if visible < 3 {
		visible = 3
	}
	end := s.offset + visible
	if end > len(s.info.Columns) {
		end = len(s.info.Columns)
	}
	for i := s.offset; i < end; i++ {
		c := s.info.Columns[i]
		line := fmt.Sprintf("%3d  %s", i, c.Name)
		if c.Mapped {
			b.WriteString(theme.Body.Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(line + "  (unmapped)"))
		}
		b.WriteString("\n")
	}
	if end < len(s.info.Columns) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("… %d more", len(s.info.Columns)-end)))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		theme.Card.Width(min(width-4, 72)).Render(strings.TrimRight(b.String(), "\n")),
	)
}
