package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnboard/internal/churn"
	"github.com/abhisek/churnboard/internal/ui/theme"
)

// DisplayedProbability returns the probability of the predicted outcome:
// the churn percentage for a churn prediction, its complement otherwise.
func DisplayedProbability(r churn.PredictionResult) float64 {
	if r.IsChurn() {
		return r.ChurnProbabilityPercent
	}
	return 100 - r.ChurnProbabilityPercent
}

// FormatPercent formats a percentage with two decimals.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// RiskLabel returns the headline for a prediction.
func RiskLabel(r churn.PredictionResult) string {
	if r.IsChurn() {
		return "High Risk of Churn"
	}
	return "Low Risk of Churn"
}

// ResultCard renders a prediction as a colored banner followed by a gauge.
type ResultCard struct {
	Result churn.PredictionResult
	Width  int
}

// NewResultCard creates a result card.
func NewResultCard(r churn.PredictionResult, width int) ResultCard {
	return ResultCard{Result: r, Width: width}
}

// View renders the card.
func (c ResultCard) View() string {
	bg := theme.Success
	if c.Result.IsChurn() {
		bg = theme.Error
	}

	width := c.Width
	if width < 20 {
		width = 20
	}

	banner := lipgloss.NewStyle().
		Background(bg).
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render(RiskLabel(c.Result) + "\n" +
			"Probability: " + FormatPercent(DisplayedProbability(c.Result)) + "%")

	gauge := NewGauge("Churn Probability", c.Result.ChurnProbabilityPercent, c.Result.IsChurn(), width)

	return banner + "\n\n" + gauge.View()
}

// FailureNotice renders the message shown when a prediction could not be made.
func FailureNotice(detail string, width int) string {
	text := "Prediction failed. No result is available for these inputs."
	if detail != "" {
		text += "\n" + detail
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Foreground(theme.Error).
		Width(width).
		Padding(0, 1).
		Render(text)
}
