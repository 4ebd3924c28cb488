package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/churnboard/internal/churn"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typed(s string) tea.KeyPressMsg {
	r := []rune(s)
	return tea.KeyPressMsg{Code: r[0], Text: s}
}

func TestChoiceWrapsAround(t *testing.T) {
	c := NewChoice("Gender", []string{"Male", "Female"}, 0, ChoiceRadio)
	c.Focused = true

	c, _ = c.Update(key(tea.KeyLeft))
	if c.Value() != "Female" {
		t.Errorf("expected left from first option to wrap to Female, got %q", c.Value())
	}
	c, _ = c.Update(key(tea.KeyRight))
	if c.Value() != "Male" {
		t.Errorf("expected right to wrap back to Male, got %q", c.Value())
	}
}

func TestChoiceIgnoresKeysWhenUnfocused(t *testing.T) {
	c := NewChoice("Contract", []string{"Month-to-month", "One year", "Two year"}, 1, ChoiceSelect)

	c, _ = c.Update(key(tea.KeyRight))
	if c.Selected != 1 {
		t.Errorf("expected selection unchanged, got %d", c.Selected)
	}
}

func TestChoiceOutOfRangeDefault(t *testing.T) {
	c := NewChoice("Partner", []string{"Yes", "No"}, 5, ChoiceRadio)
	if c.Selected != 0 {
		t.Errorf("expected out-of-range default to select the first option, got %d", c.Selected)
	}
}

func TestChoiceSelectShowsOnlySelected(t *testing.T) {
	c := NewChoice("Payment Method", []string{"Electronic check", "Mailed check"}, 1, ChoiceSelect)
	view := c.View()
	if !strings.Contains(view, "Mailed check") {
		t.Error("expected selected option in view")
	}
	if strings.Contains(view, "Electronic check") {
		t.Error("expected unselected option hidden in select style")
	}
}

func TestNumberInputRejectsLetters(t *testing.T) {
	n := NewNumberInput("Tenure (months)", "12", false, 3)
	n.Focus()

	n, _ = n.Update(typed("x"))
	if n.Value() != "12" {
		t.Errorf("expected letters dropped, got %q", n.Value())
	}
}

func TestNumberInputDecimalPoint(t *testing.T) {
	whole := NewNumberInput("Tenure (months)", "1", false, 3)
	whole.Focus()
	whole, _ = whole.Update(typed("."))
	if whole.Value() != "1" {
		t.Errorf("expected decimal point rejected on integer field, got %q", whole.Value())
	}

	dec := NewNumberInput("Monthly Charges", "70", true, 8)
	dec.Focus()
	dec, _ = dec.Update(typed("."))
	dec, _ = dec.Update(typed("5"))
	dec, _ = dec.Update(typed("."))
	if dec.Value() != "70.5" {
		t.Errorf("expected a single decimal point, got %q", dec.Value())
	}
	v, err := dec.Float()
	if err != nil || v != 70.5 {
		t.Errorf("expected 70.5, got %v (%v)", v, err)
	}
}

func TestNumberInputEditClearsInvalid(t *testing.T) {
	n := NewNumberInput("Total Charges", "99999", true, 8)
	n.Focus()
	n.MarkInvalid()
	if !n.Invalid() {
		t.Fatal("expected invalid after MarkInvalid")
	}

	n, _ = n.Update(key(tea.KeyBackspace))
	if n.Invalid() {
		t.Error("expected edit to clear invalid marker")
	}
}

func TestButtonFiresOnlyWhenFocusedAndEnabled(t *testing.T) {
	pressed := 0
	b := NewButton("Predict Now", func() tea.Cmd {
		pressed++
		return nil
	})

	b.Update(key(tea.KeyEnter))
	if pressed != 0 {
		t.Error("unfocused button should not fire")
	}

	b.Focused = true
	b.Disabled = true
	b.Update(key(tea.KeyEnter))
	if pressed != 0 {
		t.Error("disabled button should not fire")
	}

	b.Disabled = false
	b.Update(key(tea.KeyEnter))
	if pressed != 1 {
		t.Errorf("expected one press, got %d", pressed)
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		percent float64
		want    Band
	}{
		{0, BandLow},
		{49.99, BandLow},
		{50, BandMedium},
		{74.99, BandMedium},
		{75, BandHigh},
		{100, BandHigh},
	}
	for _, tt := range tests {
		if got := BandFor(tt.percent); got != tt.want {
			t.Errorf("BandFor(%v) = %d, want %d", tt.percent, got, tt.want)
		}
	}
}

func TestNeedleColumn(t *testing.T) {
	tests := []struct {
		percent float64
		want    int
	}{
		{0, 0},
		{50, 25},
		{100, 50},
		{-3, 0},
		{140, 50},
	}
	for _, tt := range tests {
		g := NewGauge("", tt.percent, false, 51)
		if got := g.NeedleColumn(); got != tt.want {
			t.Errorf("NeedleColumn(%v) = %d, want %d", tt.percent, got, tt.want)
		}
	}
}

func TestNeedleColorFollowsLabel(t *testing.T) {
	churnGauge := NewGauge("", 40, true, 40)
	stayGauge := NewGauge("", 90, false, 40)
	if churnGauge.NeedleColor() == stayGauge.NeedleColor() {
		t.Error("expected needle color to depend on the predicted label")
	}
}

func TestGaugeAxisTicks(t *testing.T) {
	g := NewGauge("", 10, false, 40)
	axis := g.axis()
	for _, tick := range []string{"0", "50", "75", "100"} {
		if !strings.Contains(axis, tick) {
			t.Errorf("expected tick %s in axis %q", tick, axis)
		}
	}
}

func TestDisplayedProbability(t *testing.T) {
	tests := []struct {
		name   string
		result churn.PredictionResult
		want   string
	}{
		{"churn shows churn probability", churn.PredictionResult{Label: churn.Churn, ChurnProbabilityPercent: 82.3}, "82.30"},
		{"no churn shows complement", churn.PredictionResult{Label: churn.NoChurn, ChurnProbabilityPercent: 18.0}, "82.00"},
		{"no churn at zero", churn.PredictionResult{Label: churn.NoChurn, ChurnProbabilityPercent: 0}, "100.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPercent(DisplayedProbability(tt.result)); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResultCardText(t *testing.T) {
	view := NewResultCard(churn.PredictionResult{Label: churn.Churn, ChurnProbabilityPercent: 82.3}, 40).View()
	if !strings.Contains(view, "High Risk of Churn") {
		t.Error("expected high risk headline")
	}
	if !strings.Contains(view, "Probability: 82.30%") {
		t.Error("expected displayed probability")
	}

	view = NewResultCard(churn.PredictionResult{Label: churn.NoChurn, ChurnProbabilityPercent: 18}, 40).View()
	if !strings.Contains(view, "Low Risk of Churn") {
		t.Error("expected low risk headline")
	}
	if !strings.Contains(view, "Probability: 82.00%") {
		t.Error("expected complement probability")
	}
}
