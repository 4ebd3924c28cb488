package components

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnboard/internal/ui/theme"
)

// Band is a colored range on the gauge axis.
type Band int

const (
	BandLow    Band = iota // [0, 50)
	BandMedium             // [50, 75)
	BandHigh               // [75, 100]
)

// BandFor returns the band containing percent.
func BandFor(percent float64) Band {
	switch {
	case percent < 50:
		return BandLow
	case percent < 75:
		return BandMedium
	default:
		return BandHigh
	}
}

// Color returns the band's fill color.
func (b Band) Color() color.Color {
	switch b {
	case BandMedium:
		return theme.BandMedium
	case BandHigh:
		return theme.BandHigh
	}
	return theme.BandLow
}

// Gauge draws a 0-100 axis with three colored bands and a needle.
type Gauge struct {
	Title   string
	Percent float64
	Churn   bool
	Width   int
}

// NewGauge creates a gauge with its needle at percent.
func NewGauge(title string, percent float64, churn bool, width int) Gauge {
	return Gauge{
		Title:   title,
		Percent: percent,
		Churn:   churn,
		Width:   width,
	}
}

func (g Gauge) barWidth() int {
	if g.Width < 10 {
		return 10
	}
	return g.Width
}

// NeedleColumn returns the bar cell the needle points at. Out-of-range
// values are pinned to the ends.
func (g Gauge) NeedleColumn() int {
	w := g.barWidth()
	p := g.Percent
	if math.IsNaN(p) || p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return int(math.Round(p / 100 * float64(w-1)))
}

// NeedleColor is red for a churn prediction and green otherwise.
func (g Gauge) NeedleColor() color.Color {
	if g.Churn {
		return theme.Error
	}
	return theme.Success
}

// cellBand returns the band of the value at the center of cell i.
func (g Gauge) cellBand(i int) Band {
	w := g.barWidth()
	return BandFor((float64(i) + 0.5) * 100 / float64(w))
}

// View renders the gauge.
func (g Gauge) View() string {
	w := g.barWidth()
	needle := lipgloss.NewStyle().Foreground(g.NeedleColor()).Bold(true)

	var b strings.Builder

	if g.Title != "" {
		b.WriteString(theme.FieldLabel.Render(g.Title))
		b.WriteString("  ")
		b.WriteString(needle.Render(fmt.Sprintf("%.2f%%", g.Percent)))
		b.WriteString("\n")
	}

	col := g.NeedleColumn()
	b.WriteString(strings.Repeat(" ", col))
	b.WriteString(needle.Render("▼"))
	b.WriteString("\n")

	start := 0
	for i := 1; i <= w; i++ {
		if i < w && g.cellBand(i) == g.cellBand(start) {
			continue
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(g.cellBand(start).Color()).
			Render(strings.Repeat("█", i-start)))
		start = i
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(g.axis()))
	return b.String()
}

// axis lays out tick labels under the band boundaries.
func (g Gauge) axis() string {
	w := g.barWidth()
	line := []rune(strings.Repeat(" ", w+3))
	for _, tick := range []int{0, 50, 75, 100} {
		label := fmt.Sprint(tick)
		pos := int(math.Round(float64(tick) / 100 * float64(w-1)))
		if tick == 100 {
			pos = w - len(label)
		} else if tick != 0 {
			pos -= len(label) / 2
		}
		copy(line[pos:], []rune(label))
	}
	return strings.TrimRight(string(line), " ")
}
