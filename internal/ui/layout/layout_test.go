package layout

import (
	"strings"
	"testing"
)

func TestHeaderShowsTitleAndModel(t *testing.T) {
	h := RenderHeader("Churn Prediction", "tree_ensemble", 120)
	if !strings.Contains(h, "Churn Prediction") {
		t.Error("expected screen title")
	}
	if !strings.Contains(h, "tree_ensemble") {
		t.Error("expected model kind")
	}
}

func TestFooterJoinsHints(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Tab", Description: "Next field"}, {Key: "Ctrl+P", Description: "Predict"}}, 100)
	for _, want := range []string{"Tab", "Next field", "Ctrl+P", "Predict"} {
		if !strings.Contains(f, want) {
			t.Errorf("expected %q in footer", want)
		}
	}
}

func TestSizeThresholds(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected narrow terminal to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected minimum size to be accepted")
	}
	if !IsCompactWidth(CompactWidthThreshold - 1) {
		t.Error("expected compact below threshold")
	}
}

func TestClipLines(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"a\nb\nc", 2, "a\nb"},
		{"a\nb", 5, "a\nb"},
		{"a", 0, ""},
	}
	for _, tt := range tests {
		if got := ClipLines(tt.in, tt.n); got != tt.want {
			t.Errorf("ClipLines(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestSplitColumns(t *testing.T) {
	form, panel, stacked := SplitColumns(150, 40)
	if stacked || panel != 40 || form != 110 {
		t.Errorf("wide: got form=%d panel=%d stacked=%v", form, panel, stacked)
	}

	form, panel, stacked = SplitColumns(90, 40)
	if !stacked || panel != 40 || form != 90 {
		t.Errorf("compact: got form=%d panel=%d stacked=%v", form, panel, stacked)
	}
}
