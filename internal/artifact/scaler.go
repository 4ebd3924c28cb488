package artifact

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Scaler kinds understood by the loader.
const (
	KindStandardScaler = "standard"
	KindMinMaxScaler   = "minmax"
)

// Scaler is a fitted numeric transform over a fixed, ordered set of columns.
type Scaler interface {
	// Transform maps raw values to the scaled space. The input is not modified.
	Transform(x []float64) ([]float64, error)

	// FeatureNames returns the columns the scaler was fitted on, in order.
	// It may be empty if the trainer did not record them.
	FeatureNames() []string

	// NumFeatures returns the input width.
	NumFeatures() int

	// Kind returns the artifact kind, e.g. "standard".
	Kind() string
}

// affineScaler computes x*mul + add per column. Both standard and min-max
// scaling reduce to this form.
type affineScaler struct {
	kind  string
	names []string
	mul   []float64
	add   []float64
}

// NewStandardScaler builds a scaler computing (x - mean) / scale. Zero scale
// entries are treated as 1, matching constant columns at fit time.
func NewStandardScaler(names []string, mean, scale []float64) (Scaler, error) {
	if len(mean) == 0 || len(mean) != len(scale) {
		return nil, fmt.Errorf("standard scaler: mean has %d values, scale has %d", len(mean), len(scale))
	}
	mul := make([]float64, len(scale))
	add := make([]float64, len(scale))
	for i := range scale {
		s := scale[i]
		if s == 0 {
			s = 1
		}
		mul[i] = 1 / s
		add[i] = -mean[i] / s
	}
	return newAffine(KindStandardScaler, names, mul, add)
}

// NewMinMaxScaler builds a scaler computing x*scale + offset, where offset is
// the fitted min_ attribute.
func NewMinMaxScaler(names []string, offset, scale []float64) (Scaler, error) {
	if len(offset) == 0 || len(offset) != len(scale) {
		return nil, fmt.Errorf("minmax scaler: min has %d values, scale has %d", len(offset), len(scale))
	}
	mul := make([]float64, len(scale))
	add := make([]float64, len(offset))
	copy(mul, scale)
	copy(add, offset)
	return newAffine(KindMinMaxScaler, names, mul, add)
}

func newAffine(kind string, names []string, mul, add []float64) (Scaler, error) {
	if len(names) > 0 && len(names) != len(mul) {
		return nil, fmt.Errorf("%s scaler: %d feature names for %d columns", kind, len(names), len(mul))
	}
	if floats.HasNaN(mul) || floats.HasNaN(add) {
		return nil, fmt.Errorf("%s scaler: parameters contain NaN", kind)
	}
	for i := range mul {
		if math.IsInf(mul[i], 0) || math.IsInf(add[i], 0) {
			return nil, fmt.Errorf("%s scaler: parameter %d is infinite", kind, i)
		}
	}
	n := make([]string, len(names))
	copy(n, names)
	return &affineScaler{kind: kind, names: n, mul: mul, add: add}, nil
}

func (s *affineScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.mul) {
		return nil, shapeError("scaler input", len(x), len(s.mul))
	}
	out := make([]float64, len(x))
	floats.MulTo(out, x, s.mul)
	floats.Add(out, s.add)
	return out, nil
}

func (s *affineScaler) FeatureNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *affineScaler) NumFeatures() int { return len(s.mul) }

func (s *affineScaler) Kind() string { return s.kind }
