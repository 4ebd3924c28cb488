package churn

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassifier returns canned answers.
type stubClassifier struct {
	label    int
	prob     float64
	labelErr error
	probErr  error
	rows     [][]float64
	names    []string
}

func (s *stubClassifier) PredictLabel(row []float64) (int, error) {
	s.rows = append(s.rows, row)
	return s.label, s.labelErr
}

func (s *stubClassifier) PredictProbability(row []float64) (float64, error) {
	return s.prob, s.probErr
}

func (s *stubClassifier) NumFeatures() int { return len(trainedColumns) }
func (s *stubClassifier) Kind() string     { return "stub" }

func (s *stubClassifier) FeatureNames() []string { return s.names }

func scaledRecord(t *testing.T) *EncodedRecord {
	t.Helper()
	rec, err := mustEncoder(t).Encode(highRiskProfile())
	require.NoError(t, err)
	require.NoError(t, ScaleRecord(rec, identityScaler(t)))
	return rec
}

func TestInvoke(t *testing.T) {
	clf := &stubClassifier{label: 1, prob: 0.823}
	rec := scaledRecord(t)

	res, err := Invoke(rec, clf)
	require.NoError(t, err)
	assert.Equal(t, Churn, res.Label)
	assert.True(t, res.IsChurn())
	assert.InDelta(t, 82.3, res.ChurnProbabilityPercent, 1e-9)

	require.Len(t, clf.rows, 1)
	assert.Equal(t, rec.Values(), clf.rows[0])
}

func TestInvokeBounds(t *testing.T) {
	for _, p := range []float64{0, 1} {
		res, err := Invoke(scaledRecord(t), &stubClassifier{label: 0, prob: p})
		require.NoError(t, err)
		assert.Equal(t, NoChurn, res.Label)
		assert.InDelta(t, p*100, res.ChurnProbabilityPercent, 1e-12)
	}
}

func TestInvokeFailures(t *testing.T) {
	tests := []struct {
		name string
		clf  *stubClassifier
	}{
		{"label error", &stubClassifier{labelErr: errors.New("shape mismatch")}},
		{"probability error", &stubClassifier{probErr: errors.New("shape mismatch")}},
		{"label out of range", &stubClassifier{label: 2, prob: 0.5}},
		{"negative label", &stubClassifier{label: -1, prob: 0.5}},
		{"probability above one", &stubClassifier{label: 1, prob: 1.2}},
		{"probability below zero", &stubClassifier{label: 0, prob: -0.01}},
		{"probability NaN", &stubClassifier{label: 0, prob: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Invoke(scaledRecord(t), tt.clf)
			require.ErrorIs(t, err, ErrInferenceFailure)
			assert.Equal(t, PredictionResult{}, res)
		})
	}
}

func TestInvokeRequiresScaledRecord(t *testing.T) {
	rec, err := mustEncoder(t).Encode(highRiskProfile())
	require.NoError(t, err)

	_, err = Invoke(rec, &stubClassifier{label: 1, prob: 0.9})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "Churn", Churn.String())
	assert.Equal(t, "No churn", NoChurn.String())
}
