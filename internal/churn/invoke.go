package churn

import (
	"errors"
	"fmt"
	"math"

	"github.com/abhisek/churnboard/internal/artifact"
)

// Label is the predicted class.
type Label int

const (
	NoChurn Label = 0
	Churn   Label = 1
)

func (l Label) String() string {
	if l == Churn {
		return "Churn"
	}
	return "No churn"
}

// PredictionResult is the outcome of one inference request.
type PredictionResult struct {
	Label Label
	// ChurnProbabilityPercent is the positive-class probability in [0, 100],
	// regardless of which label was predicted.
	ChurnProbabilityPercent float64
}

// IsChurn reports whether churn was predicted.
func (r PredictionResult) IsChurn() bool {
	return r.Label == Churn
}

// Invoke runs the classifier on a scaled record.
func Invoke(rec *EncodedRecord, clf artifact.Classifier) (PredictionResult, error) {
	if !rec.scaled {
		return PredictionResult{}, &SchemaMismatchError{Err: errors.New("record has not been scaled")}
	}
	row := rec.Values()

	label, err := clf.PredictLabel(row)
	if err != nil {
		return PredictionResult{}, &InferenceError{Err: fmt.Errorf("predict label: %w", err)}
	}
	if label != 0 && label != 1 {
		return PredictionResult{}, &InferenceError{Err: fmt.Errorf("classifier returned label %d", label)}
	}

	p, err := clf.PredictProbability(row)
	if err != nil {
		return PredictionResult{}, &InferenceError{Err: fmt.Errorf("predict probability: %w", err)}
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return PredictionResult{}, &InferenceError{Err: fmt.Errorf("classifier returned probability %v", p)}
	}

	return PredictionResult{
		Label:                   Label(label),
		ChurnProbabilityPercent: p * 100,
	}, nil
}
