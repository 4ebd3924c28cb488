package churn

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/churnboard/internal/artifact"
)

// ScaleRecord replaces the continuous columns of rec with their scaled values,
// in place. Other columns are untouched. A record can be scaled only once.
func ScaleRecord(rec *EncodedRecord, s artifact.Scaler) error {
	if rec.scaled {
		return &SchemaMismatchError{Err: errors.New("record is already scaled")}
	}

	if names := s.FeatureNames(); len(names) > 0 && !slices.Equal(names, ContinuousColumns) {
		return &SchemaMismatchError{Err: fmt.Errorf("scaler was fitted on %q, want %q", names, ContinuousColumns)}
	}
	if s.NumFeatures() != len(ContinuousColumns) {
		return &SchemaMismatchError{Err: fmt.Errorf("scaler takes %d columns, want %d", s.NumFeatures(), len(ContinuousColumns))}
	}

	idx := make([]int, len(ContinuousColumns))
	raw := make([]float64, len(ContinuousColumns))
	for i, col := range ContinuousColumns {
		j, ok := rec.schema.Index(col)
		if !ok {
			return &SchemaMismatchError{Column: col, Err: errors.New("missing from record")}
		}
		idx[i] = j
		raw[i] = rec.values[j]
	}

	scaled, err := s.Transform(raw)
	if err != nil {
		return &SchemaMismatchError{Err: err}
	}
	if len(scaled) != len(raw) {
		return &SchemaMismatchError{Err: fmt.Errorf("scaler returned %d values, want %d", len(scaled), len(raw))}
	}

	for i, j := range idx {
		rec.values[j] = scaled[i]
	}
	rec.scaled = true
	return nil
}
