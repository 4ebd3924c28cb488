package churn

import "github.com/abhisek/churnboard/internal/artifact"

// EncodedRecord is one row laid out in feature-schema order. Its column set
// and order always equal the schema it was encoded against.
type EncodedRecord struct {
	schema artifact.Schema
	values []float64
	scaled bool
}

// Columns returns the column names in order.
func (r *EncodedRecord) Columns() []string {
	return r.schema.Columns()
}

// Values returns a copy of the row.
func (r *EncodedRecord) Values() []float64 {
	out := make([]float64, len(r.values))
	copy(out, r.values)
	return out
}

// Value returns the value of the named column.
func (r *EncodedRecord) Value(name string) (float64, bool) {
	i, ok := r.schema.Index(name)
	if !ok {
		return 0, false
	}
	return r.values[i], true
}

// Len returns the number of columns.
func (r *EncodedRecord) Len() int {
	return len(r.values)
}

// Scaled reports whether the continuous columns have been scaled.
func (r *EncodedRecord) Scaled() bool {
	return r.scaled
}
