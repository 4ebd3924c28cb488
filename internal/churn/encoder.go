package churn

import (
	"fmt"

	"github.com/abhisek/churnboard/internal/artifact"
)

// Encoder lays out a RawProfile in the order of a feature schema. The column
// binding is resolved once, at construction.
type Encoder struct {
	schema   artifact.Schema
	getters  []func(*Features) float64 // nil for unmapped columns
	unmapped []string
}

// NewEncoder binds every schema column to a known feature. Columns the
// encoder cannot derive are kept and will always be 0; they are reported by
// Unmapped.
func NewEncoder(schema artifact.Schema) (*Encoder, error) {
	if schema.Len() == 0 {
		return nil, fmt.Errorf("encoder needs a non-empty feature schema")
	}

	known := make(map[string]func(*Features) float64, len(featureColumns))
	for _, fc := range featureColumns {
		known[fc.name] = fc.get
	}

	e := &Encoder{
		schema:  schema,
		getters: make([]func(*Features) float64, schema.Len()),
	}
	for i, col := range schema.Columns() {
		get, ok := known[col]
		if !ok {
			// Unmapped columns encode as 0, matching the training
			// export's fillna(0).
			e.unmapped = append(e.unmapped, col)
			continue
		}
		e.getters[i] = get
	}
	return e, nil
}

// Schema returns the schema records are encoded against.
func (e *Encoder) Schema() artifact.Schema {
	return e.schema
}

// Unmapped returns schema columns that no profile field produces.
func (e *Encoder) Unmapped() []string {
	out := make([]string, len(e.unmapped))
	copy(out, e.unmapped)
	return out
}

// Encode validates p and returns its unscaled record. Invalid profiles fail
// with an *InputError and produce no record.
func (e *Encoder) Encode(p RawProfile) (*EncodedRecord, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f := FeaturesFrom(p)
	values := make([]float64, len(e.getters))
	for i, get := range e.getters {
		if get != nil {
			values[i] = get(&f)
		}
	}
	return &EncodedRecord{schema: e.schema, values: values}, nil
}
