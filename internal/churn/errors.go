package churn

import (
	"errors"
	"fmt"
)

// Sentinels for the three request-scoped failure kinds. Match them with
// errors.Is; the concrete types carry the detail.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrSchemaMismatch   = errors.New("schema mismatch")
	ErrInferenceFailure = errors.New("inference failure")
)

// InputError reports a missing or out-of-range raw answer.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// SchemaMismatchError reports an encoded record that does not fit what the
// scaler or classifier expects.
type SchemaMismatchError struct {
	Column string
	Err    error
}

func (e *SchemaMismatchError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema mismatch: column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("schema mismatch: %v", e.Err)
}

func (e *SchemaMismatchError) Unwrap() error { return e.Err }

func (e *SchemaMismatchError) Is(target error) bool { return target == ErrSchemaMismatch }

// InferenceError wraps a failed classifier call.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failure: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

func (e *InferenceError) Is(target error) bool { return target == ErrInferenceFailure }
