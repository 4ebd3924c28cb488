package artifact

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when an artifact's format_version is not
// a semver string with a supported major version.
var ErrUnsupportedFormat = errors.New("unsupported artifact format version")

// ErrShapeMismatch indicates a row or vector does not have the width the
// fitted artifact was trained on.
var ErrShapeMismatch = errors.New("shape mismatch")

// ErrColumnMismatch indicates a model was trained on columns in a different
// set or order than the feature schema.
var ErrColumnMismatch = errors.New("model features do not match feature schema")

// LoadError reports a failure to read, validate or decode an artifact file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load artifact %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func shapeError(what string, got, want int) error {
	return fmt.Errorf("%w: %s has %d values, want %d", ErrShapeMismatch, what, got, want)
}
