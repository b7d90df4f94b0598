package analyzer

import (
	"errors"
	"fmt"
)

// ErrEmptyInput rejects documents that normalize to the empty string. The
// analyzer never substitutes a default label for empty input.
var ErrEmptyInput = errors.New("input text is empty after normalization")

// AnalysisError wraps a failure inside one analysis step with its cause.
type AnalysisError struct {
	Step string
	Err  error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed at %s: %v", e.Step, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
