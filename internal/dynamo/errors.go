package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for scene construction and configuration.
var (
	// ErrNonPositiveMass indicates a body created with mass <= 0, NaN or Inf.
	ErrNonPositiveMass = errors.New("dynamo: body mass must be positive and finite")

	// ErrNonFinite indicates a NaN or Inf position or velocity.
	ErrNonFinite = errors.New("dynamo: non-finite vector component")

	// ErrInvalidConfig indicates a clock or integrator setting out of range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrUnknownPreset indicates a scene preset name that is not registered.
	ErrUnknownPreset = errors.New("dynamo: unknown scene preset")

	// ErrEmptyScene indicates a scene definition without bodies.
	ErrEmptyScene = errors.New("dynamo: scene has no bodies")
)

// BodyError wraps an error with the index and name of the offending body.
type BodyError struct {
	Index   int
	Name    string
	Wrapped error
}

func (e *BodyError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("body %d (%s): %v", e.Index, e.Name, e.Wrapped)
	}
	return fmt.Sprintf("body %d: %v", e.Index, e.Wrapped)
}

func (e *BodyError) Unwrap() error {
	return e.Wrapped
}
