package projection

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every validation failure of this package.
var ErrInvalidInput = errors.New("invalid input")

// Constraints reported by InvalidInputError.
const (
	ConstraintHorizon   = "horizon"
	ConstraintRate      = "rate"
	ConstraintPrincipal = "principal"
)

// InvalidInputError names the constraint that the input violated.
type InvalidInputError struct {
	Constraint string
	Message    string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Constraint, e.Message)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInvalidInput builds an InvalidInputError for constraint.
func NewInvalidInput(constraint, format string, args ...any) error {
	return &InvalidInputError{Constraint: constraint, Message: fmt.Sprintf(format, args...)}
}
