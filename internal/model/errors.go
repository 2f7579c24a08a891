package model

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned for parameter sets that violate the model's
// domain assumptions.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError names the offending field.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
