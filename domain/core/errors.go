package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions.
// Every message is written to be shown to the end user as-is.
var (
	// Input errors
	ErrValidation = errors.New("validation failed")
	ErrDataType   = errors.New("non-numeric value")
	ErrParse      = errors.New("could not parse dataset")

	// Arithmetic guards
	ErrEmptyInput              = errors.New("cannot compute a statistic of an empty series")
	ErrInsufficientSample      = errors.New("insufficient sample size")
	ErrZeroVariance            = errors.New("zero variance")
	ErrInvalidDegreesOfFreedom = errors.New("invalid degrees of freedom")
)

// DataTypeError reports a value that should have been numeric but was not.
// Row is the zero-based index into the record set.
type DataTypeError struct {
	Row    int
	Column string
	Value  interface{}
}

func (e *DataTypeError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("row %d: column %q is missing a numeric value", e.Row+1, e.Column)
	}
	return fmt.Sprintf("row %d: column %q has non-numeric value %v", e.Row+1, e.Column, e.Value)
}

// Is lets errors.Is match DataTypeError against ErrDataType.
func (e *DataTypeError) Is(target error) bool {
	return target == ErrDataType
}

// Error constructors with context
func NewValidationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

func NewDataTypeError(row int, column string, value interface{}) error {
	return &DataTypeError{Row: row, Column: column, Value: value}
}

func NewParseError(format string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w (%s)", ErrParse, format)
	}
	return fmt.Errorf("%w (%s): %v", ErrParse, format, cause)
}

func NewInsufficientSampleError(n int) error {
	return fmt.Errorf("%w: at least 2 paired observations are required, got %d", ErrInsufficientSample, n)
}

func NewZeroVarianceError(what string) error {
	return fmt.Errorf("%w: %s", ErrZeroVariance, what)
}

func NewInvalidDegreesOfFreedomError(df int) error {
	return fmt.Errorf("%w: need df >= 1, got %d", ErrInvalidDegreesOfFreedom, df)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInputError reports whether err was caused by the uploaded data rather than
// by the computation itself.
func IsInputError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDataType) ||
		errors.Is(err, ErrParse)
}

// IsStatisticalError reports whether err is one of the arithmetic guards.
func IsStatisticalError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrInsufficientSample) ||
		errors.Is(err, ErrZeroVariance) ||
		errors.Is(err, ErrInvalidDegreesOfFreedom)
}
