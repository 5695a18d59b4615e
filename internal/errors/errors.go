package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"gopaired/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise classifies it
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return Classify(err).Code
}

// Predefined error codes
const (
	CodeConfigInvalid           = "CONFIG_INVALID"
	CodeValidationError         = "VALIDATION_ERROR"
	CodeDataTypeError           = "DATA_TYPE_ERROR"
	CodeParseError              = "PARSE_ERROR"
	CodeEmptyInput              = "EMPTY_INPUT"
	CodeInsufficientSample      = "INSUFFICIENT_SAMPLE"
	CodeZeroVariance            = "ZERO_VARIANCE"
	CodeInvalidDegreesOfFreedom = "INVALID_DEGREES_OF_FREEDOM"
	CodeInvalidInput            = "INVALID_INPUT"
	CodeInternalError           = "INTERNAL_ERROR"
)

var classes = []struct {
	sentinel error
	code     string
	status   int
}{
	{core.ErrParse, CodeParseError, http.StatusBadRequest},
	{core.ErrValidation, CodeValidationError, http.StatusUnprocessableEntity},
	{core.ErrDataType, CodeDataTypeError, http.StatusUnprocessableEntity},
	{core.ErrEmptyInput, CodeEmptyInput, http.StatusUnprocessableEntity},
	{core.ErrInsufficientSample, CodeInsufficientSample, http.StatusUnprocessableEntity},
	{core.ErrZeroVariance, CodeZeroVariance, http.StatusUnprocessableEntity},
	{core.ErrInvalidDegreesOfFreedom, CodeInvalidDegreesOfFreedom, http.StatusUnprocessableEntity},
}

// Classify maps a pipeline error onto an AppError carrying the user-facing
// message of the original error.
func Classify(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	for _, c := range classes {
		if stderrors.Is(err, c.sentinel) {
			return &AppError{Code: c.code, Message: err.Error(), Cause: err}
		}
	}
	return &AppError{Code: CodeInternalError, Message: "the analysis failed unexpectedly", Cause: err}
}

// HTTPStatus returns the status code an HTTP surface should answer err with
func HTTPStatus(err error) int {
	code := GetCode(err)
	switch code {
	case CodeInvalidInput, CodeConfigInvalid:
		return http.StatusBadRequest
	}
	for _, c := range classes {
		if c.code == code {
			return c.status
		}
	}
	return http.StatusInternalServerError
}

// PublicMessage is the text safe to show an end user. Internal failures do
// not leak their cause.
func PublicMessage(err error) string {
	appErr := Classify(err)
	if appErr == nil {
		return ""
	}
	if appErr.Code == CodeInternalError {
		return appErr.Message
	}
	return err.Error()
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
