package forecast

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of analysis failure.
type ErrorCode string

const (
	ErrInsufficientData ErrorCode = "INSUFFICIENT_DATA"
	ErrSingularMatrix   ErrorCode = "SINGULAR_MATRIX"
	ErrUntrainedModel   ErrorCode = "UNTRAINED_MODEL"
)

// AnalysisError is a structured error for forecasting failures.
type AnalysisError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// NewError creates an AnalysisError with a formatted message.
func NewError(code ErrorCode, format string, args ...any) *AnalysisError {
	return &AnalysisError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsCode reports whether err (or anything it wraps) is an AnalysisError
// with the given code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
