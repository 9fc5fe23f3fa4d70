package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeInvalidInput       ErrorType = "invalid_input"
	ErrorTypeUpstreamFormat     ErrorType = "upstream_format"
	ErrorTypeUpstreamValidation ErrorType = "upstream_validation"
	ErrorTypeUnexpected         ErrorType = "unexpected"
)

// AppError represents a structured application error.
// Message is safe to return to API clients.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewInvalidInputError creates an error for uploads the service refuses to process
func NewInvalidInputError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidInput,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUpstreamFormatError creates an error for generation replies that are not valid JSON
func NewUpstreamFormatError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstreamFormat,
		Message:    fmt.Sprintf("Failed to parse AI response as JSON. Error: %v", cause),
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewUpstreamValidationError creates an error for well-formed replies that carry no usable pairs
func NewUpstreamValidationError(reason string) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstreamValidation,
		Message:    "Invalid response format from AI: " + reason,
		StatusCode: http.StatusInternalServerError,
	}
}

// NewUnexpectedError wraps any other failure raised while handling a request
func NewUnexpectedError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUnexpected,
		Message:    fmt.Sprintf("An error occurred while processing the PDF: %v", cause),
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// AsAppError returns err as an *AppError if one is found in its chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
