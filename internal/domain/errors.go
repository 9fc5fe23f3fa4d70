package domain

import "errors"

// Domain errors
var (
	ErrEmptyCompletion  = errors.New("empty response from model")
	ErrUnknownProvider  = errors.New("unknown generation provider")
	ErrUnknownExtractor = errors.New("unknown pdf extractor")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
