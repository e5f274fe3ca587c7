package protocol

import "fmt"

// ValidationError indicates user input was rejected before any request was sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidParam(raw, reason string) *ValidationError {
	return &ValidationError{
		Field:   "param",
		Message: fmt.Sprintf("invalid parameter %q: %s", raw, reason),
	}
}
