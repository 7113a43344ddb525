package service

import "errors"

var (
	// ErrInvalidID means the supplied identifier is not a valid ObjectID hex.
	ErrInvalidID = errors.New("invalid transaction id")
	// ErrNotFound means no transaction matched a well-formed identifier.
	ErrNotFound = errors.New("transaction not found")
)

// ValidationError reports the first input rule a request violated. Reason
// is safe to return to the client verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
