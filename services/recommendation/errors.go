package recommendation

import (
	"errors"
	"fmt"
)

const (
	codeInvalidArgument = "invalidArgument"
	codeNotFound        = "notFound"
)

// EngineError is a coded error surfaced to callers of the engine.
type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidArgumentError reports a structurally invalid caller input.
func NewInvalidArgumentError(msg string) error {
	return &EngineError{Code: codeInvalidArgument, Message: msg}
}

// NewNotFoundError reports a missing job or contractor.
func NewNotFoundError(msg string) error {
	return &EngineError{Code: codeNotFound, Message: msg}
}

// IsInvalidArgument reports whether err is an invalid-argument engine error.
func IsInvalidArgument(err error) bool {
	var ee *EngineError
	return errors.As(err, &ee) && ee.Code == codeInvalidArgument
}

// IsNotFound reports whether err is a not-found engine error.
func IsNotFound(err error) bool {
	var ee *EngineError
	return errors.As(err, &ee) && ee.Code == codeNotFound
}
