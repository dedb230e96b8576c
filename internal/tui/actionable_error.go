package tui

import (
	"errors"

	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
)

// ActionableError wraps an error with an actionable suggestion.
//
// Example usage:
//
//	err := NewActionableError("task not found", "Run: taskdeck tasks list")
//	output.Error(err)
//	// Outputs: ✗ task not found
//	//          ▸ Try: Run: taskdeck tasks list
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion provides actionable guidance for resolving the error.
	Suggestion string

	// Context provides optional additional information about the error.
	// When present, it is appended to the message in parentheses.
	Context string

	cause error
}

// NewActionableError creates a new ActionableError with message and suggestion.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// AsActionable converts err into an ActionableError using the user-facing
// message table in the errors package. The original error stays reachable
// through errors.Is. Errors with no suggested action are returned unchanged.
func AsActionable(err error) error {
	if err == nil {
		return nil
	}
	var ae *ActionableError
	if errors.As(err, &ae) {
		return err
	}
	msg, action := deckerrors.Actionable(err)
	if action == "" {
		return err
	}
	return &ActionableError{Message: msg, Suggestion: action, Context: err.Error(), cause: err}
}

// Error implements the error interface.
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// Unwrap returns the error this suggestion was derived from, if any.
func (e *ActionableError) Unwrap() error {
	return e.cause
}

// WithContext adds optional context to the error.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}
