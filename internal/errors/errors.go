// Package errors provides centralized error handling for taskdeck.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidStatus indicates an unknown task status value.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidPriority indicates an unknown task priority value.
	ErrInvalidPriority = errors.New("invalid task priority")

	// ErrInvalidNotificationType indicates an unknown notification type.
	ErrInvalidNotificationType = errors.New("invalid notification type")

	// ErrInvalidView indicates an unknown dashboard view.
	ErrInvalidView = errors.New("invalid view")

	// ErrTaskNotFound indicates that no task has the requested ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrProjectNotFound indicates that no project has the requested ID or name.
	ErrProjectNotFound = errors.New("project not found")

	// ErrUnknownAction indicates an action kind the dispatcher cannot route.
	ErrUnknownAction = errors.New("unknown action")

	// ErrMalformedScript indicates an action script that could not be decoded.
	ErrMalformedScript = errors.New("malformed action script")

	// ErrMalformedSeed indicates seed data that could not be decoded or is inconsistent.
	ErrMalformedSeed = errors.New("malformed seed data")

	// ErrLoginCanceled indicates the simulated login was interrupted before it finished.
	ErrLoginCanceled = errors.New("login canceled")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidSession indicates an invalid session configuration value.
	ErrConfigInvalidSession = errors.New("invalid session configuration")

	// ErrConfigInvalidUI indicates an invalid UI configuration value.
	ErrConfigInvalidUI = errors.New("invalid UI configuration")

	// ErrInvalidDuration indicates that a duration format is invalid.
	ErrInvalidDuration = errors.New("invalid duration format")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	// Commands should silence cobra's error printing when this is returned.
	ErrJSONErrorOutput = errors.New("error output as JSON")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrMenuCanceled indicates that the user canceled a menu operation.
	ErrMenuCanceled = errors.New("menu canceled by user")

	// ErrUserInputRequired indicates user input is required but not provided.
	// Commands should exit with code 2 when this error is returned.
	ErrUserInputRequired = errors.New("user input required")

	// ErrInteractiveRequired indicates that interactive prompts are required but not available.
	ErrInteractiveRequired = errors.New("interactive prompt required")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
