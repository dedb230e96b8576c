package tui

import (
	"context"
	"io"
)

// Output format names accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output provides methods for structured output to a terminal or a pipe.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error message.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// Table prints rows under the given headers.
	Table(headers []string, rows [][]string)
	// JSON outputs a value as formatted JSON.
	JSON(v any) error
	// Spinner starts a progress indicator that runs until Stop is called.
	Spinner(ctx context.Context, msg string) Spinner
}

// Spinner is a running progress indicator.
type Spinner interface {
	Update(msg string)
	Stop()
	// StopWithSuccess and StopWithError stop the spinner and leave a
	// final status line in its place.
	StopWithSuccess(msg string)
	StopWithError(msg string)
}

// NewOutput creates the appropriate output based on format.
func NewOutput(w io.Writer, format string) Output {
	if format == FormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
