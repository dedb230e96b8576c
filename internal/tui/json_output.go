package tui

import (
	"context"
	"encoding/json"
	"errors"
	"io"
)

// JSONOutput provides structured JSON output for scripts and pipes.
// Every message is written as one JSON object per line.
type JSONOutput struct {
	encoder *json.Encoder
}

// NewJSONOutput creates a new JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{encoder: json.NewEncoder(w)}
}

// jsonMessage is the structured format for Success/Warning/Info messages.
type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// jsonError is the structured format for Error messages.
type jsonError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Context    string `json:"context,omitempty"`
}

// Success outputs a success message as JSON.
// Format: {"type": "success", "message": "..."}
func (o *JSONOutput) Success(msg string) {
	o.message("success", msg)
}

// Error outputs an error as JSON with details.
// Details is populated with the wrapped error's message if present.
// If the error is an ActionableError, suggestion and context fields are included.
func (o *JSONOutput) Error(err error) {
	jsonErr := jsonError{
		Type:    "error",
		Message: err.Error(),
	}

	var ae *ActionableError
	if errors.As(err, &ae) {
		jsonErr.Message = ae.Message
		jsonErr.Suggestion = ae.Suggestion
		jsonErr.Context = ae.Context
	}

	if wrapped := errors.Unwrap(err); wrapped != nil {
		jsonErr.Details = wrapped.Error()
	}

	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(jsonErr)
}

// Warning outputs a warning message as JSON.
func (o *JSONOutput) Warning(msg string) {
	o.message("warning", msg)
}

// Info outputs an informational message as JSON.
func (o *JSONOutput) Info(msg string) {
	o.message("info", msg)
}

func (o *JSONOutput) message(typ, msg string) {
	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(jsonMessage{Type: typ, Message: msg})
}

// Table outputs tabular data as an array of objects keyed by header.
func (o *JSONOutput) Table(headers []string, rows [][]string) {
	result := make([]map[string]string, 0, len(rows))
	if len(headers) > 0 {
		for _, row := range rows {
			obj := make(map[string]string, len(headers))
			for i, h := range headers {
				if i < len(row) {
					obj[h] = row[i]
				} else {
					obj[h] = ""
				}
			}
			result = append(result, obj)
		}
	}
	//nolint:errchkjson // Method has no error return per interface contract
	_ = o.encoder.Encode(result)
}

// JSON outputs an arbitrary value as JSON.
func (o *JSONOutput) JSON(v any) error {
	return o.encoder.Encode(v)
}

// Spinner returns a NoopSpinner; JSON output has no animation.
func (o *JSONOutput) Spinner(_ context.Context, _ string) Spinner {
	return &NoopSpinner{}
}
