// Package testutil provides testing utilities for taskdeck.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// ErrMockWrite is returned by FailingWriter.
var ErrMockWrite = errors.New("write failed")

// FailingWriter is an io.Writer whose writes always fail with ErrMockWrite.
type FailingWriter struct{}

// Write implements io.Writer.
func (FailingWriter) Write([]byte) (int, error) {
	return 0, ErrMockWrite
}
