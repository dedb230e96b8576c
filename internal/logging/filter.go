// Package logging provides logging utilities including sensitive data filtering.
//
// The login form accepts a password and sessions carry bearer-style tokens.
// Neither must reach the log file, so the CLI wraps its file writer in a
// FilteringWriter and attaches SensitiveDataHook to every logger.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// sensitivePatterns match credential-looking substrings in free text.
var sensitivePatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // compiled once and shared
	// key=value style secrets: password=..., secret: ..., pwd=...
	regexp.MustCompile(`(?i)(password|passwd|pwd|secret|credential)["']?\s*[:=]\s*["']?[^\s"',}]{4,}["']?`),

	// Bearer tokens
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._~+/-]{16,}=*`),

	// JSON Web Tokens (three base64url segments, header starting with eyJ)
	regexp.MustCompile(`eyJ[a-zA-Z0-9_-]{8,}\.[a-zA-Z0-9_-]{8,}\.[a-zA-Z0-9_-]{8,}`),

	// token/api_key assignments with long values
	regexp.MustCompile(`(?i)(token|api[_-]?key|auth)["']?\s*[:=]\s*["']?[a-zA-Z0-9+/=_-]{16,}["']?`),

	// PEM private keys
	regexp.MustCompile(`-----BEGIN[A-Z ]+PRIVATE KEY-----`),
}

// sensitiveFieldNames are log field names whose values are always redacted.
var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // shared lookup table
	"password",
	"passwd",
	"secret",
	"credential",
	"token",
	"api_key",
	"apikey",
	"authorization",
	"private_key",
}

// SensitiveDataHook flags log events whose message looks like it carries a
// secret. zerolog hooks cannot rewrite the message, so the actual redaction
// happens in FilteringWriter; the flag makes such events easy to find.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a new SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements zerolog.Hook.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData reports whether s matches any sensitive pattern.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive match in value with [REDACTED].
func FilterSensitiveValue(value string) string {
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedValue)
	}
	return result
}

// IsSensitiveFieldName reports whether a field name indicates sensitive data.
// Matching is case-insensitive and also catches compound names such as
// "session_token" or "user_password".
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lowerName, sensitive) {
			return true
		}
	}
	return false
}

// SafeValue returns [REDACTED] for sensitive field names and the filtered
// value otherwise.
//
//	logger.Debug().Str("username", logging.SafeValue("username", name)).Msg("login started")
func SafeValue(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter wraps an io.Writer and redacts sensitive data before it is
// written. The CLI uses it around the rotating log file.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a new FilteringWriter that wraps w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer. It reports len(p) on success so callers never
// see a short write caused by redaction changing the length.
func (fw *FilteringWriter) Write(p []byte) (int, error) {
	filtered := FilterSensitiveValue(string(p))
	if _, err := fw.w.Write([]byte(filtered)); err != nil {
		return 0, err
	}
	return len(p), nil
}
