// Package clock provides an abstraction for time operations to improve testability.
// Instead of calling time.Now() directly, code can use the Clock interface which
// can be replaced in tests to control time-dependent behavior such as created
// dates, overdue checks and relative notification labels.
package clock

import "time"

// Clock is an interface for time operations.
// This allows code to be tested with fixed clocks.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock that always reports the same instant.
// The zero value reports the zero time.
type Fixed struct {
	T time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return f.T
}

// Ensure both implementations satisfy Clock.
var (
	_ Clock = RealClock{}
	_ Clock = Fixed{}
)

// Today returns the calendar date of c.Now() as midnight in the clock's location.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
