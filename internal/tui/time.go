package tui

import (
	"fmt"
	"time"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/constants"
)

// DueLabel describes a due date relative to today.
// Examples: "no due date", "due today", "due tomorrow", "due in 3 days",
// "overdue by 1 day". Dates are compared as calendar days.
func DueLabel(due *time.Time, today time.Time) string {
	if due == nil {
		return "no due date"
	}

	days := daysBetween(clock.DateOf(today), clock.DateOf(*due))
	switch {
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	case days > 1:
		return fmt.Sprintf("due in %d days", days)
	case days == -1:
		return "overdue by 1 day"
	default:
		return fmt.Sprintf("overdue by %d days", -days)
	}
}

// FormatDate renders an optional date in the calendar-date layout, or "-".
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(constants.DateLayout)
}

// daysBetween counts calendar days from a to b. Both values must already be
// truncated to midnight. Rounding absorbs DST shifts of an hour.
func daysBetween(a, b time.Time) int {
	hours := b.Sub(a).Hours()
	if hours < 0 {
		return -int(-hours/24 + 0.5)
	}
	return int(hours/24 + 0.5)
}
