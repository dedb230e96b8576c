// Package constants provides centralized constant values used throughout taskdeck.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by taskdeck.
const (
	// TaskdeckHome is the hidden directory name where taskdeck keeps its
	// configuration and log files. Nothing from the tracker itself is persisted here.
	TaskdeckHome = ".taskdeck"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the size in megabytes at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days to retain rotated log files.
	LogMaxAgeDays = 14

	// LogCompress controls gzip compression of rotated log files.
	LogCompress = true
)

// Session timing defaults.
const (
	// DefaultLoginDelay is how long the simulated login takes.
	DefaultLoginDelay = 1500 * time.Millisecond

	// MaxLoginDelay caps the configurable login delay.
	MaxLoginDelay = 30 * time.Second

	// DefaultRefreshInterval is how often the dashboard re-renders relative
	// notification labels ("just now", "5 minutes ago").
	DefaultRefreshInterval = 30 * time.Second
)

// Defaults applied by the store when a caller leaves a field empty.
const (
	// DefaultProjectColor is used for new projects created without a color.
	DefaultProjectColor = "#3B82F6"

	// DefaultProjectMembers is the member count of a freshly created project.
	DefaultProjectMembers = 1

	// DefaultUser is the username used when none is configured.
	DefaultUser = "demo"
)

// FilterAll is the filter value that matches every status or priority.
const FilterAll = "all"

// DateLayout is the calendar-date layout used for due dates and created dates.
const DateLayout = "2006-01-02"
