package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Board
	// ===================
	{
		err: ErrTaskNotFound,
		info: ErrorInfo{
			Message: "The specified task was not found.",
			Action:  "Run 'taskdeck tasks list' to see available task IDs.",
		},
	},
	{
		err: ErrProjectNotFound,
		info: ErrorInfo{
			Message: "The specified project was not found.",
			Action:  "Run 'taskdeck projects list' to see available projects.",
		},
	},
	{
		err: ErrInvalidStatus,
		info: ErrorInfo{
			Message: "Unknown task status.",
			Action:  "Use one of: todo, in-progress, done (or 'all' when filtering).",
		},
	},
	{
		err: ErrInvalidPriority,
		info: ErrorInfo{
			Message: "Unknown task priority.",
			Action:  "Use one of: low, medium, high (or 'all' when filtering).",
		},
	},
	{
		err: ErrInvalidNotificationType,
		info: ErrorInfo{
			Message: "Unknown notification type.",
			Action:  "Use one of: success, info, warning, error.",
		},
	},
	{
		err: ErrInvalidView,
		info: ErrorInfo{
			Message: "Unknown dashboard view.",
			Action:  "Use one of: dashboard, tasks, projects, notifications.",
		},
	},

	// ===================
	// Scripts & Seed
	// ===================
	{
		err: ErrUnknownAction,
		info: ErrorInfo{
			Message: "The action script contains an unknown action.",
			Action:  "Check the 'kind' field of each action in the script.",
		},
	},
	{
		err: ErrMalformedScript,
		info: ErrorInfo{
			Message: "The action script is not valid YAML.",
			Action:  "Check the script file for YAML syntax errors.",
		},
	},
	{
		err: ErrMalformedSeed,
		info: ErrorInfo{
			Message: "The seed data file could not be loaded.",
			Action:  "Fix the file referenced by 'seed.file' or remove the setting to use built-in data.",
		},
	},

	// ===================
	// Session
	// ===================
	{
		err: ErrLoginCanceled,
		info: ErrorInfo{
			Message: "Sign-in was interrupted.",
			Action:  "",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is not loaded.",
			Action:  "Ensure config.yaml exists and is valid YAML.",
		},
	},
	{
		err: ErrConfigInvalidSession,
		info: ErrorInfo{
			Message: "Invalid session configuration.",
			Action:  "Check the 'session' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidUI,
		info: ErrorInfo{
			Message: "Invalid UI configuration.",
			Action:  "Check the 'ui' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrInvalidDuration,
		info: ErrorInfo{
			Message: "Invalid duration format.",
			Action:  "Use formats like '500ms', '2s', '1m' for durations.",
		},
	},
	{
		err: ErrValueOutOfRange,
		info: ErrorInfo{
			Message: "Value is outside the allowed range.",
			Action:  "Check the documentation for valid value ranges.",
		},
	},
	{
		err: ErrEmptyValue,
		info: ErrorInfo{
			Message: "A required value was not provided.",
			Action:  "Provide the required value and try again.",
		},
	},

	// ===================
	// User Interaction
	// ===================
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Operation was canceled.",
			Action:  "",
		},
	},
	{
		err: ErrMenuCanceled,
		info: ErrorInfo{
			Message: "Menu selection was canceled.",
			Action:  "",
		},
	},
	{
		err: ErrUserInputRequired,
		info: ErrorInfo{
			Message: "This operation requires user input.",
			Action:  "Run in an interactive terminal or provide required flags.",
		},
	},
	{
		err: ErrInteractiveRequired,
		info: ErrorInfo{
			Message: "This operation requires an interactive terminal.",
			Action:  "Run in an interactive terminal, not in a script.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "An invalid argument was provided.",
			Action:  "Check the command help for valid arguments.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
// Built once from errorInfoEntries during package initialization.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
// This is called once during package init for O(1) direct lookups.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	// Fast path: O(1) lookup for direct sentinel errors
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	// Slow path: errors.Is() for wrapped errors
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// This function maps sentinel errors to helpful, actionable messages
// that are suitable for display to end users.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that are not recoverable or have no clear action, the action
// string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
