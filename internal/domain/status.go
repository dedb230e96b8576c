package domain

import "github.com/mrz1836/taskdeck/internal/constants"

// Re-export the enum types from the constants package so consumers can import
// domain types and their status values together.
//
// Example usage:
//
//	import "github.com/mrz1836/taskdeck/internal/domain"
//
//	task := domain.Task{
//	    Status: domain.TaskStatusTodo,
//	}
type (
	// TaskStatus represents the state of a task on the board.
	TaskStatus = constants.TaskStatus

	// Priority indicates how urgent a task is.
	Priority = constants.Priority

	// NotificationType classifies a notification for display.
	NotificationType = constants.NotificationType

	// ProjectStatus represents the state of a project.
	ProjectStatus = constants.ProjectStatus
)

// Re-export TaskStatus constants for convenience.
const (
	TaskStatusTodo       = constants.TaskStatusTodo
	TaskStatusInProgress = constants.TaskStatusInProgress
	TaskStatusDone       = constants.TaskStatusDone
)

// Re-export Priority constants for convenience.
const (
	PriorityLow    = constants.PriorityLow
	PriorityMedium = constants.PriorityMedium
	PriorityHigh   = constants.PriorityHigh
)

// Re-export NotificationType constants for convenience.
const (
	NotificationSuccess = constants.NotificationSuccess
	NotificationInfo    = constants.NotificationInfo
	NotificationWarning = constants.NotificationWarning
	NotificationError   = constants.NotificationError
)
