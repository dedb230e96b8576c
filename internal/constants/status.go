package constants

// TaskStatus represents the state of a task on the board.
//
// Transitions are unconstrained: any status may move to any other. The only
// side effect tied to a transition is on entry into TaskStatusDone, where the
// task's completed hours are set to its estimate.
type TaskStatus string

// Task status constants.
const (
	// TaskStatusTodo indicates work that has not started.
	TaskStatusTodo TaskStatus = "todo"

	// TaskStatusInProgress indicates work that is underway.
	TaskStatusInProgress TaskStatus = "in-progress"

	// TaskStatusDone indicates finished work.
	TaskStatusDone TaskStatus = "done"
)

// ValidTaskStatuses returns all valid task statuses in board order.
func ValidTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}
}

// IsValid checks if the status is a known value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// Next returns the following status in board order, wrapping done back to todo.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case TaskStatusTodo:
		return TaskStatusInProgress
	case TaskStatusInProgress:
		return TaskStatusDone
	default:
		return TaskStatusTodo
	}
}

// String returns the string representation of the TaskStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s TaskStatus) String() string {
	return string(s)
}

// Priority indicates how urgent a task is.
type Priority string

// Priority constants.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities returns all valid priorities from lowest to highest.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid checks if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the Priority.
func (p Priority) String() string {
	return string(p)
}

// NotificationType classifies a notification for display.
type NotificationType string

// Notification type constants.
const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// ValidNotificationTypes returns all valid notification types.
func ValidNotificationTypes() []NotificationType {
	return []NotificationType{NotificationSuccess, NotificationInfo, NotificationWarning, NotificationError}
}

// IsValid checks if the notification type is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationSuccess, NotificationInfo, NotificationWarning, NotificationError:
		return true
	default:
		return false
	}
}

// String returns the string representation of the NotificationType.
func (t NotificationType) String() string {
	return string(t)
}

// ProjectStatus represents the state of a project.
type ProjectStatus string

// Project status constants.
const (
	// ProjectStatusActive is the status every new project starts in.
	ProjectStatusActive ProjectStatus = "active"

	// ProjectStatusOnHold indicates a paused project.
	ProjectStatusOnHold ProjectStatus = "on-hold"

	// ProjectStatusCompleted indicates a finished project.
	ProjectStatusCompleted ProjectStatus = "completed"
)

// IsValid checks if the project status is a known value.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the ProjectStatus.
func (s ProjectStatus) String() string {
	return string(s)
}

// View identifies which screen section the dashboard is showing.
type View string

// View constants.
const (
	ViewDashboard     View = "dashboard"
	ViewTasks         View = "tasks"
	ViewProjects      View = "projects"
	ViewNotifications View = "notifications"
)

// ValidViews returns all views in navigation order.
func ValidViews() []View {
	return []View{ViewDashboard, ViewTasks, ViewProjects, ViewNotifications}
}

// IsValid checks if the view is a known value.
func (v View) IsValid() bool {
	switch v {
	case ViewDashboard, ViewTasks, ViewProjects, ViewNotifications:
		return true
	default:
		return false
	}
}

// String returns the string representation of the View.
func (v View) String() string {
	return string(v)
}
