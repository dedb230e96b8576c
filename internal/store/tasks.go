package store

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
)

// NewTask holds the fields a caller supplies when creating a task.
// Priority defaults to medium and Assignee to the signed-in user.
type NewTask struct {
	Title          string
	Description    string
	Priority       domain.Priority
	Project        string
	Assignee       string
	DueDate        *time.Time
	EstimatedHours float64
}

// TaskPatch lists the fields to change on an existing task.
// Nil fields are left untouched. Status is deliberately absent: status
// changes go through SetTaskStatus so the done side effect always fires.
type TaskPatch struct {
	Title          *string
	Description    *string
	Priority       *domain.Priority
	Project        *string
	Assignee       *string
	DueDate        *time.Time
	ClearDueDate   bool
	EstimatedHours *float64
}

// CreateTask appends a new todo task and emits a success notification.
// It is a no-op when the title is blank or the priority is unknown.
func (s *Store) CreateTask(in NewTask) (domain.Task, bool) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		s.logger.Debug().Msg("ignoring task with empty title")
		return domain.Task{}, false
	}

	priority := in.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}
	if !priority.IsValid() {
		s.logger.Debug().Str("priority", string(priority)).Msg("ignoring task with unknown priority")
		return domain.Task{}, false
	}

	assignee := strings.TrimSpace(in.Assignee)
	if assignee == "" {
		assignee = s.user.Name
	}

	s.lastTaskID++
	t := domain.Task{
		ID:             s.lastTaskID,
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		Priority:       priority,
		Status:         constants.TaskStatusTodo,
		Project:        strings.TrimSpace(in.Project),
		Assignee:       assignee,
		DueDate:        dateOnly(in.DueDate),
		CreatedAt:      clock.Today(s.clock),
		EstimatedHours: max(in.EstimatedHours, 0),
	}
	s.tasks = append(s.tasks, t)

	s.logger.Debug().Int("task_id", t.ID).Str("title", t.Title).Msg("task created")
	s.Notify(constants.NotificationSuccess, fmt.Sprintf("Task %q created", t.Title))
	return t, true
}

// SetTaskStatus moves a task to status. Entering done from any other status
// sets the completed hours to the estimate and emits a success notification.
//
// It reports false when the task is missing, the status is unknown, or the
// task already has that status.
func (s *Store) SetTaskStatus(id int, status domain.TaskStatus) bool {
	if !status.IsValid() {
		s.logger.Debug().Str("status", string(status)).Msg("ignoring unknown task status")
		return false
	}
	i := s.taskIndex(id)
	if i < 0 {
		s.logger.Debug().Int("task_id", id).Msg("set status on unknown task ignored")
		return false
	}

	t := &s.tasks[i]
	if t.Status == status {
		return false
	}

	prev := t.Status
	t.Status = status
	s.logger.Debug().
		Int("task_id", id).
		Str("from", string(prev)).
		Str("to", string(status)).
		Msg("task status changed")

	if status == constants.TaskStatusDone {
		t.CompletedHours = t.EstimatedHours
		s.Notify(constants.NotificationSuccess, fmt.Sprintf("Task %q completed", t.Title))
	}
	return true
}

// CycleTaskStatus advances a task to the next status in board order,
// wrapping done back to todo.
func (s *Store) CycleTaskStatus(id int) bool {
	t, ok := s.Task(id)
	if !ok {
		s.logger.Debug().Int("task_id", id).Msg("cycle status on unknown task ignored")
		return false
	}
	return s.SetTaskStatus(id, t.Status.Next())
}

// UpdateTask applies a patch to an existing task. A blank title or unknown
// priority in the patch is ignored while the remaining fields still apply.
func (s *Store) UpdateTask(id int, p TaskPatch) (domain.Task, bool) {
	i := s.taskIndex(id)
	if i < 0 {
		s.logger.Debug().Int("task_id", id).Msg("update on unknown task ignored")
		return domain.Task{}, false
	}

	t := &s.tasks[i]
	if p.Title != nil {
		if title := strings.TrimSpace(*p.Title); title != "" {
			t.Title = title
		}
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.Priority != nil && p.Priority.IsValid() {
		t.Priority = *p.Priority
	}
	if p.Project != nil {
		t.Project = strings.TrimSpace(*p.Project)
	}
	if p.Assignee != nil {
		t.Assignee = strings.TrimSpace(*p.Assignee)
	}
	switch {
	case p.ClearDueDate:
		t.DueDate = nil
	case p.DueDate != nil:
		t.DueDate = dateOnly(p.DueDate)
	}
	if p.EstimatedHours != nil && *p.EstimatedHours >= 0 {
		t.EstimatedHours = *p.EstimatedHours
	}

	s.logger.Debug().Int("task_id", id).Msg("task updated")
	return *t, true
}

// LogHours adds hours of work to a task. The total is capped at the estimate
// when the task has one. Non-positive hours are ignored.
func (s *Store) LogHours(id int, hours float64) (domain.Task, bool) {
	if hours <= 0 {
		s.logger.Debug().Float64("hours", hours).Msg("ignoring non-positive hours")
		return domain.Task{}, false
	}
	i := s.taskIndex(id)
	if i < 0 {
		s.logger.Debug().Int("task_id", id).Msg("log hours on unknown task ignored")
		return domain.Task{}, false
	}

	t := &s.tasks[i]
	t.CompletedHours += hours
	if t.EstimatedHours > 0 && t.CompletedHours > t.EstimatedHours {
		t.CompletedHours = t.EstimatedHours
	}

	s.logger.Debug().Int("task_id", id).Float64("completed_hours", t.CompletedHours).Msg("hours logged")
	return *t, true
}

// DeleteTask removes a task and emits an info notification naming it.
func (s *Store) DeleteTask(id int) (domain.Task, bool) {
	i := s.taskIndex(id)
	if i < 0 {
		s.logger.Debug().Int("task_id", id).Msg("delete of unknown task ignored")
		return domain.Task{}, false
	}

	removed := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)

	s.logger.Debug().Int("task_id", id).Msg("task deleted")
	s.Notify(constants.NotificationInfo, fmt.Sprintf("Task %q deleted", removed.Title))
	return removed, true
}

// dateOnly returns a copy of t truncated to its calendar date.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := clock.DateOf(*t)
	return &d
}
