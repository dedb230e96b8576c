// Package domain provides shared domain types for the taskdeck tracker.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON and YAML field names use snake_case.
package domain

import (
	"time"
)

// Task represents a single unit of work on the board.
//
// Example JSON representation:
//
//	{
//	    "id": 3,
//	    "title": "Write API docs",
//	    "description": "Document the REST endpoints",
//	    "priority": "medium",
//	    "status": "in-progress",
//	    "project": "Website Redesign",
//	    "assignee": "Sarah Chen",
//	    "due_date": "2024-02-20T00:00:00Z",
//	    "created_at": "2024-01-28T00:00:00Z",
//	    "estimated_hours": 8,
//	    "completed_hours": 3
//	}
type Task struct {
	// ID is unique within a store and never reused.
	ID int `json:"id" yaml:"id"`

	// Title is the short name of the task. Never empty.
	Title string `json:"title" yaml:"title"`

	// Description is free-form detail, rendered as markdown by the CLI.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Priority is one of low, medium, high.
	Priority Priority `json:"priority" yaml:"priority"`

	// Status is one of todo, in-progress, done.
	Status TaskStatus `json:"status" yaml:"status"`

	// Project is the name of the owning project. It is a free-text
	// reference, not a foreign key: renaming a project does not update it.
	Project string `json:"project,omitempty" yaml:"project,omitempty"`

	// Assignee is the display name of the person doing the work.
	Assignee string `json:"assignee,omitempty" yaml:"assignee,omitempty"`

	// DueDate is the optional calendar date the task is due.
	DueDate *time.Time `json:"due_date,omitempty" yaml:"due_date,omitempty"`

	// CreatedAt is the calendar date the task was created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// EstimatedHours is the planned effort. Never negative.
	EstimatedHours float64 `json:"estimated_hours" yaml:"estimated_hours"`

	// CompletedHours is the effort logged so far. Never negative.
	CompletedHours float64 `json:"completed_hours" yaml:"completed_hours"`
}

// IsDone reports whether the task is finished.
func (t *Task) IsDone() bool {
	return t.Status == TaskStatusDone
}

// IsOverdue reports whether the task has a due date before today and is not done.
// today should already be truncated to a calendar date.
func (t *Task) IsOverdue(today time.Time) bool {
	if t.DueDate == nil || t.IsDone() {
		return false
	}
	return t.DueDate.Before(today)
}

// RemainingHours returns the estimate minus the logged hours, never below zero.
func (t *Task) RemainingHours() float64 {
	remaining := t.EstimatedHours - t.CompletedHours
	if remaining < 0 {
		return 0
	}
	return remaining
}
