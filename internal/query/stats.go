package query

import (
	"time"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
)

// Stats summarises a task list for the dashboard cards.
type Stats struct {
	Total          int     `json:"total"`
	Todo           int     `json:"todo"`
	InProgress     int     `json:"in_progress"`
	Done           int     `json:"done"`
	Overdue        int     `json:"overdue"`
	CompletionRate int     `json:"completion_rate"`
	EstimatedHours float64 `json:"estimated_hours"`
	CompletedHours float64 `json:"completed_hours"`
}

// ComputeStats counts tasks per status, overdue tasks relative to today, and
// the overall completion rate (round half up, in percent).
func ComputeStats(tasks []domain.Task, today time.Time) Stats {
	var s Stats
	for i := range tasks {
		t := &tasks[i]
		s.Total++
		switch t.Status {
		case constants.TaskStatusTodo:
			s.Todo++
		case constants.TaskStatusInProgress:
			s.InProgress++
		case constants.TaskStatusDone:
			s.Done++
		}
		if t.IsOverdue(today) {
			s.Overdue++
		}
		s.EstimatedHours += t.EstimatedHours
		s.CompletedHours += t.CompletedHours
	}
	s.CompletionRate = Percent(s.Done, s.Total)
	return s
}

// ProjectSummary pairs a project with its live completion figures.
type ProjectSummary struct {
	Project   domain.Project `json:"project"`
	Progress  int            `json:"progress"`
	TaskCount int            `json:"task_count"`
	DoneCount int            `json:"done_count"`
}

// SummarizeProjects computes live progress for every project, in project order.
func SummarizeProjects(projects []domain.Project, tasks []domain.Task) []ProjectSummary {
	out := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		owned := ProjectTasks(p.Name, tasks)
		done := len(TasksByStatus(owned, constants.TaskStatusDone))
		out = append(out, ProjectSummary{
			Project:   p,
			Progress:  Percent(done, len(owned)),
			TaskCount: len(owned),
			DoneCount: done,
		})
	}
	return out
}
