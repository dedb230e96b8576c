// Package query provides the derived views of the board: filtered task lists,
// per-status columns, project completion and dashboard statistics.
//
// Every function here is pure. Inputs are never modified and results never
// alias the input slices, so callers may hand them straight to a renderer.
package query

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
)

// Filter specifies criteria for listing tasks.
// Status and Priority accept a concrete value or "all"; empty means "all".
type Filter struct {
	Query    string
	Status   string
	Priority string
}

// FilteredTasks returns the tasks that pass the filter, in their original order.
//
// A task passes when the query is empty or its title or description contains
// the query case-insensitively, and the status and priority filters are "all"
// or equal to the task's values. The query is trimmed first, so a query of
// only whitespace matches every task.
func FilteredTasks(all []domain.Task, f Filter) []domain.Task {
	folder := cases.Fold()
	needle := strings.TrimSpace(f.Query)
	if needle != "" {
		needle = folder.String(needle)
	}

	out := make([]domain.Task, 0, len(all))
	for i := range all {
		t := &all[i]
		if !matchesEnum(f.Status, string(t.Status)) || !matchesEnum(f.Priority, string(t.Priority)) {
			continue
		}
		if needle != "" && !containsFolded(folder, t.Title, needle) && !containsFolded(folder, t.Description, needle) {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// TasksByStatus returns the tasks whose status equals status exactly.
func TasksByStatus(tasks []domain.Task, status constants.TaskStatus) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// ProjectTasks returns the tasks whose project name equals name exactly.
func ProjectTasks(name string, tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, 0)
	for _, t := range tasks {
		if t.Project == name {
			out = append(out, t)
		}
	}
	return out
}

// ProjectProgress returns the completion percentage of the project with the
// given ID, computed from the tasks whose project name equals the project's name.
// It returns 0 when the project does not exist or has no tasks.
func ProjectProgress(projectID int, projects []domain.Project, tasks []domain.Task) int {
	var name string
	found := false
	for _, p := range projects {
		if p.ID == projectID {
			name, found = p.Name, true
			break
		}
	}
	if !found {
		return 0
	}

	total, done := 0, 0
	for _, t := range tasks {
		if t.Project != name {
			continue
		}
		total++
		if t.Status == constants.TaskStatusDone {
			done++
		}
	}
	return Percent(done, total)
}

// Percent returns round-half-up(100 * part / total) using integer arithmetic.
// A non-positive total yields 0.
func Percent(part, total int) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}

// matchesEnum reports whether a filter value accepts the given value.
func matchesEnum(filter, value string) bool {
	return filter == "" || filter == constants.FilterAll || filter == value
}

// containsFolded reports whether haystack contains an already-folded needle.
func containsFolded(folder cases.Caser, haystack, needle string) bool {
	if haystack == "" {
		return false
	}
	return strings.Contains(folder.String(haystack), needle)
}
