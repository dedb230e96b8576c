package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
)

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: 1, Title: "Design API schema", Description: "REST endpoints", Priority: constants.PriorityHigh, Status: constants.TaskStatusInProgress, Project: "Backend"},
		{ID: 2, Title: "Landing page", Description: "Hook up the public API client", Priority: constants.PriorityMedium, Status: constants.TaskStatusTodo, Project: "Website"},
		{ID: 3, Title: "Fix login bug", Description: "Session expires early", Priority: constants.PriorityHigh, Status: constants.TaskStatusDone, Project: "Backend"},
		{ID: 4, Title: "Write docs", Description: "", Priority: constants.PriorityLow, Status: constants.TaskStatusTodo, Project: "Website"},
	}
}

func ids(tasks []domain.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestFilteredTasks(t *testing.T) {
	t.Parallel()
	all := sampleTasks()

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"no criteria returns everything", Filter{Query: "", Status: "all", Priority: "all"}, []int{1, 2, 3, 4}},
		{"empty enum filters mean all", Filter{}, []int{1, 2, 3, 4}},
		{"query matches title or description case-insensitively", Filter{Query: "api", Status: "all", Priority: "all"}, []int{1, 2}},
		{"uppercase query", Filter{Query: "LOGIN", Status: "all", Priority: "all"}, []int{3}},
		{"status filter", Filter{Status: "todo", Priority: "all"}, []int{2, 4}},
		{"priority filter", Filter{Status: "all", Priority: "high"}, []int{1, 3}},
		{"all criteria combined", Filter{Query: "api", Status: "in-progress", Priority: "high"}, []int{1}},
		{"no match", Filter{Query: "kubernetes", Status: "all", Priority: "all"}, []int{}},
		{"whitespace query treated as empty", Filter{Query: "   ", Status: "all", Priority: "all"}, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ids(FilteredTasks(all, tt.filter)))
		})
	}
}

func TestFilteredTasks_DoesNotAliasInput(t *testing.T) {
	t.Parallel()
	all := sampleTasks()

	got := FilteredTasks(all, Filter{})
	require.NotEmpty(t, got)
	got[0].Title = "changed"

	assert.Equal(t, "Design API schema", all[0].Title)
}

func TestFilteredTasks_QueryIsTrimmed(t *testing.T) {
	t.Parallel()
	all := sampleTasks()

	padded := FilteredTasks(all, Filter{Query: "  api\t"})
	assert.Equal(t, ids(FilteredTasks(all, Filter{Query: "api"})), ids(padded))
	assert.Len(t, FilteredTasks(all, Filter{Query: "\n"}), len(all))
}

func TestTasksByStatus(t *testing.T) {
	t.Parallel()
	all := sampleTasks()

	assert.Equal(t, []int{2, 4}, ids(TasksByStatus(all, constants.TaskStatusTodo)))
	assert.Equal(t, []int{1}, ids(TasksByStatus(all, constants.TaskStatusInProgress)))
	assert.Equal(t, []int{3}, ids(TasksByStatus(all, constants.TaskStatusDone)))
	assert.Empty(t, TasksByStatus(nil, constants.TaskStatusDone))
}

func TestProjectProgress(t *testing.T) {
	t.Parallel()
	projects := []domain.Project{{ID: 1, Name: "P"}, {ID: 2, Name: "Empty"}, {ID: 3, Name: "Finished"}}

	t.Run("half done", func(t *testing.T) {
		tasks := []domain.Task{
			{Project: "P", Status: constants.TaskStatusDone},
			{Project: "P", Status: constants.TaskStatusTodo},
		}
		assert.Equal(t, 50, ProjectProgress(1, projects, tasks))
	})

	t.Run("no matching tasks", func(t *testing.T) {
		tasks := []domain.Task{{Project: "P", Status: constants.TaskStatusDone}}
		assert.Equal(t, 0, ProjectProgress(2, projects, tasks))
	})

	t.Run("unknown project", func(t *testing.T) {
		assert.Equal(t, 0, ProjectProgress(99, projects, sampleTasks()))
	})

	t.Run("all done", func(t *testing.T) {
		tasks := []domain.Task{
			{Project: "Finished", Status: constants.TaskStatusDone},
			{Project: "Finished", Status: constants.TaskStatusDone},
			{Project: "P", Status: constants.TaskStatusTodo},
		}
		assert.Equal(t, 100, ProjectProgress(3, projects, tasks))
	})

	t.Run("rounds half up", func(t *testing.T) {
		tasks := []domain.Task{
			{Project: "P", Status: constants.TaskStatusDone},
			{Project: "P", Status: constants.TaskStatusDone},
			{Project: "P", Status: constants.TaskStatusTodo},
		}
		assert.Equal(t, 67, ProjectProgress(1, projects, tasks))
	})

	t.Run("project name match is exact", func(t *testing.T) {
		tasks := []domain.Task{{Project: "p", Status: constants.TaskStatusDone}}
		assert.Equal(t, 0, ProjectProgress(1, projects, tasks))
	})
}

func TestPercent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{0, 5, 0},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{3, 8, 38}, // 37.5 rounds up
		{5, 5, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.part, tt.total), "Percent(%d, %d)", tt.part, tt.total)
	}
}

func TestComputeStats(t *testing.T) {
	t.Parallel()
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	past := today.AddDate(0, 0, -2)

	tasks := sampleTasks()
	tasks[0].DueDate = &past // in progress, overdue
	tasks[2].DueDate = &past // done, not overdue
	tasks[0].EstimatedHours, tasks[0].CompletedHours = 10, 4
	tasks[2].EstimatedHours, tasks[2].CompletedHours = 2, 2

	s := ComputeStats(tasks, today)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Todo)
	assert.Equal(t, 1, s.InProgress)
	assert.Equal(t, 1, s.Done)
	assert.Equal(t, 1, s.Overdue)
	assert.Equal(t, 25, s.CompletionRate)
	assert.InDelta(t, 12.0, s.EstimatedHours, 0.001)
	assert.InDelta(t, 6.0, s.CompletedHours, 0.001)
}

func TestSummarizeProjects(t *testing.T) {
	t.Parallel()
	projects := []domain.Project{{ID: 1, Name: "Backend"}, {ID: 2, Name: "Website"}, {ID: 3, Name: "Mobile"}}

	got := SummarizeProjects(projects, sampleTasks())

	require.Len(t, got, 3)
	assert.Equal(t, 50, got[0].Progress)
	assert.Equal(t, 2, got[0].TaskCount)
	assert.Equal(t, 1, got[0].DoneCount)
	assert.Equal(t, 0, got[1].Progress)
	assert.Equal(t, 0, got[2].TaskCount)
}
