package cli

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/taskdeck/internal/domain"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/tui"
)

func decodeTasks(t *testing.T, data []byte) []domain.Task {
	t.Helper()

	var tasks []domain.Task
	require.NoError(t, json.Unmarshal(data, &tasks))
	return tasks
}

func taskIDs(tasks []domain.Task) []int {
	ids := make([]int, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}

func TestRunTasksList_JSON(t *testing.T) {
	tests := []struct {
		name  string
		flags tasksListFlags
		want  []int
	}{
		{name: "everything", flags: tasksListFlags{status: "all", priority: "all"}, want: []int{1, 2, 3, 4, 5, 6}},
		{name: "todo only", flags: tasksListFlags{status: "todo", priority: "all"}, want: []int{2, 5, 6}},
		{name: "high priority", flags: tasksListFlags{status: "all", priority: "high"}, want: []int{1, 2}},
		{name: "query is case-insensitive", flags: tasksListFlags{query: "DATABASE", status: "all", priority: "all"}, want: []int{4}},
		{name: "query matches description", flags: tasksListFlags{query: "indexes"}, want: []int{4}},
		{name: "combined filters", flags: tasksListFlags{query: "api", status: "done", priority: "medium"}, want: []int{3}},
		{name: "no match", flags: tasksListFlags{query: "nothing like this", status: "all", priority: "all"}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runTasksList(context.Background(), newTestCmd(t, OutputJSON), &buf, &tt.flags, testBoardOptions()...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, taskIDs(decodeTasks(t, buf.Bytes())))
		})
	}
}

func TestRunTasksList_Text(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	flags := &tasksListFlags{status: "in-progress", priority: "all"}
	require.NoError(t, runTasksList(context.Background(), newTestCmd(t, OutputText), &buf, flags, testBoardOptions()...))

	out := buf.String()
	assert.Contains(t, out, "Design new landing")
	assert.Contains(t, out, "Database optimization")
	assert.NotContains(t, out, "Write API documentation")
}

func TestRunTasksList_Width(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var narrow, wide bytes.Buffer
	require.NoError(t, runTasksList(context.Background(), newTestCmd(t, OutputText), &narrow, &tasksListFlags{width: 60}, testBoardOptions()...))
	require.NoError(t, runTasksList(context.Background(), newTestCmd(t, OutputText), &wide, &tasksListFlags{width: 160}, testBoardOptions()...))

	assert.Contains(t, narrow.String(), "STAT")
	assert.NotContains(t, narrow.String(), "PROJECT")
	assert.Contains(t, wide.String(), "PROJECT")
	assert.Contains(t, wide.String(), "Implement user authentication")

	err := runTasksList(context.Background(), newTestCmd(t, OutputText), &bytes.Buffer{}, &tasksListFlags{width: -1}, testBoardOptions()...)
	require.ErrorIs(t, err, errors.ErrValueOutOfRange)
}

func TestRunTasksList_EmptyText(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	flags := &tasksListFlags{query: "zzz"}
	require.NoError(t, runTasksList(context.Background(), newTestCmd(t, OutputText), &buf, flags, testBoardOptions()...))
	assert.Contains(t, buf.String(), "No tasks match")
}

func TestRunTasksList_InvalidFilters(t *testing.T) {
	tests := []struct {
		name  string
		flags tasksListFlags
		want  error
	}{
		{name: "bad status", flags: tasksListFlags{status: "blocked"}, want: errors.ErrInvalidStatus},
		{name: "bad priority", flags: tasksListFlags{priority: "urgent"}, want: errors.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runTasksList(context.Background(), newTestCmd(t, OutputText), &buf, &tt.flags, testBoardOptions()...)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
		})
	}
}

func TestRunTasksList_InvalidFilterJSON(t *testing.T) {
	var buf bytes.Buffer
	flags := &tasksListFlags{status: "blocked"}
	err := runTasksList(context.Background(), newTestCmd(t, OutputJSON), &buf, flags, testBoardOptions()...)

	require.ErrorIs(t, err, errors.ErrJSONErrorOutput)
	require.ErrorIs(t, err, errors.ErrInvalidStatus)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "tasks list", payload["command"])
	assert.Contains(t, payload["error"], "blocked")
	assert.Equal(t, "Unknown task status.", payload["message"])
}

func TestParseTaskID(t *testing.T) {
	t.Parallel()

	for arg, want := range map[string]int{"3": 3, "#4": 4, " 12 ": 12} {
		id, err := parseTaskID(arg)
		require.NoError(t, err, arg)
		assert.Equal(t, want, id)
	}

	for _, arg := range []string{"", "abc", "0", "-2"} {
		_, err := parseTaskID(arg)
		require.ErrorIs(t, err, errors.ErrInvalidArgument, arg)
	}
}

func TestRunTasksView(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runTasksView(context.Background(), newTestCmd(t, OutputJSON), &buf, "4", testBoardOptions()...))

		var task domain.Task
		require.NoError(t, json.Unmarshal(buf.Bytes(), &task))
		assert.Equal(t, "Database optimization", task.Title)
		assert.Equal(t, domain.TaskStatusInProgress, task.Status)
	})

	t.Run("text renders details and description", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		var buf bytes.Buffer
		require.NoError(t, runTasksView(context.Background(), newTestCmd(t, OutputText), &buf, "1", testBoardOptions()...))

		out := buf.String()
		assert.Contains(t, out, "Task #1: Design new landing page")
		assert.Contains(t, out, "Website Redesign")
		assert.Contains(t, out, "overdue by 1 day")
		assert.Contains(t, out, "8h of 16h logged")
		assert.Contains(t, out, "Description:")
	})

	t.Run("unknown id", func(t *testing.T) {
		var buf bytes.Buffer
		err := runTasksView(context.Background(), newTestCmd(t, OutputText), &buf, "99", testBoardOptions()...)
		require.ErrorIs(t, err, errors.ErrTaskNotFound)
		assert.Equal(t, ExitError, ExitCodeForError(err))
	})

	t.Run("id is not a number", func(t *testing.T) {
		var buf bytes.Buffer
		err := runTasksView(context.Background(), newTestCmd(t, OutputText), &buf, "seven", testBoardOptions()...)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})
}

func TestRunTasksAdd_FromFlags(t *testing.T) {
	var buf bytes.Buffer
	flags := &tasksAddFlags{
		description: "Summarise the release",
		priority:    "high",
		project:     "Mobile App",
		due:         "2024-03-01",
		hours:       "3.5",
	}

	err := runTasksAdd(context.Background(), newTestCmd(t, OutputJSON), &buf, "  Write release notes ", flags, testBoardOptions()...)
	require.NoError(t, err)

	var task domain.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &task))
	assert.Equal(t, 7, task.ID)
	assert.Equal(t, "Write release notes", task.Title)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, domain.TaskStatusTodo, task.Status)
	assert.Equal(t, "Mobile App", task.Project)
	assert.Equal(t, "Alex Morgan", task.Assignee)
	assert.InDelta(t, 3.5, task.EstimatedHours, 0.001)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2024-03-01", task.DueDate.Format("2006-01-02"))
}

func TestRunTasksAdd_Text(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	flags := &tasksAddFlags{priority: "low"}
	require.NoError(t, runTasksAdd(context.Background(), newTestCmd(t, OutputText), &buf, "Tidy backlog", flags, testBoardOptions()...))

	out := buf.String()
	assert.Contains(t, out, "Created task #7")
	assert.Contains(t, out, "Tidy backlog")
}

func TestRunTasksAdd_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		flags tasksAddFlags
		want  error
	}{
		{name: "unknown priority", flags: tasksAddFlags{priority: "urgent"}, want: errors.ErrInvalidPriority},
		{name: "bad due date", flags: tasksAddFlags{due: "next week"}, want: errors.ErrInvalidArgument},
		{name: "negative hours", flags: tasksAddFlags{hours: "-1"}, want: errors.ErrValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runTasksAdd(context.Background(), newTestCmd(t, OutputText), &buf, "Valid title", &tt.flags, testBoardOptions()...)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
		})
	}
}

func TestRunTasksAdd_NoTitleWithoutTerminal(t *testing.T) {
	defer mockTerminalCheckFunc(false)()

	var buf bytes.Buffer
	err := runTasksAdd(context.Background(), newTestCmd(t, OutputText), &buf, "", &tasksAddFlags{}, testBoardOptions()...)
	require.ErrorIs(t, err, errors.ErrUserInputRequired)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRunTasksAdd_InteractiveForm(t *testing.T) {
	defer mockTerminalCheckFunc(true)()
	defer mockTaskForm(tui.TaskFormValues{Title: "From the form", Priority: "medium", Project: "API Integration"}, nil)()

	var buf bytes.Buffer
	// JSON output never prompts, so the form runs only for text output.
	require.NoError(t, runTasksAdd(context.Background(), newTestCmd(t, OutputText), &buf, "", &tasksAddFlags{}, testBoardOptions()...))
	assert.Contains(t, buf.String(), "From the form")
}

func TestRunTasksAdd_FormCanceled(t *testing.T) {
	defer mockTerminalCheckFunc(true)()
	defer mockTaskForm(tui.TaskFormValues{}, tui.ErrMenuCanceled)()

	var buf bytes.Buffer
	err := runTasksAdd(context.Background(), newTestCmd(t, OutputText), &buf, "", &tasksAddFlags{}, testBoardOptions()...)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrMenuCanceled))
}

func TestValidateFilters(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "all", "todo", "in-progress", "done"} {
		require.NoError(t, validateStatusFilter(s), s)
	}
	for _, p := range []string{"", "all", "low", "medium", "high"} {
		require.NoError(t, validatePriorityFilter(p), p)
	}
	require.ErrorIs(t, validateStatusFilter("Done"), errors.ErrInvalidStatus)
	require.ErrorIs(t, validatePriorityFilter("HIGH"), errors.ErrInvalidPriority)
}

func TestRunTasksDelete_JSON(t *testing.T) {
	confirms := 0
	defer mockTerminalCheckFunc(true)()
	defer mockConfirm(false, &confirms)()

	var buf bytes.Buffer
	require.NoError(t, runTasksDelete(context.Background(), newTestCmd(t, OutputJSON), &buf, "3", &tasksDeleteFlags{}, testBoardOptions()...))

	var res taskDeleteResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, 3, res.Deleted.ID)
	assert.Equal(t, "Write API documentation", res.Deleted.Title)
	assert.Equal(t, 5, res.Remaining)
	assert.Zero(t, confirms, "JSON output never prompts")
}

func TestRunTasksDelete_Text(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		terminal  bool
		yes       bool
		confirmed bool
		wantCalls int
		want      string
	}{
		{name: "yes skips confirmation", terminal: true, yes: true, wantCalls: 0, want: "Deleted task #3"},
		{name: "confirmed", terminal: true, confirmed: true, wantCalls: 1, want: "Deleted task #3"},
		{name: "declined", terminal: true, confirmed: false, wantCalls: 1, want: "Operation canceled."},
		{name: "no terminal deletes without asking", terminal: false, wantCalls: 0, want: "Deleted task #3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			defer mockTerminalCheckFunc(tt.terminal)()
			defer mockConfirm(tt.confirmed, &calls)()

			var buf bytes.Buffer
			flags := &tasksDeleteFlags{yes: tt.yes}
			require.NoError(t, runTasksDelete(context.Background(), newTestCmd(t, OutputText), &buf, "3", flags, testBoardOptions()...))
			assert.Contains(t, buf.String(), tt.want)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestRunTasksDelete_PicksFromMenu(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var seen []tui.Option
	defer mockTerminalCheckFunc(true)()
	defer mockSelect("5", nil, &seen)()
	defer mockConfirm(true, nil)()

	var buf bytes.Buffer
	require.NoError(t, runTasksDelete(context.Background(), newTestCmd(t, OutputText), &buf, "", &tasksDeleteFlags{}, testBoardOptions()...))

	require.Len(t, seen, 6)
	assert.Equal(t, "1", seen[0].Value)
	assert.Equal(t, "#1 Design new landing page", seen[0].Label)
	assert.Equal(t, "in-progress", seen[0].Description)

	out := buf.String()
	assert.Contains(t, out, "Deleted task #5 Mobile responsive fixes")
	assert.Contains(t, out, "5 tasks remain.")
}

func TestRunTasksDelete_Errors(t *testing.T) {
	t.Run("no id without terminal", func(t *testing.T) {
		defer mockTerminalCheckFunc(false)()

		var buf bytes.Buffer
		err := runTasksDelete(context.Background(), newTestCmd(t, OutputText), &buf, "", &tasksDeleteFlags{}, testBoardOptions()...)
		require.ErrorIs(t, err, errors.ErrUserInputRequired)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})

	t.Run("unknown id", func(t *testing.T) {
		var buf bytes.Buffer
		err := runTasksDelete(context.Background(), newTestCmd(t, OutputText), &buf, "99", &tasksDeleteFlags{yes: true}, testBoardOptions()...)
		require.ErrorIs(t, err, errors.ErrTaskNotFound)
		assert.Equal(t, ExitError, ExitCodeForError(err))
	})

	t.Run("picker canceled", func(t *testing.T) {
		defer mockTerminalCheckFunc(true)()
		defer mockSelect("", tui.ErrMenuCanceled, nil)()

		var buf bytes.Buffer
		err := runTasksDelete(context.Background(), newTestCmd(t, OutputText), &buf, "", &tasksDeleteFlags{}, testBoardOptions()...)
		require.ErrorIs(t, err, errors.ErrMenuCanceled)
	})
}

func TestMenuConfig_QuietHidesKeyHints(t *testing.T) {
	cmd := newTestCmd(t, OutputText)
	assert.True(t, menuConfig(cmd).ShowKeyHints)

	require.NoError(t, cmd.PersistentFlags().Set("quiet", "true"))
	assert.False(t, menuConfig(cmd).ShowKeyHints)
}
