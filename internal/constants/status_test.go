package constants

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatus_IsValid(t *testing.T) {
	for _, s := range ValidTaskStatuses() {
		assert.True(t, s.IsValid(), "status %q should be valid", s)
	}
	assert.False(t, TaskStatus("").IsValid())
	assert.False(t, TaskStatus("completed").IsValid())
	assert.False(t, TaskStatus("in_progress").IsValid())
}

func TestTaskStatus_Next(t *testing.T) {
	tests := []struct {
		from TaskStatus
		want TaskStatus
	}{
		{TaskStatusTodo, TaskStatusInProgress},
		{TaskStatusInProgress, TaskStatusDone},
		{TaskStatusDone, TaskStatusTodo},
		{TaskStatus("bogus"), TaskStatusTodo},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Next())
		})
	}
}

func TestTaskStatus_JSONSerialization(t *testing.T) {
	type wrapper struct {
		Status TaskStatus `json:"status"`
	}

	data, err := json.Marshal(wrapper{Status: TaskStatusInProgress})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"in-progress"}`, string(data))

	var got wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"status":"done"}`), &got))
	assert.Equal(t, TaskStatusDone, got.Status)
}

func TestPriority_IsValid(t *testing.T) {
	assert.Equal(t, []Priority{PriorityLow, PriorityMedium, PriorityHigh}, ValidPriorities())
	for _, p := range ValidPriorities() {
		assert.True(t, p.IsValid())
	}
	assert.False(t, Priority("critical").IsValid())
	assert.Equal(t, "high", PriorityHigh.String())
}

func TestNotificationType_IsValid(t *testing.T) {
	for _, nt := range ValidNotificationTypes() {
		assert.True(t, nt.IsValid())
	}
	assert.False(t, NotificationType("debug").IsValid())
}

func TestProjectStatus_IsValid(t *testing.T) {
	assert.True(t, ProjectStatusActive.IsValid())
	assert.True(t, ProjectStatusOnHold.IsValid())
	assert.True(t, ProjectStatusCompleted.IsValid())
	assert.False(t, ProjectStatus("archived").IsValid())
}

func TestView_IsValid(t *testing.T) {
	assert.Len(t, ValidViews(), 4)
	for _, v := range ValidViews() {
		assert.True(t, v.IsValid())
	}
	assert.False(t, View("settings").IsValid())
	assert.Equal(t, "tasks", ViewTasks.String())
}
