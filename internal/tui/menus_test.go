package tui

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/mrz1836/taskdeck/internal/domain"
	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
)

func TestNewMenuConfig_Defaults(t *testing.T) {
	t.Setenv("ACCESSIBLE", "")
	cfg := NewMenuConfig()
	assert.Equal(t, DefaultBoxWidth, cfg.Width)
	assert.True(t, cfg.Accessible, "ACCESSIBLE is honored even when empty")
	assert.True(t, cfg.ShowKeyHints)
}

func TestNewMenuConfig_Options(t *testing.T) {
	cfg := NewMenuConfig(WithMenuKeyHints(false))
	assert.Equal(t, DefaultBoxWidth, cfg.Width)
	assert.False(t, cfg.ShowKeyHints)
}

func TestAdaptWidth_NoTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // G115: file descriptors fit in int
		t.Skip("stdout is a terminal")
	}
	assert.Equal(t, 70, adaptWidth(70))
	assert.Equal(t, DefaultBoxWidth, adaptWidth(0))
	assert.Equal(t, DefaultBoxWidth, adaptWidth(-5))
}

func TestPrompts_WithoutTerminalAreCanceled(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec // G115: file descriptors fit in int
		t.Skip("stdin is a terminal; prompts would block")
	}
	cfg := NewMenuConfig()

	_, err := SelectWithConfig("Pick", []Option{{Label: "A", Value: "a"}}, cfg)
	require.ErrorIs(t, err, ErrMenuCanceled)

	_, err = ConfirmWithConfig("Sure?", true, cfg)
	require.ErrorIs(t, err, ErrMenuCanceled)

	_, err = TaskForm(TaskFormValues{}, []string{"Mobile App"}, cfg)
	require.ErrorIs(t, err, ErrMenuCanceled)
	assert.ErrorIs(t, err, deckerrors.ErrMenuCanceled)
}

func TestSelect_EmptyOptions(t *testing.T) {
	_, err := SelectWithConfig("Pick", nil, NewMenuConfig())
	require.ErrorIs(t, err, deckerrors.ErrInvalidArgument)
}

func TestHuhOptions_FoldsDescription(t *testing.T) {
	opts := huhOptions([]Option{
		{Label: "high", Value: "high", Description: "urgent"},
		{Label: "low", Value: "low"},
	})
	require.Len(t, opts, 2)
	assert.Equal(t, "high - urgent", opts[0].Key)
	assert.Equal(t, "high", opts[0].Value)
	assert.Equal(t, "low", opts[1].Key)
}

func TestTheme_NotNil(t *testing.T) {
	assert.NotNil(t, Theme())
}

func TestValidators(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, ValidateTitle("  "), deckerrors.ErrEmptyValue)
	require.NoError(t, ValidateTitle("Write docs"))

	require.NoError(t, ValidateDate(""))
	require.NoError(t, ValidateDate("2024-03-01"))
	require.ErrorIs(t, ValidateDate("03/01/2024"), deckerrors.ErrInvalidArgument)

	require.NoError(t, ValidateHours(""))
	require.NoError(t, ValidateHours("2.5"))
	require.ErrorIs(t, ValidateHours("-1"), deckerrors.ErrValueOutOfRange)
	require.ErrorIs(t, ValidateHours("lots"), deckerrors.ErrValueOutOfRange)
}

func TestTaskFormValues_NewTask(t *testing.T) {
	t.Parallel()

	v := TaskFormValues{
		Title:          "  Write API docs ",
		Description:    "Document *every* endpoint",
		Priority:       "high",
		Project:        "API Integration",
		DueDate:        "2024-03-01",
		EstimatedHours: "6",
	}

	nt, err := v.NewTask()
	require.NoError(t, err)
	assert.Equal(t, "Write API docs", nt.Title)
	assert.Equal(t, domain.PriorityHigh, nt.Priority)
	assert.Equal(t, "API Integration", nt.Project)
	assert.InDelta(t, 6.0, nt.EstimatedHours, 0.001)
	require.NotNil(t, nt.DueDate)
	assert.Equal(t, time.March, nt.DueDate.Month())
	assert.Equal(t, 1, nt.DueDate.Day())
}

func TestTaskFormValues_NewTaskErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    TaskFormValues
		want error
	}{
		{"blank title", TaskFormValues{Title: " "}, deckerrors.ErrEmptyValue},
		{"bad priority", TaskFormValues{Title: "x", Priority: "urgent"}, deckerrors.ErrInvalidPriority},
		{"bad date", TaskFormValues{Title: "x", DueDate: "tomorrow"}, deckerrors.ErrInvalidArgument},
		{"bad hours", TaskFormValues{Title: "x", EstimatedHours: "-3"}, deckerrors.ErrValueOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.v.NewTask()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTaskFormValues_EmptyOptionalFields(t *testing.T) {
	t.Parallel()

	nt, err := TaskFormValues{Title: "Quick fix"}.NewTask()
	require.NoError(t, err)
	assert.Nil(t, nt.DueDate)
	assert.Empty(t, nt.Priority, "store applies the medium default")
	assert.Zero(t, nt.EstimatedHours)
}
