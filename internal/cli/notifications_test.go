package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/taskdeck/internal/domain"
	"github.com/mrz1836/taskdeck/internal/errors"
)

func TestRunNotificationsList(t *testing.T) {
	tests := []struct {
		name    string
		flags   notificationsListFlags
		wantIDs []int
	}{
		{name: "all", wantIDs: []int{3, 2, 1}},
		{name: "unread only", flags: notificationsListFlags{unreadOnly: true}, wantIDs: []int{3, 2}},
		{name: "one type", flags: notificationsListFlags{kind: "warning"}, wantIDs: []int{2}},
		{name: "type and unread", flags: notificationsListFlags{unreadOnly: true, kind: "success"}, wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runNotificationsList(context.Background(), newTestCmd(t, OutputJSON), &buf, &tt.flags, testBoardOptions()...)
			require.NoError(t, err)

			var items []domain.Notification
			require.NoError(t, json.Unmarshal(buf.Bytes(), &items))

			ids := make([]int, len(items))
			for i, n := range items {
				ids[i] = n.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRunNotificationsList_Text(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, runNotificationsList(context.Background(), newTestCmd(t, OutputText), &buf, &notificationsListFlags{}, testBoardOptions()...))

	out := buf.String()
	assert.Contains(t, out, "Notifications (2 unread)")
	assert.Contains(t, out, "30 minutes ago")
}

func TestRunNotificationsList_InvalidType(t *testing.T) {
	var buf bytes.Buffer
	flags := &notificationsListFlags{kind: "debug"}
	err := runNotificationsList(context.Background(), newTestCmd(t, OutputJSON), &buf, flags, testBoardOptions()...)

	require.ErrorIs(t, err, errors.ErrInvalidNotificationType)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	assert.Contains(t, buf.String(), "success, info, warning, error")
}

func TestOfType(t *testing.T) {
	t.Parallel()

	items := []domain.Notification{
		{ID: 1, Type: domain.NotificationInfo},
		{ID: 2, Type: domain.NotificationError},
		{ID: 3, Type: domain.NotificationInfo},
	}
	got := ofType(items, domain.NotificationInfo)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestUnread(t *testing.T) {
	t.Parallel()

	items := []domain.Notification{{ID: 1, Read: true}, {ID: 2}, {ID: 3, Read: true}}
	got := unread(items)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	assert.Empty(t, unread(nil))
}
