package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/constants"
)

func TestNotify(t *testing.T) {
	t.Parallel()

	t.Run("prepends newest first", func(t *testing.T) {
		s := newTestStore(t)

		first, ok := s.Notify(constants.NotificationWarning, "Budget low")
		require.True(t, ok)
		second, ok := s.Notify(constants.NotificationError, "Sync failed")
		require.True(t, ok)

		got := s.Notifications()
		assert.Equal(t, second.ID, got[0].ID)
		assert.Equal(t, first.ID, got[1].ID)
		assert.Equal(t, 3, first.ID)
		assert.Equal(t, 4, second.ID)
	})

	t.Run("unknown type falls back to info", func(t *testing.T) {
		s := newTestStore(t)
		n, ok := s.Notify("shout", "hello")
		require.True(t, ok)
		assert.Equal(t, constants.NotificationInfo, n.Type)
	})

	t.Run("blank message is ignored", func(t *testing.T) {
		s := newTestStore(t)
		_, ok := s.Notify(constants.NotificationInfo, "   ")
		assert.False(t, ok)
		assert.Len(t, s.Notifications(), 2)
	})
}

func TestMarkRead(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.Equal(t, 1, s.UnreadCount())

	assert.True(t, s.MarkRead(2))
	assert.Zero(t, s.UnreadCount())
	assert.False(t, s.MarkRead(2), "already read")

	before := s.Snapshot()
	assert.False(t, s.MarkRead(99))
	assert.Equal(t, before, s.Snapshot())
}

func TestMarkAllRead(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	s.Notify(constants.NotificationInfo, "one")
	s.Notify(constants.NotificationInfo, "two")

	assert.Equal(t, 3, s.MarkAllRead())
	assert.Zero(t, s.UnreadCount())
	assert.Zero(t, s.MarkAllRead())
}

func TestRefreshLabels(t *testing.T) {
	t.Parallel()
	c := &movingClock{now: testNow}
	s := New(testSnapshot(), WithClock(c))

	s.Notify(constants.NotificationInfo, "hello")
	c.now = c.now.Add(2 * time.Hour)
	s.RefreshLabels()

	got := s.Notifications()
	assert.Equal(t, "2 hours ago", got[0].Time)
	assert.Equal(t, "1 hour ago", got[1].Time, "seeded label without a timestamp is kept")
}

func TestRelativeLabel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "just now"},
		{59 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{45 * time.Minute, "45 minutes ago"},
		{time.Hour, "1 hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{72 * time.Hour, "3 days ago"},
		{-time.Hour, "just now"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RelativeLabel(testNow.Add(-tt.ago), testNow), "ago=%s", tt.ago)
	}
}

type movingClock struct {
	now time.Time
}

func (m *movingClock) Now() time.Time { return m.now }

var _ clock.Clock = (*movingClock)(nil)
