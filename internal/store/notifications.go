package store

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
)

// Notify prepends an unread notification so the list stays most recent first.
// Unknown types fall back to info; a blank message is ignored.
func (s *Store) Notify(typ domain.NotificationType, message string) (domain.Notification, bool) {
	message = strings.TrimSpace(message)
	if message == "" {
		s.logger.Debug().Msg("ignoring empty notification")
		return domain.Notification{}, false
	}
	if !typ.IsValid() {
		typ = constants.NotificationInfo
	}

	now := s.clock.Now()
	s.lastNotificationID++
	n := domain.Notification{
		ID:        s.lastNotificationID,
		Type:      typ,
		Message:   message,
		Time:      RelativeLabel(now, now),
		CreatedAt: now,
	}
	s.notifications = slices.Insert(s.notifications, 0, n)

	s.logger.Debug().Int("notification_id", n.ID).Str("type", string(typ)).Msg("notification added")
	return n, true
}

// MarkRead marks one notification read. It reports false when the id is
// unknown or the notification was already read.
func (s *Store) MarkRead(id int) bool {
	i := s.notificationIndex(id)
	if i < 0 {
		s.logger.Debug().Int("notification_id", id).Msg("mark read on unknown notification ignored")
		return false
	}
	if s.notifications[i].Read {
		return false
	}
	s.notifications[i].Read = true
	return true
}

// MarkAllRead marks every notification read and returns how many changed.
func (s *Store) MarkAllRead() int {
	changed := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			s.notifications[i].Read = true
			changed++
		}
	}
	return changed
}

// UnreadCount returns the number of unread notifications.
func (s *Store) UnreadCount() int {
	n := 0
	for _, notif := range s.notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// RefreshLabels recomputes every relative time label from the clock.
// Notifications without a creation instant keep the label they were seeded with.
func (s *Store) RefreshLabels() {
	now := s.clock.Now()
	for i := range s.notifications {
		n := &s.notifications[i]
		if n.CreatedAt.IsZero() {
			continue
		}
		n.Time = RelativeLabel(n.CreatedAt, now)
	}
}

// RelativeLabel describes how long ago then was relative to now.
func RelativeLabel(then, now time.Time) string {
	d := now.Sub(then)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
