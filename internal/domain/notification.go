package domain

import "time"

// Notification is a message raised as a side effect of a board mutation.
// Notifications are never removed; they can only be marked read.
type Notification struct {
	ID      int              `json:"id" yaml:"id"`
	Type    NotificationType `json:"type" yaml:"type"`
	Message string           `json:"message" yaml:"message"`

	// Time is the relative label shown to the user ("just now", "2 hours ago").
	// It is derived from CreatedAt and refreshed by the store.
	Time string `json:"time" yaml:"time"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Read      bool      `json:"read" yaml:"read"`
}
