// Package store holds the in-memory board: tasks, projects, notifications and
// the ephemeral UI state of the dashboard.
//
// A Store is a single owned aggregate. It is mutated only through its methods
// and performs no locking, so it is not safe for concurrent use; callers such
// as the dashboard model and the replay command each own one store and apply
// actions one at a time.
//
// Validation failures and lookup misses are silent no-ops. Mutating methods
// report whether they changed anything through an ok result and log the
// ignored operation at debug level; they never return an error.
package store

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/domain"
)

// Store is the process-wide board state.
type Store struct {
	user          domain.User
	tasks         []domain.Task
	projects      []domain.Project
	notifications []domain.Notification
	ui            UIState

	// Identifier counters. They only ever grow, so an id freed by a delete
	// is never handed out again.
	lastTaskID         int
	lastProjectID      int
	lastNotificationID int

	clock  clock.Clock
	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for created dates and notification labels.
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger used to trace mutations.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger.With().Str("component", "store").Logger()
	}
}

// New creates a store seeded with a copy of snap.
// Identifier counters start at the highest id present in each collection.
func New(snap domain.Snapshot, opts ...Option) *Store {
	s := &Store{
		user:          snap.User,
		tasks:         slices.Clone(snap.Tasks),
		projects:      slices.Clone(snap.Projects),
		notifications: slices.Clone(snap.Notifications),
		ui:            DefaultUIState(),
		clock:         clock.RealClock{},
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, t := range s.tasks {
		s.lastTaskID = max(s.lastTaskID, t.ID)
	}
	for _, p := range s.projects {
		s.lastProjectID = max(s.lastProjectID, p.ID)
	}
	for _, n := range s.notifications {
		s.lastNotificationID = max(s.lastNotificationID, n.ID)
	}

	s.RefreshLabels()
	return s
}

// User returns the signed-in user.
func (s *Store) User() domain.User {
	return s.user
}

// SetUser replaces the signed-in user, typically after a login completes.
func (s *Store) SetUser(u domain.User) {
	s.user = u
}

// Tasks returns a copy of the task collection in insertion order.
func (s *Store) Tasks() []domain.Task {
	return slices.Clone(s.tasks)
}

// Projects returns a copy of the project collection in insertion order.
func (s *Store) Projects() []domain.Project {
	return slices.Clone(s.projects)
}

// Notifications returns a copy of the notifications, most recent first.
func (s *Store) Notifications() []domain.Notification {
	return slices.Clone(s.notifications)
}

// Task returns the task with the given id.
func (s *Store) Task(id int) (domain.Task, bool) {
	i := s.taskIndex(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Project returns the project with the given id.
func (s *Store) Project(id int) (domain.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}

// Snapshot exports a copy of every collection.
func (s *Store) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		User:          s.user,
		Tasks:         s.Tasks(),
		Projects:      s.Projects(),
		Notifications: s.Notifications(),
	}
}

// Clock returns the clock the store uses.
func (s *Store) Clock() clock.Clock {
	return s.clock
}

func (s *Store) taskIndex(id int) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool { return t.ID == id })
}

func (s *Store) notificationIndex(id int) int {
	return slices.IndexFunc(s.notifications, func(n domain.Notification) bool { return n.ID == id })
}
