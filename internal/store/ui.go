package store

import (
	"strings"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
	"github.com/mrz1836/taskdeck/internal/query"
)

// Modal identifies an overlay the dashboard can show.
type Modal string

// Modal constants.
const (
	ModalTask          Modal = "task"
	ModalProject       Modal = "project"
	ModalNotifications Modal = "notifications"
)

// IsValid checks if the modal is a known value.
func (m Modal) IsValid() bool {
	switch m {
	case ModalTask, ModalProject, ModalNotifications:
		return true
	default:
		return false
	}
}

// UIState is the ephemeral presentation state of the dashboard.
type UIState struct {
	View              constants.View `json:"view" yaml:"view"`
	Query             string         `json:"query" yaml:"query"`
	StatusFilter      string         `json:"status_filter" yaml:"status_filter"`
	PriorityFilter    string         `json:"priority_filter" yaml:"priority_filter"`
	ShowTaskModal     bool           `json:"show_task_modal" yaml:"show_task_modal"`
	ShowProjectModal  bool           `json:"show_project_modal" yaml:"show_project_modal"`
	ShowNotifications bool           `json:"show_notifications" yaml:"show_notifications"`
}

// DefaultUIState returns the state the dashboard opens with.
func DefaultUIState() UIState {
	return UIState{
		View:           constants.ViewDashboard,
		StatusFilter:   constants.FilterAll,
		PriorityFilter: constants.FilterAll,
	}
}

// Filter converts the search and filter fields into a query.Filter.
func (u UIState) Filter() query.Filter {
	return query.Filter{
		Query:    u.Query,
		Status:   u.StatusFilter,
		Priority: u.PriorityFilter,
	}
}

// ModalOpen reports whether the given modal is visible.
func (u UIState) ModalOpen(m Modal) bool {
	switch m {
	case ModalTask:
		return u.ShowTaskModal
	case ModalProject:
		return u.ShowProjectModal
	case ModalNotifications:
		return u.ShowNotifications
	default:
		return false
	}
}

// UI returns the current UI state.
func (s *Store) UI() UIState {
	return s.ui
}

// SetView switches the visible section. Unknown views are ignored.
func (s *Store) SetView(v constants.View) bool {
	if !v.IsValid() {
		s.logger.Debug().Str("view", string(v)).Msg("ignoring unknown view")
		return false
	}
	s.ui.View = v
	return true
}

// SetQuery sets the free-text search.
func (s *Store) SetQuery(q string) {
	s.ui.Query = q
}

// SetStatusFilter sets the status filter to a status or "all".
func (s *Store) SetStatusFilter(f string) bool {
	f = strings.TrimSpace(f)
	if f != constants.FilterAll && !constants.TaskStatus(f).IsValid() {
		s.logger.Debug().Str("filter", f).Msg("ignoring unknown status filter")
		return false
	}
	s.ui.StatusFilter = f
	return true
}

// SetPriorityFilter sets the priority filter to a priority or "all".
func (s *Store) SetPriorityFilter(f string) bool {
	f = strings.TrimSpace(f)
	if f != constants.FilterAll && !constants.Priority(f).IsValid() {
		s.logger.Debug().Str("filter", f).Msg("ignoring unknown priority filter")
		return false
	}
	s.ui.PriorityFilter = f
	return true
}

// SetModal opens or closes a modal.
func (s *Store) SetModal(m Modal, open bool) bool {
	switch m {
	case ModalTask:
		s.ui.ShowTaskModal = open
	case ModalProject:
		s.ui.ShowProjectModal = open
	case ModalNotifications:
		s.ui.ShowNotifications = open
	default:
		s.logger.Debug().Str("modal", string(m)).Msg("ignoring unknown modal")
		return false
	}
	return true
}

// ToggleModal flips the visibility of a modal.
func (s *Store) ToggleModal(m Modal) bool {
	return s.SetModal(m, !s.ui.ModalOpen(m))
}

// VisibleTasks returns the tasks that pass the current search and filters.
func (s *Store) VisibleTasks() []domain.Task {
	return query.FilteredTasks(s.tasks, s.ui.Filter())
}
