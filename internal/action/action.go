// Package action is the boundary between user events and the store.
//
// Every event, whether a key press in the dashboard or a step in a replay
// script, is an Action. Dispatch routes it to the matching store operation and
// runs it to completion before the next action is handled.
//
// The only error Dispatch surfaces is ErrUnknownAction. Everything else the
// store rejects (blank titles, unknown ids, invalid filters) is a silent
// no-op reported through Result.Applied.
package action

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/store"
)

// Kind names a store operation.
type Kind string

// Action kinds.
const (
	KindCreateTask      Kind = "create_task"
	KindSetTaskStatus   Kind = "set_task_status"
	KindCycleTaskStatus Kind = "cycle_task_status"
	KindUpdateTask      Kind = "update_task"
	KindDeleteTask      Kind = "delete_task"
	KindLogHours        Kind = "log_hours"
	KindCreateProject   Kind = "create_project"
	KindNotify          Kind = "notify"
	KindMarkRead        Kind = "mark_read"
	KindMarkAllRead     Kind = "mark_all_read"
	KindSetView         Kind = "set_view"
	KindSetFilter       Kind = "set_filter"
	KindToggleModal     Kind = "toggle_modal"
)

// Kinds returns every known action kind.
func Kinds() []Kind {
	return []Kind{
		KindCreateTask, KindSetTaskStatus, KindCycleTaskStatus, KindUpdateTask,
		KindDeleteTask, KindLogHours, KindCreateProject, KindNotify,
		KindMarkRead, KindMarkAllRead, KindSetView, KindSetFilter, KindToggleModal,
	}
}

// IsValid checks if the kind is known.
func (k Kind) IsValid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Filter field names accepted by set_filter.
const (
	FilterQuery    = "query"
	FilterStatus   = "status"
	FilterPriority = "priority"
)

// Action is one user event. Only the fields relevant to Kind are read.
//
// Example script entry:
//
//	- kind: create_task
//	  title: Write release notes
//	  priority: high
//	  project: Website Redesign
//	  due_date: 2024-03-01
type Action struct {
	Kind Kind `yaml:"kind" json:"kind"`

	// ID targets a task (task kinds) or a notification (mark_read).
	ID int `yaml:"id,omitempty" json:"id,omitempty"`

	Title          *string                 `yaml:"title,omitempty" json:"title,omitempty"`
	Description    *string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Priority       *domain.Priority        `yaml:"priority,omitempty" json:"priority,omitempty"`
	Status         *domain.TaskStatus      `yaml:"status,omitempty" json:"status,omitempty"`
	Project        *string                 `yaml:"project,omitempty" json:"project,omitempty"`
	Assignee       *string                 `yaml:"assignee,omitempty" json:"assignee,omitempty"`
	DueDate        *time.Time              `yaml:"due_date,omitempty" json:"due_date,omitempty"`
	EstimatedHours *float64                `yaml:"estimated_hours,omitempty" json:"estimated_hours,omitempty"`
	Hours          float64                 `yaml:"hours,omitempty" json:"hours,omitempty"`
	Name           string                  `yaml:"name,omitempty" json:"name,omitempty"`
	Color          string                  `yaml:"color,omitempty" json:"color,omitempty"`
	Type           domain.NotificationType `yaml:"type,omitempty" json:"type,omitempty"`
	Message        string                  `yaml:"message,omitempty" json:"message,omitempty"`
	View           constants.View          `yaml:"view,omitempty" json:"view,omitempty"`
	Filter         string                  `yaml:"filter,omitempty" json:"filter,omitempty"`
	Value          string                  `yaml:"value,omitempty" json:"value,omitempty"`
	Modal          store.Modal             `yaml:"modal,omitempty" json:"modal,omitempty"`
}

// Result reports the outcome of one dispatched action.
type Result struct {
	Kind    Kind `json:"kind"`
	Applied bool `json:"applied"`

	// Target is the id of the entity the action created or touched, when any.
	Target int `json:"target,omitempty"`
}

// Dispatcher applies actions to one store.
type Dispatcher struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewDispatcher creates a dispatcher for s.
func NewDispatcher(s *store.Store, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		store:  s,
		logger: logger.With().Str("component", "action").Logger(),
	}
}

// Store returns the store the dispatcher mutates.
func (d *Dispatcher) Store() *store.Store {
	return d.store
}

// Dispatch applies a to the store.
func (d *Dispatcher) Dispatch(a Action) (Result, error) {
	res, err := d.apply(a)
	if err != nil {
		d.logger.Debug().Str("kind", string(a.Kind)).Msg("rejected unknown action")
		return res, err
	}
	d.logger.Debug().
		Str("kind", string(a.Kind)).
		Bool("applied", res.Applied).
		Int("target", res.Target).
		Msg("action dispatched")
	return res, nil
}

func (d *Dispatcher) apply(a Action) (Result, error) {
	s := d.store
	res := Result{Kind: a.Kind}

	switch a.Kind {
	case KindCreateTask:
		t, ok := s.CreateTask(store.NewTask{
			Title:          deref(a.Title),
			Description:    deref(a.Description),
			Priority:       deref(a.Priority),
			Project:        deref(a.Project),
			Assignee:       deref(a.Assignee),
			DueDate:        a.DueDate,
			EstimatedHours: deref(a.EstimatedHours),
		})
		res.Applied, res.Target = ok, t.ID

	case KindSetTaskStatus:
		res.Applied, res.Target = s.SetTaskStatus(a.ID, deref(a.Status)), a.ID

	case KindCycleTaskStatus:
		res.Applied, res.Target = s.CycleTaskStatus(a.ID), a.ID

	case KindUpdateTask:
		_, ok := s.UpdateTask(a.ID, store.TaskPatch{
			Title:          a.Title,
			Description:    a.Description,
			Priority:       a.Priority,
			Project:        a.Project,
			Assignee:       a.Assignee,
			DueDate:        a.DueDate,
			EstimatedHours: a.EstimatedHours,
		})
		// A status in an update still goes through SetTaskStatus so the
		// done side effect fires.
		if ok && a.Status != nil {
			s.SetTaskStatus(a.ID, *a.Status)
		}
		res.Applied, res.Target = ok, a.ID

	case KindDeleteTask:
		_, ok := s.DeleteTask(a.ID)
		res.Applied, res.Target = ok, a.ID

	case KindLogHours:
		_, ok := s.LogHours(a.ID, a.Hours)
		res.Applied, res.Target = ok, a.ID

	case KindCreateProject:
		p, ok := s.CreateProject(store.NewProject{Name: a.Name, Description: deref(a.Description), Color: a.Color})
		res.Applied, res.Target = ok, p.ID

	case KindNotify:
		n, ok := s.Notify(a.Type, a.Message)
		res.Applied, res.Target = ok, n.ID

	case KindMarkRead:
		res.Applied, res.Target = s.MarkRead(a.ID), a.ID

	case KindMarkAllRead:
		res.Applied = s.MarkAllRead() > 0

	case KindSetView:
		res.Applied = s.SetView(a.View)

	case KindSetFilter:
		res.Applied = d.setFilter(a.Filter, a.Value)

	case KindToggleModal:
		res.Applied = s.ToggleModal(a.Modal)

	default:
		return res, deckerrors.Wrapf(deckerrors.ErrUnknownAction, "%q", a.Kind)
	}
	return res, nil
}

func (d *Dispatcher) setFilter(field, value string) bool {
	switch field {
	case FilterQuery:
		d.store.SetQuery(value)
		return true
	case FilterStatus:
		return d.store.SetStatusFilter(value)
	case FilterPriority:
		return d.store.SetPriorityFilter(value)
	default:
		d.logger.Debug().Str("filter", field).Msg("ignoring unknown filter field")
		return false
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
