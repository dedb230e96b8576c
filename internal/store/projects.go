package store

import (
	"fmt"
	"strings"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
)

// NewProject holds the fields a caller supplies when creating a project.
type NewProject struct {
	Name        string
	Description string
	Color       string
}

// CreateProject appends an active project with zero progress and one member,
// then emits a success notification. It is a no-op when the name is blank.
//
// Names are not checked for uniqueness.
func (s *Store) CreateProject(in NewProject) (domain.Project, bool) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		s.logger.Debug().Msg("ignoring project with empty name")
		return domain.Project{}, false
	}

	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = constants.DefaultProjectColor
	}

	s.lastProjectID++
	p := domain.Project{
		ID:          s.lastProjectID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Color:       color,
		Members:     constants.DefaultProjectMembers,
		StartDate:   clock.Today(s.clock),
		Status:      constants.ProjectStatusActive,
	}
	s.projects = append(s.projects, p)

	s.logger.Debug().Int("project_id", p.ID).Str("name", p.Name).Msg("project created")
	s.Notify(constants.NotificationSuccess, fmt.Sprintf("Project %q created", p.Name))
	return p, true
}
