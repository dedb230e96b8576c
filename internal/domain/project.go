package domain

import "time"

// Project groups tasks by name.
//
// Progress, TaskCount and Members are display values carried from seed data
// or set at creation. They are not kept in sync with the task collection;
// compute live completion with query.ProjectProgress instead.
type Project struct {
	ID          int           `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Color       string        `json:"color" yaml:"color"`
	Progress    int           `json:"progress" yaml:"progress"`
	TaskCount   int           `json:"task_count" yaml:"task_count"`
	Members     int           `json:"members" yaml:"members"`
	StartDate   time.Time     `json:"start_date" yaml:"start_date"`
	EndDate     *time.Time    `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Budget      float64       `json:"budget" yaml:"budget"`
	Status      ProjectStatus `json:"status" yaml:"status"`
}
