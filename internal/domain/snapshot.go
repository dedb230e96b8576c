package domain

// User is the signed-in demo user.
type User struct {
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email,omitempty" yaml:"email,omitempty"`
	Role   string `json:"role,omitempty" yaml:"role,omitempty"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Snapshot is a copy of every board collection.
// Seed data is decoded into a Snapshot and stores export one for display.
type Snapshot struct {
	User          User           `json:"user" yaml:"user"`
	Tasks         []Task         `json:"tasks" yaml:"tasks"`
	Projects      []Project      `json:"projects" yaml:"projects"`
	Notifications []Notification `json:"notifications" yaml:"notifications"`
}
