// Package config provides configuration management for taskdeck with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (TASKDECK_* prefix)
//  3. Project config (.taskdeck/config.yaml)
//  4. Global config (~/.taskdeck/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
// Configuration only tunes presentation and the simulated login; board data
// is never written anywhere.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import "time"

// Config is the root configuration structure for taskdeck.
type Config struct {
	// Session contains settings for the simulated login.
	Session SessionConfig `yaml:"session" mapstructure:"session"`

	// Seed selects the board data the tracker starts with.
	Seed SeedConfig `yaml:"seed" mapstructure:"seed"`

	// UI contains settings for the interactive dashboard.
	UI UIConfig `yaml:"ui" mapstructure:"ui"`
}

// SessionConfig contains settings for the simulated login.
type SessionConfig struct {
	// LoginDelay is how long the login spinner runs before the dashboard opens.
	// Default: 1.5s. Maximum: 30s.
	LoginDelay time.Duration `yaml:"login_delay" mapstructure:"login_delay"`

	// DefaultUser is the username pre-filled in the login form.
	// Default: "demo"
	DefaultUser string `yaml:"default_user" mapstructure:"default_user"`
}

// SeedConfig selects the initial board data.
type SeedConfig struct {
	// File is an optional path to a YAML snapshot used instead of the
	// built-in demo data. The file is only read, never written.
	File string `yaml:"file" mapstructure:"file"`
}

// UIConfig contains settings for the interactive dashboard.
type UIConfig struct {
	// DefaultView is the section shown after login: dashboard, tasks,
	// projects or notifications.
	// Default: "dashboard"
	DefaultView string `yaml:"default_view" mapstructure:"default_view"`

	// BellOnComplete rings the terminal bell when a task is completed.
	// Default: true
	BellOnComplete bool `yaml:"bell_on_complete" mapstructure:"bell_on_complete"`

	// RefreshInterval controls how often relative notification labels are
	// recomputed while the dashboard is open.
	// Default: 30s
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`
}
