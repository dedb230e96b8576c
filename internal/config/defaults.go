package config

import (
	"github.com/mrz1836/taskdeck/internal/constants"
)

// DefaultConfig returns a new Config with default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			LoginDelay:  constants.DefaultLoginDelay,
			DefaultUser: constants.DefaultUser,
		},
		Seed: SeedConfig{},
		UI: UIConfig{
			DefaultView:     string(constants.ViewDashboard),
			BellOnComplete:  true,
			RefreshInterval: constants.DefaultRefreshInterval,
		},
	}
}
