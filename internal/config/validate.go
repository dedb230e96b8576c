package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/errors"
)

// minRefreshInterval keeps the dashboard from redrawing labels in a tight loop.
const minRefreshInterval = time.Second

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - session.login_delay must be between 0 and 30s
//   - session.default_user must not be blank
//   - ui.default_view must be a known view
//   - ui.refresh_interval must be at least 1s
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateSessionConfig(&cfg.Session); err != nil {
		return err
	}

	return validateUIConfig(&cfg.UI)
}

// validateSessionConfig checks login settings.
func validateSessionConfig(cfg *SessionConfig) error {
	if cfg.LoginDelay < 0 || cfg.LoginDelay > constants.MaxLoginDelay {
		return errors.Wrapf(errors.ErrConfigInvalidSession,
			"session.login_delay must be between 0 and %s, got %s", constants.MaxLoginDelay, cfg.LoginDelay)
	}
	if strings.TrimSpace(cfg.DefaultUser) == "" {
		return errors.Wrap(errors.ErrConfigInvalidSession,
			"session.default_user must not be empty")
	}
	return nil
}

// validateUIConfig checks dashboard settings.
func validateUIConfig(cfg *UIConfig) error {
	if !constants.View(cfg.DefaultView).IsValid() {
		return fmt.Errorf("%w: %w: ui.default_view must be one of %v, got %q",
			errors.ErrConfigInvalidUI, errors.ErrInvalidView, constants.ValidViews(), cfg.DefaultView)
	}
	if cfg.RefreshInterval < minRefreshInterval {
		return errors.Wrapf(errors.ErrConfigInvalidUI,
			"ui.refresh_interval must be at least %s, got %s", minRefreshInterval, cfg.RefreshInterval)
	}
	return nil
}
