package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/errors"
)

// newViperInstance creates a new Viper instance with standard taskdeck configuration.
// This includes environment variable prefix (TASKDECK_), key replacer, and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("TASKDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// durationKeys are the settings decoded into time.Duration.
var durationKeys = []string{"session.login_delay", "ui.refresh_interval"} //nolint:gochecknoglobals // fixed key list

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	for _, key := range durationKeys {
		if raw := v.GetString(key); raw != "" {
			if _, err := time.ParseDuration(raw); err != nil {
				return nil, errors.Wrapf(errors.ErrInvalidDuration, "%s: %q", key, raw)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (TASKDECK_* prefix)
//  2. Project config (.taskdeck/config.yaml)
//  3. Global config (~/.taskdeck/config.yaml)
//  4. Built-in defaults
//
// For CLI flag overrides, use LoadWithOverrides instead.
//
// Missing config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	globalConfigPath, _ := getGlobalConfigPathIfExists()

	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		projectConfigPath = ""
	}

	cfg, err := LoadFromPaths(ctx, projectConfigPath, globalConfigPath)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("global_config", globalConfigPath).
		Str("project_config", projectConfigPath).
		Dur("session.login_delay", cfg.Session.LoginDelay).
		Str("seed.file", cfg.Seed.File).
		Str("ui.default_view", cfg.UI.DefaultView).
		Msg("configuration loaded")

	return cfg, nil
}

// getGlobalConfigPathIfExists returns the global config path if it exists.
func getGlobalConfigPathIfExists() (string, bool) {
	globalDir, err := GlobalConfigDir()
	if err != nil {
		return "", false
	}

	globalConfigPath := filepath.Join(globalDir, constants.GlobalConfigName)
	if _, err := os.Stat(globalConfigPath); err != nil {
		return "", false
	}

	return globalConfigPath, true
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides.
// Only non-zero values in overrides are applied.
func LoadWithOverrides(ctx context.Context, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}

	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths. Load calls it
// with whichever of the standard config files exist.
//
// projectConfigPath is the path to project-level config (higher priority).
// globalConfigPath is the path to global config (lower priority).
// Either path can be empty to skip that level.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config file: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config file: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// setDefaults configures all default values on the Viper instance.
// These defaults match the values from DefaultConfig().
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("session.login_delay", d.Session.LoginDelay.String())
	v.SetDefault("session.default_user", d.Session.DefaultUser)

	v.SetDefault("seed.file", d.Seed.File)

	v.SetDefault("ui.default_view", d.UI.DefaultView)
	v.SetDefault("ui.bell_on_complete", d.UI.BellOnComplete)
	v.SetDefault("ui.refresh_interval", d.UI.RefreshInterval.String())
}

// applyOverrides merges non-zero override values into the config.
//
// IMPORTANT: BellOnComplete cannot be overridden to false here because Go's
// zero value for bool is false. CLI implementations should check
// cmd.Flags().Changed for boolean flags and set the field directly.
func applyOverrides(cfg, overrides *Config) {
	if overrides.Session.LoginDelay != 0 {
		cfg.Session.LoginDelay = overrides.Session.LoginDelay
	}
	if overrides.Session.DefaultUser != "" {
		cfg.Session.DefaultUser = overrides.Session.DefaultUser
	}
	if overrides.Seed.File != "" {
		cfg.Seed.File = overrides.Seed.File
	}
	if overrides.UI.DefaultView != "" {
		cfg.UI.DefaultView = overrides.UI.DefaultView
	}
	if overrides.UI.RefreshInterval != 0 {
		cfg.UI.RefreshInterval = overrides.UI.RefreshInterval
	}
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to handle time.Duration conversion from strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
