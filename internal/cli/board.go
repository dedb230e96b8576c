package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrz1836/taskdeck/internal/action"
	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/config"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/seed"
	"github.com/mrz1836/taskdeck/internal/store"
)

// boardOptions tweak how a command builds its board. Tests use them to pin
// the clock and skip the config files on disk.
type boardOptions struct {
	cfg   *config.Config
	clock clock.Clock
}

// boardOption is a functional option for loadBoard.
type boardOption func(*boardOptions)

// withConfig uses cfg instead of loading configuration from disk.
func withConfig(cfg *config.Config) boardOption {
	return func(o *boardOptions) {
		o.cfg = cfg
	}
}

// withBoardClock pins the store clock.
func withBoardClock(c clock.Clock) boardOption {
	return func(o *boardOptions) {
		o.clock = c
	}
}

// board bundles everything a command needs to work on a seeded store.
type board struct {
	cfg        *config.Config
	store      *store.Store
	dispatcher *action.Dispatcher
	logger     zerolog.Logger
}

// loadConfig loads the effective configuration, falling back to defaults
// when the files on disk cannot be read.
func loadConfig(ctx context.Context, logger zerolog.Logger) *config.Config {
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		return config.DefaultConfig()
	}
	return cfg
}

// loadBoard builds a fresh store from the configured seed. Every command
// starts from the same state; nothing it does is written back.
func loadBoard(ctx context.Context, opts ...boardOption) (*board, error) {
	logger := GetLogger()

	o := &boardOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.cfg == nil {
		o.cfg = loadConfig(ctx, logger)
	}

	snap, err := seed.LoadFile(o.cfg.Seed.File)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seed data")
	}

	storeOpts := []store.Option{store.WithLogger(logger)}
	if o.clock != nil {
		storeOpts = append(storeOpts, store.WithClock(o.clock))
	}
	s := store.New(snap, storeOpts...)

	return &board{
		cfg:        o.cfg,
		store:      s,
		dispatcher: action.NewDispatcher(s, logger),
		logger:     logger,
	}, nil
}

// outputCommandError reports err as a JSON object when JSON output is
// selected, and returns it unchanged otherwise. The object carries the raw
// error and its user-facing message. The JSON case still wraps err
// so the exit code reflects the original failure.
func outputCommandError(w io.Writer, format, command string, err error) error {
	if format == OutputJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if encErr := encoder.Encode(map[string]any{
			"success": false,
			"command": command,
			"error":   err.Error(),
			"message": errors.UserMessage(err),
		}); encErr != nil {
			return fmt.Errorf("failed to encode JSON: %w", encErr)
		}
		return fmt.Errorf("%w: %w", errors.ErrJSONErrorOutput, err)
	}
	return err
}
