package action

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
)

// maxScriptSize bounds how much of a script file is read (1MB).
const maxScriptSize = 1024 * 1024

// Script is a named, ordered list of actions.
//
//	name: triage
//	actions:
//	  - kind: set_task_status
//	    id: 2
//	    status: done
//	  - kind: mark_all_read
type Script struct {
	Name    string   `yaml:"name,omitempty" json:"name,omitempty"`
	Actions []Action `yaml:"actions" json:"actions"`
}

// LoadScript decodes a script and checks that every action kind is known.
func LoadScript(r io.Reader) (*Script, error) {
	var sc Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, deckerrors.Wrap(deckerrors.ErrMalformedScript, "empty document")
		}
		return nil, fmt.Errorf("%w: %w", deckerrors.ErrMalformedScript, err)
	}

	for i, a := range sc.Actions {
		if !a.Kind.IsValid() {
			return nil, deckerrors.Wrapf(deckerrors.ErrUnknownAction, "step %d: %q", i+1, a.Kind)
		}
	}
	return &sc, nil
}

// LoadScriptFile reads a script from path.
func LoadScriptFile(path string) (*Script, error) {
	f, err := os.Open(path) //nolint:gosec // path is a user-supplied script
	if err != nil {
		return nil, deckerrors.Wrapf(err, "failed to open script %s", path)
	}
	defer func() { _ = f.Close() }()

	sc, err := LoadScript(io.LimitReader(f, maxScriptSize))
	if err != nil {
		return nil, deckerrors.Wrapf(err, "script %s", path)
	}
	return sc, nil
}

// Replay dispatches the actions in order and returns one result per action
// applied. It stops at the first unknown action or when ctx is done.
func (d *Dispatcher) Replay(ctx context.Context, actions []Action) ([]Result, error) {
	results := make([]Result, 0, len(actions))
	for i, a := range actions {
		select {
		case <-ctx.Done():
			return results, deckerrors.Wrapf(ctx.Err(), "replay stopped before step %d", i+1)
		default:
		}

		res, err := d.Dispatch(a)
		if err != nil {
			return results, deckerrors.Wrapf(err, "step %d", i+1)
		}
		results = append(results, res)
	}

	d.logger.Debug().Int("steps", len(results)).Msg("replay complete")
	return results, nil
}

// Ptr returns a pointer to v, for filling the optional fields of an Action.
func Ptr[T any](v T) *T {
	return &v
}
