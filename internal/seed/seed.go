// Package seed provides the board data the tracker starts with.
//
// The default data set is embedded in the binary as YAML. An alternate file
// can be supplied through configuration; it is only ever read.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/taskdeck/internal/domain"
	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
)

// maxSeedFileSize bounds how much of a custom seed file is read (1MB).
const maxSeedFileSize = 1024 * 1024

//go:embed seed.yaml
var defaultSeed []byte

// Default returns the embedded seed snapshot.
//
// The embedded file is validated by the package tests, so a decode failure
// here is a build defect.
func Default() domain.Snapshot {
	snap, err := Decode(bytes.NewReader(defaultSeed))
	if err != nil {
		panic(fmt.Sprintf("embedded seed is invalid: %v", err))
	}
	return snap
}

// LoadFile reads a seed snapshot from path. An empty path returns Default.
func LoadFile(path string) (domain.Snapshot, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return domain.Snapshot{}, deckerrors.Wrapf(err, "failed to open seed file %s", path)
	}
	defer func() { _ = f.Close() }()

	snap, err := Decode(io.LimitReader(f, maxSeedFileSize))
	if err != nil {
		return domain.Snapshot{}, deckerrors.Wrapf(err, "seed file %s", path)
	}
	return snap, nil
}

// Decode parses and validates a YAML snapshot.
func Decode(r io.Reader) (domain.Snapshot, error) {
	var snap domain.Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Snapshot{}, deckerrors.Wrap(deckerrors.ErrMalformedSeed, "empty document")
		}
		return domain.Snapshot{}, fmt.Errorf("%w: %w", deckerrors.ErrMalformedSeed, err)
	}
	if err := Validate(snap); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}

// Validate checks the invariants a store relies on: unique positive ids,
// non-empty titles and names, and known enum values.
func Validate(snap domain.Snapshot) error {
	taskIDs := make(map[int]bool, len(snap.Tasks))
	for _, t := range snap.Tasks {
		switch {
		case t.ID <= 0 || taskIDs[t.ID]:
			return malformed("task id %d is missing or duplicated", t.ID)
		case strings.TrimSpace(t.Title) == "":
			return malformed("task %d has no title", t.ID)
		case !t.Status.IsValid():
			return malformed("task %d has unknown status %q", t.ID, t.Status)
		case !t.Priority.IsValid():
			return malformed("task %d has unknown priority %q", t.ID, t.Priority)
		case t.EstimatedHours < 0 || t.CompletedHours < 0:
			return malformed("task %d has negative hours", t.ID)
		}
		taskIDs[t.ID] = true
	}

	projectIDs := make(map[int]bool, len(snap.Projects))
	for _, p := range snap.Projects {
		switch {
		case p.ID <= 0 || projectIDs[p.ID]:
			return malformed("project id %d is missing or duplicated", p.ID)
		case strings.TrimSpace(p.Name) == "":
			return malformed("project %d has no name", p.ID)
		case !p.Status.IsValid():
			return malformed("project %d has unknown status %q", p.ID, p.Status)
		}
		projectIDs[p.ID] = true
	}

	notifIDs := make(map[int]bool, len(snap.Notifications))
	for _, n := range snap.Notifications {
		switch {
		case n.ID <= 0 || notifIDs[n.ID]:
			return malformed("notification id %d is missing or duplicated", n.ID)
		case !n.Type.IsValid():
			return malformed("notification %d has unknown type %q", n.ID, n.Type)
		}
		notifIDs[n.ID] = true
	}
	return nil
}

func malformed(format string, args ...any) error {
	return deckerrors.Wrapf(deckerrors.ErrMalformedSeed, format, args...)
}
