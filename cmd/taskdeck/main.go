// Package main provides the entry point for the taskdeck CLI.
package main

import (
	"context"
	stderrors "errors"
	"os"

	"github.com/mrz1836/taskdeck/internal/cli"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// Set via ldflags at build time.
var (
	version = "dev"     //nolint:gochecknoglobals // ldflags target
	commit  = "none"    //nolint:gochecknoglobals // ldflags target
	date    = "unknown" //nolint:gochecknoglobals // ldflags target
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	cli.CloseLogFile()

	if err != nil {
		// JSON errors have already been written to stdout.
		if !stderrors.Is(err, errors.ErrJSONErrorOutput) {
			tui.NewOutput(os.Stderr, tui.FormatText).Error(tui.AsActionable(err))
		}
		os.Exit(cli.ExitCodeForError(err))
	}
}
