package cli

// Test utilities shared by the command tests.

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/config"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// testToday is the date the seed data is written against.
var testToday = time.Date(2024, 2, 16, 9, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // test fixture

// testBoardOptions pins the config to defaults and the clock to testToday so
// command output does not depend on the machine running the tests.
func testBoardOptions() []boardOption {
	cfg := config.DefaultConfig()
	cfg.Session.LoginDelay = 0
	return []boardOption{withConfig(cfg), withBoardClock(clock.Fixed{T: testToday})}
}

// newTestCmd returns a command carrying the global flags, with --output set.
func newTestCmd(t *testing.T, format string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd, &GlobalFlags{})
	require.NoError(t, cmd.PersistentFlags().Set("output", format))
	return cmd
}

// mockTerminalCheckFunc replaces terminalCheck and returns a restore func.
//
//	defer mockTerminalCheckFunc(true)()
func mockTerminalCheckFunc(isTerminal bool) func() {
	original := terminalCheck
	terminalCheck = func() bool { return isTerminal }
	return func() { terminalCheck = original }
}

// mockTaskForm replaces promptTaskForm with one that answers with values
// (or err) and returns a restore func.
func mockTaskForm(values tui.TaskFormValues, err error) func() {
	original := promptTaskForm
	promptTaskForm = func(_ tui.TaskFormValues, _ []string, _ *tui.MenuConfig) (tui.TaskFormValues, error) {
		return values, err
	}
	return func() { promptTaskForm = original }
}

// mockSelect replaces promptSelect with one that answers value (or err). The
// options it was shown are recorded in *seen when seen is not nil.
func mockSelect(value string, err error, seen *[]tui.Option) func() {
	original := promptSelect
	promptSelect = func(_ string, options []tui.Option, _ *tui.MenuConfig) (string, error) {
		if seen != nil {
			*seen = options
		}
		return value, err
	}
	return func() { promptSelect = original }
}

// mockConfirm replaces promptConfirm with one that answers confirmed and
// counts its calls in *calls when calls is not nil.
func mockConfirm(confirmed bool, calls *int) func() {
	original := promptConfirm
	promptConfirm = func(_ string, _ bool, _ *tui.MenuConfig) (bool, error) {
		if calls != nil {
			*calls++
		}
		return confirmed, nil
	}
	return func() { promptConfirm = original }
}
