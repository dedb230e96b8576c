package tui_test

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/taskdeck/internal/tui"
)

// safeSpinnerBuffer is a thread-safe buffer for spinner tests.
type safeSpinnerBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (sb *safeSpinnerBuffer) Write(p []byte) (n int, err error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.Write(p)
}

func (sb *safeSpinnerBuffer) String() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.String()
}

var _ io.Writer = (*safeSpinnerBuffer)(nil)

func TestSpinner_StartStop(t *testing.T) {
	buf := &safeSpinnerBuffer{}
	spinner := tui.NewSpinner(buf)

	spinner.Start(context.Background(), "Signing in as alex...")
	time.Sleep(150 * time.Millisecond)
	spinner.Stop()

	assert.Contains(t, buf.String(), "Signing in as alex...")
}

func TestSpinner_UpdateMessage(t *testing.T) {
	buf := &safeSpinnerBuffer{}
	spinner := tui.NewSpinner(buf)

	spinner.Start(context.Background(), "Initial")
	spinner.UpdateMessage("Loading board")
	time.Sleep(150 * time.Millisecond)
	spinner.Stop()

	assert.Contains(t, buf.String(), "Loading board")
}

func TestSpinner_StopWithResult(t *testing.T) {
	tests := []struct {
		name string
		stop func(*tui.TerminalSpinner)
		want string
	}{
		{"success", func(s *tui.TerminalSpinner) { s.StopWithSuccess("Signed in") }, "✓ Signed in"},
		{"error", func(s *tui.TerminalSpinner) { s.StopWithError("Login canceled") }, "✗ Login canceled"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			tui.CheckNoColor()

			buf := &safeSpinnerBuffer{}
			spinner := tui.NewSpinner(buf)
			spinner.Start(context.Background(), "Working")
			tc.stop(spinner)

			assert.Contains(t, buf.String(), tc.want)
		})
	}
}

func TestSpinner_ContextCancellationStopsAnimation(t *testing.T) {
	buf := &safeSpinnerBuffer{}
	spinner := tui.NewSpinner(buf)

	ctx, cancel := context.WithCancel(context.Background())
	spinner.Start(ctx, "Cancellable")
	time.Sleep(150 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)

	written := buf.String()
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, written, buf.String(), "no frames after cancellation")
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	spinner := tui.NewSpinner(&buf)
	assert.NotPanics(t, func() {
		spinner.Stop()
		spinner.Stop()
	})
	assert.Empty(t, buf.String())
}

func TestSpinnerAdapter(t *testing.T) {
	buf := &safeSpinnerBuffer{}
	adapter := tui.NewSpinnerAdapter(context.Background(), buf, "first")
	adapter.Update("second")
	time.Sleep(150 * time.Millisecond)
	adapter.Stop()

	assert.Contains(t, buf.String(), "second")
}

func TestSpinnerAdapter_StopWithResult(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	tui.CheckNoColor()

	buf := &safeSpinnerBuffer{}
	var spinner tui.Spinner = tui.NewSpinnerAdapter(context.Background(), buf, "Signing in")
	spinner.StopWithSuccess("Signed in as demo")
	assert.Contains(t, buf.String(), "✓ Signed in as demo")

	buf = &safeSpinnerBuffer{}
	spinner = tui.NewSpinnerAdapter(context.Background(), buf, "Signing in")
	spinner.StopWithError("Sign-in failed")
	assert.Contains(t, buf.String(), "✗ Sign-in failed")
}

func TestNoopSpinner_WritesNothing(t *testing.T) {
	t.Parallel()

	var spinner tui.Spinner = &tui.NoopSpinner{}
	assert.NotPanics(t, func() {
		spinner.Update("x")
		spinner.StopWithSuccess("done")
		spinner.StopWithError("failed")
		spinner.Stop()
	})
}
