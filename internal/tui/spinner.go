package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// safeWriter wraps an io.Writer with mutex protection for concurrent access.
// The spinner animation goroutine and the command share the same writer.
type safeWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func newSafeWriter(w io.Writer) *safeWriter {
	return &safeWriter{w: w}
}

// Write implements io.Writer with mutex protection.
func (sw *safeWriter) Write(p []byte) (n int, err error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Write(p)
}

// flushWriter flushes w if it supports Sync, so escape sequences reach the
// terminal immediately.
func flushWriter(w io.Writer) {
	type syncer interface {
		Sync() error
	}
	if s, ok := w.(syncer); ok {
		_ = s.Sync()
	}
}

// spinnerFrames are the animation frames for the spinner.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"} //nolint:gochecknoglobals // Package-level constant for spinner animation

// SpinnerInterval is the default update interval for spinner animation.
const SpinnerInterval = 100 * time.Millisecond

// ElapsedTimeThreshold is the duration after which elapsed time is shown in spinner.
const ElapsedTimeThreshold = 5 * time.Second

// TerminalSpinner provides animated progress indication for terminal output,
// such as the simulated login delay of `taskdeck login`.
type TerminalSpinner struct {
	w       *safeWriter
	styles  *OutputStyles
	message string
	started time.Time
	done    chan struct{}
	mu      sync.Mutex
	running bool
	stopped bool
}

// NewSpinner creates a new spinner that writes to w.
func NewSpinner(w io.Writer) *TerminalSpinner {
	return &TerminalSpinner{
		w:      newSafeWriter(w),
		styles: NewOutputStyles(),
	}
}

// Start begins the spinner animation with the given message.
// Calling Start on a running spinner only updates the message.
func (s *TerminalSpinner) Start(ctx context.Context, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = message
	if s.running {
		return
	}

	s.started = time.Now()
	s.running = true
	s.stopped = false
	s.done = make(chan struct{})

	done := s.done
	go s.animate(ctx, done)
}

// UpdateMessage changes the spinner message without stopping the animation.
func (s *TerminalSpinner) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// Stop stops the spinner animation and clears the line.
func (s *TerminalSpinner) Stop() {
	s.mu.Lock()
	if !s.running || s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.running = false
	done := s.done
	s.mu.Unlock()

	close(done)
	_, _ = fmt.Fprint(s.w, "\r\033[K")
	flushWriter(s.w)
}

// StopWithSuccess stops the spinner and displays a success message.
func (s *TerminalSpinner) StopWithSuccess(message string) {
	s.Stop()
	_, _ = fmt.Fprintln(s.w, s.styles.Success.Render("✓ "+message))
}

// StopWithError stops the spinner and displays an error message.
func (s *TerminalSpinner) StopWithError(message string) {
	s.Stop()
	_, _ = fmt.Fprintln(s.w, s.styles.Error.Render("✗ "+message))
}

// animate runs the spinner animation loop until done is closed or ctx ends.
func (s *TerminalSpinner) animate(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(SpinnerInterval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			s.mu.Lock()
			wasRunning := s.running && !s.stopped
			s.running = false
			s.stopped = true
			s.mu.Unlock()

			if wasRunning {
				_, _ = fmt.Fprint(s.w, "\r\033[K")
				flushWriter(s.w)
			}
			return
		case <-ticker.C:
			s.mu.Lock()
			msg := s.message
			if elapsed := time.Since(s.started); elapsed > ElapsedTimeThreshold {
				msg = fmt.Sprintf("%s %s", msg, formatElapsedTime(elapsed))
			}
			s.mu.Unlock()

			// Frame (1 cell) + space + safety margin.
			if maxMsg := spinnerTerminalWidth() - 3; maxMsg > 0 {
				msg = runewidth.Truncate(msg, maxMsg, "...")
			}
			spinnerFrame := s.styles.Info.Render(spinnerFrames[frame%len(spinnerFrames)])
			_, _ = fmt.Fprintf(s.w, "\r\033[K%s %s", spinnerFrame, msg)
			flushWriter(s.w)
			frame++
		}
	}
}

// formatElapsedTime formats duration in human-readable form for display.
func formatElapsedTime(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("(%ds elapsed)", int(d.Seconds()))
	}
	return fmt.Sprintf("(%dm %ds elapsed)", int(d.Minutes()), int(d.Seconds())%60)
}

// spinnerTerminalWidth returns the stderr terminal width, or 80.
func spinnerTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stderr.Fd())) //nolint:gosec // G115: file descriptors fit in int
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}

// SpinnerAdapter wraps the TerminalSpinner to satisfy the Spinner interface.
type SpinnerAdapter struct {
	spinner *TerminalSpinner
	cancel  context.CancelFunc
}

// NewSpinnerAdapter starts a spinner bound to a child of ctx.
func NewSpinnerAdapter(ctx context.Context, w io.Writer, msg string) *SpinnerAdapter {
	ctx, cancel := context.WithCancel(ctx)
	s := NewSpinner(w)
	s.Start(ctx, msg)
	return &SpinnerAdapter{
		spinner: s,
		cancel:  cancel,
	}
}

// Update changes the spinner message.
func (a *SpinnerAdapter) Update(msg string) {
	a.spinner.UpdateMessage(msg)
}

// Stop terminates the spinner.
func (a *SpinnerAdapter) Stop() {
	a.spinner.Stop()
	a.cancel()
}

// StopWithSuccess terminates the spinner with a success line.
func (a *SpinnerAdapter) StopWithSuccess(msg string) {
	a.spinner.StopWithSuccess(msg)
	a.cancel()
}

// StopWithError terminates the spinner with an error line.
func (a *SpinnerAdapter) StopWithError(msg string) {
	a.spinner.StopWithError(msg)
	a.cancel()
}

// NoopSpinner is a no-op spinner for JSON output.
type NoopSpinner struct{}

// Update is a no-op for NoopSpinner.
func (*NoopSpinner) Update(_ string) {}

// Stop is a no-op for NoopSpinner.
func (*NoopSpinner) Stop() {}

// StopWithSuccess is a no-op for NoopSpinner.
func (*NoopSpinner) StopWithSuccess(_ string) {}

// StopWithError is a no-op for NoopSpinner.
func (*NoopSpinner) StopWithError(_ string) {}
