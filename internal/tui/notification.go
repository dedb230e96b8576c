package tui

import (
	"fmt"
	"io"
	"os"
)

// Notifier rings the terminal bell when a task is completed.
// It respects the ui.bell_on_complete setting and quiet mode.
type Notifier struct {
	bellEnabled bool
	quiet       bool
	writer      io.Writer
}

// NewNotifier creates a notifier that writes to os.Stdout.
func NewNotifier(bellEnabled, quiet bool) *Notifier {
	return NewNotifierWithWriter(bellEnabled, quiet, os.Stdout)
}

// NewNotifierWithWriter creates a notifier with a custom writer.
func NewNotifierWithWriter(bellEnabled, quiet bool, w io.Writer) *Notifier {
	return &Notifier{
		bellEnabled: bellEnabled,
		quiet:       quiet,
		writer:      w,
	}
}

// Enabled reports whether Bell will write anything.
func (n *Notifier) Enabled() bool {
	return n != nil && n.bellEnabled && !n.quiet
}

// Bell emits a terminal bell character (\a) if enabled and not in quiet mode.
func (n *Notifier) Bell() {
	if n.Enabled() {
		_, _ = fmt.Fprint(n.writer, "\a")
	}
}
