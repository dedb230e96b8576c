package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsedTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		duration time.Duration
		expected string
	}{
		{30 * time.Second, "(30s elapsed)"},
		{59 * time.Second, "(59s elapsed)"},
		{60 * time.Second, "(1m 0s elapsed)"},
		{150 * time.Second, "(2m 30s elapsed)"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, formatElapsedTime(tt.duration))
		})
	}
}

func TestNoopSpinner(t *testing.T) {
	t.Parallel()

	spinner := &NoopSpinner{}
	assert.NotPanics(t, func() {
		spinner.Update("message")
		spinner.Stop()
		spinner.Stop()
	})
}
