package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TTYOutput provides styled terminal output using Lip Gloss.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
	table  *TableStyles
}

// NewTTYOutput creates a new TTYOutput with styled output.
// Respects NO_COLOR environment variable via CheckNoColor().
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()

	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(),
		table:  NewTableStyles(),
	}
}

// Success outputs a success message with green color and ✓ icon.
func (o *TTYOutput) Success(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Success.Render("✓ "+msg))
}

// Error outputs an error with red color and ✗ icon.
// If the error is an ActionableError, it also displays the suggestion
// with a dim "▸ Try:" prefix.
func (o *TTYOutput) Error(err error) {
	var ae *ActionableError
	if errors.As(err, &ae) {
		_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+ae.Error()))
		if ae.Suggestion != "" {
			_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  ▸ Try: "+ae.Suggestion))
		}
		return
	}
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+err.Error()))
}

// Warning outputs a warning message with yellow color and ⚠ icon.
func (o *TTYOutput) Warning(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info outputs an informational message with blue color and ℹ icon.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render("ℹ "+msg))
}

// Table outputs tabular data with aligned columns.
// Column widths are display widths, so styled and wide-rune cells line up.
func (o *TTYOutput) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	headerParts := make([]string, 0, len(headers))
	for i, h := range headers {
		headerParts = append(headerParts, o.table.Header.Render(padRight(h, widths[i])))
	}
	_, _ = fmt.Fprintln(o.w, strings.TrimRight(strings.Join(headerParts, "  "), " "))

	for _, row := range rows {
		rowParts := make([]string, 0, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rowParts = append(rowParts, o.table.Cell.Render(padRight(cell, widths[i])))
		}
		_, _ = fmt.Fprintln(o.w, strings.TrimRight(strings.Join(rowParts, "  "), " "))
	}
}

// JSON outputs an arbitrary value as formatted JSON.
func (o *TTYOutput) JSON(v any) error {
	encoder := json.NewEncoder(o.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Spinner returns a SpinnerAdapter for animated progress indication.
func (o *TTYOutput) Spinner(ctx context.Context, msg string) Spinner {
	return NewSpinnerAdapter(ctx, o.w, msg)
}
