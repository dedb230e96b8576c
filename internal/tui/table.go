package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/domain"
)

// Terminal width thresholds for the task table.
const (
	// TerminalWidthNarrow is the width below which headers are abbreviated
	// and the project column is dropped.
	TerminalWidthNarrow = 80

	// MinTitleWidth is the narrowest the title column is squeezed to.
	MinTitleWidth = 12
)

// TaskTableConfig holds configuration for the task table.
type TaskTableConfig struct {
	// TerminalWidth is the detected terminal width (or forced width for testing).
	TerminalWidth int
	// Narrow indicates whether to use abbreviated headers.
	Narrow bool
	// Today is the calendar date used for due labels.
	Today time.Time
}

// TaskTableOption is a functional option for TaskTable configuration.
type TaskTableOption func(*TaskTable)

// WithTerminalWidth forces a terminal width instead of detecting it.
func WithTerminalWidth(width int) TaskTableOption {
	return func(t *TaskTable) {
		t.config.TerminalWidth = width
		t.config.Narrow = width > 0 && width < TerminalWidthNarrow
	}
}

// WithToday sets the date used to label due dates.
func WithToday(today time.Time) TaskTableOption {
	return func(t *TaskTable) {
		t.config.Today = today
	}
}

// TaskTable renders tasks in a formatted table.
type TaskTable struct {
	tasks  []domain.Task
	styles *TableStyles
	config TaskTableConfig
}

// NewTaskTable creates a new task table.
// Automatically detects terminal width and narrow mode.
func NewTaskTable(tasks []domain.Task, opts ...TaskTableOption) *TaskTable {
	t := &TaskTable{
		tasks:  tasks,
		styles: NewTableStyles(),
		config: TaskTableConfig{
			TerminalWidth: detectTerminalWidth(),
			Today:         time.Now(),
		},
	}
	t.config.Narrow = t.config.TerminalWidth > 0 && t.config.TerminalWidth < TerminalWidthNarrow

	for _, opt := range opts {
		opt(t)
	}
	return t
}

// detectTerminalWidth returns the current terminal width.
// Returns DefaultTerminalWidth if detection fails.
func detectTerminalWidth() int {
	if w := TerminalWidth(); w > 0 {
		return w
	}
	return DefaultTerminalWidth
}

// Headers returns the column headers, abbreviated in narrow mode.
func (t *TaskTable) Headers() []string {
	if t.config.Narrow {
		return []string{"ID", "TITLE", "STAT", "PRI", "DUE"}
	}
	return t.FullHeaders()
}

// FullHeaders returns the full column headers.
func (t *TaskTable) FullHeaders() []string {
	return []string{"ID", "TITLE", "STATUS", "PRIORITY", "PROJECT", "DUE"}
}

// Render writes the formatted table to w.
// Status and priority cells are colored; the title column is truncated so
// the table fits the terminal.
func (t *TaskTable) Render(w io.Writer) error {
	headers := t.Headers()
	plain := make([][]string, len(t.tasks))
	for i := range t.tasks {
		plain[i] = t.row(&t.tasks[i])
	}
	widths := t.columnWidths(headers, plain)

	headerParts := make([]string, len(headers))
	for i, h := range headers {
		headerParts[i] = t.styles.Header.Render(padRight(h, widths[i]))
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(headerParts, "  "), " ")); err != nil {
		return err
	}

	for i := range t.tasks {
		task := &t.tasks[i]
		cells := make([]string, len(headers))
		for c, value := range plain[i] {
			value = runewidth.Truncate(value, widths[c], "…")
			switch c {
			case 2:
				cells[c] = padRight(FormatStatus(task.Status), widths[c])
			case 3:
				cells[c] = padRight(FormatPriority(task.Priority), widths[c])
			default:
				cells[c] = padRight(value, widths[c])
			}
		}
		if task.IsOverdue(clock.DateOf(t.config.Today)) {
			last := len(cells) - 1
			cells[last] = t.styles.Dim.Foreground(ColorError).Render(cells[last])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func (t *TaskTable) fullRow(task *domain.Task) []string {
	return []string{
		strconv.Itoa(task.ID),
		task.Title,
		TaskStatusIcon(task.Status) + " " + task.Status.String(),
		task.Priority.String(),
		task.Project,
		FormatDate(task.DueDate),
	}
}

func (t *TaskTable) row(task *domain.Task) []string {
	full := t.fullRow(task)
	if t.config.Narrow {
		return []string{full[0], full[1], full[2], full[3], full[5]}
	}
	return full
}

// columnWidths sizes every column to its content, then shrinks the title
// column until the row fits the terminal width.
func (t *TaskTable) columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	if t.config.TerminalWidth <= 0 {
		return widths
	}
	total := 2 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	if overflow := total - t.config.TerminalWidth; overflow > 0 {
		widths[1] = max(MinTitleWidth, widths[1]-overflow)
	}
	return widths
}
