package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mrz1836/taskdeck/internal/query"
)

// ProgressBar wraps the charmbracelet/bubbles progress bar with taskdeck styling.
// Supports adaptive width and NO_COLOR compatibility.
type ProgressBar struct {
	bar   progress.Model
	width int
}

// ProgressOption is a functional option for configuring a ProgressBar.
type ProgressOption func(*ProgressBar)

// WithWidth sets the progress bar width.
func WithWidth(w int) ProgressOption {
	return func(pb *ProgressBar) {
		pb.width = w
		pb.bar.Width = w
	}
}

// WithColor fills the bar with a project's own color instead of the default gradient.
// Ignored when colors are disabled.
func WithColor(hex string) ProgressOption {
	return func(pb *ProgressBar) {
		if HasColorSupport() && isHexColor(hex) {
			pb.bar = progress.New(progress.WithWidth(pb.width), progress.WithSolidFill(hex), progress.WithoutPercentage())
		}
	}
}

// NewProgressBar creates a new progress bar.
// Uses a ColorPrimary gradient for styled rendering, solid fill for NO_COLOR mode.
// The bar never renders its own percentage; callers print the integer value.
func NewProgressBar(width int, opts ...ProgressOption) *ProgressBar {
	var bar progress.Model

	if HasColorSupport() {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithScaledGradient("#0087AF", "#00D7FF"),
			progress.WithoutPercentage(),
		)
	} else {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithSolidFill("#808080"),
			progress.WithoutPercentage(),
		)
	}

	pb := &ProgressBar{
		bar:   bar,
		width: width,
	}
	for _, opt := range opts {
		opt(pb)
	}
	return pb
}

// Render returns the progress bar for the given fraction (0.0-1.0).
// Uses ViewAs for static rendering (no animation).
func (pb *ProgressBar) Render(percent float64) string {
	return pb.bar.ViewAs(min(max(percent, 0), 1))
}

// RenderPercent renders an integer percentage (0-100).
func (pb *ProgressBar) RenderPercent(percent int) string {
	return pb.Render(float64(percent) / 100)
}

// Width returns the current width of the progress bar.
func (pb *ProgressBar) Width() int {
	return pb.width
}

// SetWidth updates the progress bar width.
func (pb *ProgressBar) SetWidth(w int) {
	pb.width = w
	pb.bar.Width = w
}

// DensityMode determines how progress rows are displayed.
type DensityMode int

// Density mode constants.
const (
	// DensityExpanded uses 2-line mode with task counts and description.
	DensityExpanded DensityMode = iota
	// DensityCompact uses 1-line mode for many projects.
	DensityCompact
)

// DensityThreshold is the project count that triggers compact mode.
const DensityThreshold = 5

// DetermineMode returns DensityExpanded for up to DensityThreshold rows, DensityCompact beyond.
func DetermineMode(count int) DensityMode {
	if count <= DensityThreshold {
		return DensityExpanded
	}
	return DensityCompact
}

// ProgressRow represents a single project in the progress dashboard.
type ProgressRow struct {
	Name    string
	Color   string
	Percent int // 0-100
	Done    int
	Total   int
	Detail  string
}

// BuildProgressRows converts project summaries into progress rows, in project order.
func BuildProgressRows(summaries []query.ProjectSummary) []ProgressRow {
	rows := make([]ProgressRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, ProgressRow{
			Name:    s.Project.Name,
			Color:   s.Project.Color,
			Percent: s.Progress,
			Done:    s.DoneCount,
			Total:   s.TaskCount,
			Detail:  s.Project.Description,
		})
	}
	return rows
}

// FormatTaskCounter formats completion as "done/total tasks".
func FormatTaskCounter(done, total int) string {
	if total == 1 {
		return fmt.Sprintf("%d/%d task", done, total)
	}
	return fmt.Sprintf("%d/%d tasks", done, total)
}

// ProgressRowCompact renders a progress row in 1-line compact mode.
// Format: "████████░░░░  40% 2/5 tasks Website Redesign"
func ProgressRowCompact(row ProgressRow, barWidth int) string {
	bar := NewProgressBar(barWidth, WithColor(row.Color))
	return fmt.Sprintf("%s %3d%% %s %s", bar.RenderPercent(row.Percent), row.Percent,
		FormatTaskCounter(row.Done, row.Total), row.Name)
}

// ProgressRowExpanded renders a progress row in 2-line expanded mode.
// Line 1: "Website Redesign  ████████████░░░░░░░░  50%"
// Line 2: "                  1/2 tasks • Refresh the marketing site"
func ProgressRowExpanded(row ProgressRow, barWidth, nameWidth int) string {
	bar := NewProgressBar(barWidth, WithColor(row.Color))

	name := runewidth.Truncate(row.Name, nameWidth, "…")
	name = runewidth.FillRight(name, nameWidth)
	line1 := fmt.Sprintf("%s %s %3d%%", name, bar.RenderPercent(row.Percent), row.Percent)

	info := FormatTaskCounter(row.Done, row.Total)
	if row.Detail != "" {
		info += " • " + row.Detail
	}
	line2 := strings.Repeat(" ", nameWidth+1) + lipgloss.NewStyle().Foreground(ColorMuted).Render(info)

	return line1 + "\n" + line2
}

// ProgressDashboard renders multiple progress rows with auto-density mode.
type ProgressDashboard struct {
	rows           []ProgressRow
	width          int
	mode           DensityMode
	autoAdjustMode bool
}

// DashboardOption is a functional option for configuring ProgressDashboard.
type DashboardOption func(*ProgressDashboard)

// WithTermWidth sets the terminal width for the dashboard.
func WithTermWidth(width int) DashboardOption {
	return func(pd *ProgressDashboard) {
		pd.width = width
	}
}

// WithDensityMode sets a specific density mode (overrides auto-detection).
func WithDensityMode(mode DensityMode) DashboardOption {
	return func(pd *ProgressDashboard) {
		pd.mode = mode
		pd.autoAdjustMode = false
	}
}

// NewProgressDashboard creates a new progress dashboard with the given rows.
func NewProgressDashboard(rows []ProgressRow, opts ...DashboardOption) *ProgressDashboard {
	pd := &ProgressDashboard{
		rows:           rows,
		width:          DefaultTerminalWidth,
		autoAdjustMode: true,
	}
	for _, opt := range opts {
		opt(pd)
	}
	if pd.autoAdjustMode {
		pd.mode = DetermineMode(len(pd.rows))
	}
	return pd
}

// Render writes the progress dashboard to the writer.
func (pd *ProgressDashboard) Render(w io.Writer) error {
	if len(pd.rows) == 0 {
		return nil
	}

	barWidth := pd.calculateBarWidth()
	nameWidth := pd.calculateNameWidth()

	for i, row := range pd.rows {
		var line string
		if pd.mode == DensityCompact {
			line = ProgressRowCompact(row, barWidth)
		} else {
			line = ProgressRowExpanded(row, barWidth, nameWidth)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if pd.mode == DensityExpanded && i < len(pd.rows)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Mode returns the current density mode.
func (pd *ProgressDashboard) Mode() DensityMode {
	return pd.mode
}

func (pd *ProgressDashboard) calculateBarWidth() int {
	switch {
	case pd.width < 80:
		return 20
	case pd.width < 120:
		return 40
	default:
		return 60
	}
}

func (pd *ProgressDashboard) calculateNameWidth() int {
	width := 12
	for _, row := range pd.rows {
		width = max(width, runewidth.StringWidth(row.Name))
	}
	return min(width, max(12, (pd.width-50)/3))
}
