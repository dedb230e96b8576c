// Package tui provides terminal user interface components for taskdeck.
//
// This package provides a centralized style system using Lip Gloss for consistent
// TUI component styling. All colors use AdaptiveColor for light/dark terminal support.
//
// # Semantic Colors
//
// Five semantic colors are exported for use across TUI components:
//   - ColorPrimary (Blue): Active states, selection, primary actions
//   - ColorSuccess (Green): Done tasks, success notifications
//   - ColorWarning (Yellow): In-progress tasks, warnings, medium priority
//   - ColorError (Red): High priority, overdue dates, error notifications
//   - ColorMuted (Gray): Dim/inactive states, secondary text
//
// # Status Icons
//
// Status displays always pair an icon, a color and the status text so they stay
// readable without color. See TaskStatusIcon and NotificationIcon.
//
// # NO_COLOR Support
//
// Call CheckNoColor() at the start of commands to respect the NO_COLOR environment
// variable. Colors are also disabled when TERM=dumb.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/mrz1836/taskdeck/internal/constants"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for active states and primary actions.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for done tasks and success notifications.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for in-progress tasks and warnings.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for high priority and overdue items.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for dim/inactive states and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// LogoGradientColors defines the gradient colors for the ASCII logo (top to bottom).
	LogoGradientColors = []lipgloss.AdaptiveColor{
		{Light: "#00D7FF", Dark: "#00FFFF"},
		{Light: "#00AFFF", Dark: "#00D7FF"},
		{Light: "#0087FF", Dark: "#00AFFF"},
		{Light: "#005FD7", Dark: "#0087FF"},
		{Light: "#005FAF", Dark: "#005FD7"},
	}

	// StyleBold applies bold formatting to text.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim applies dim/faint formatting to text.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleUnderline applies underline formatting to text.
	StyleUnderline = lipgloss.NewStyle().Underline(true)

	// StyleReverse applies reverse video (inverted colors) formatting to text.
	StyleReverse = lipgloss.NewStyle().Reverse(true)
)

// TableStyles holds lipgloss styles for table rendering.
type TableStyles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Dim    lipgloss.Style
}

// NewTableStyles creates styles for table rendering.
func NewTableStyles() *TableStyles {
	return &TableStyles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}),
		Cell: lipgloss.NewStyle(),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}),
	}
}

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates common output styles using AdaptiveColor for light/dark terminal support.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Dim: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or TERM=dumb.
// This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// TaskStatusColor returns the semantic color for a task status.
func TaskStatusColor(status constants.TaskStatus) lipgloss.AdaptiveColor {
	switch status {
	case constants.TaskStatusDone:
		return ColorSuccess
	case constants.TaskStatusInProgress:
		return ColorWarning
	case constants.TaskStatusTodo:
		return ColorPrimary
	default:
		return ColorMuted
	}
}

// TaskStatusIcon returns the icon for a task status.
func TaskStatusIcon(status constants.TaskStatus) string {
	switch status {
	case constants.TaskStatusTodo:
		return "○"
	case constants.TaskStatusInProgress:
		return "◐"
	case constants.TaskStatusDone:
		return "✓"
	default:
		return "?"
	}
}

// PriorityColor returns the semantic color for a task priority.
func PriorityColor(p constants.Priority) lipgloss.AdaptiveColor {
	switch p {
	case constants.PriorityHigh:
		return ColorError
	case constants.PriorityMedium:
		return ColorWarning
	case constants.PriorityLow:
		return ColorSuccess
	default:
		return ColorMuted
	}
}

// NotificationColor returns the semantic color for a notification type.
func NotificationColor(t constants.NotificationType) lipgloss.AdaptiveColor {
	switch t {
	case constants.NotificationSuccess:
		return ColorSuccess
	case constants.NotificationWarning:
		return ColorWarning
	case constants.NotificationError:
		return ColorError
	case constants.NotificationInfo:
		return ColorPrimary
	default:
		return ColorMuted
	}
}

// NotificationIcon returns the icon for a notification type.
func NotificationIcon(t constants.NotificationType) string {
	switch t {
	case constants.NotificationSuccess:
		return "✓"
	case constants.NotificationWarning:
		return "⚠"
	case constants.NotificationError:
		return "✗"
	case constants.NotificationInfo:
		return "ℹ"
	default:
		return "?"
	}
}

// FormatStatus renders a task status as icon plus text in the status color.
func FormatStatus(status constants.TaskStatus) string {
	return lipgloss.NewStyle().
		Foreground(TaskStatusColor(status)).
		Render(TaskStatusIcon(status) + " " + status.String())
}

// FormatPriority renders a priority in its color.
func FormatPriority(p constants.Priority) string {
	return lipgloss.NewStyle().Foreground(PriorityColor(p)).Render(p.String())
}

// ProjectColor parses a project's hex color, falling back to ColorPrimary
// when the value is not a #RRGGBB string.
func ProjectColor(hex string) lipgloss.TerminalColor {
	if !isHexColor(hex) {
		return ColorPrimary
	}
	return lipgloss.Color(hex)
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// DefaultBoxWidth is the default width for TUI boxes.
const DefaultBoxWidth = 100

// BoxBorder defines the characters used for box borders.
type BoxBorder struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Top         string
	Bottom      string
	Left        string
	Right       string
	MiddleLeft  string
	MiddleRight string
}

// DefaultBorder is the default border style with square corners.
//
//nolint:gochecknoglobals // Intentional package-level constant for TUI border styling
var DefaultBorder = BoxBorder{
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	MiddleLeft:  "├",
	MiddleRight: "┤",
}

// BoxStyle holds configuration for rendering bordered boxes.
type BoxStyle struct {
	Width  int
	Border *BoxBorder
}

// NewBoxStyle creates a new BoxStyle with the square border and default width.
func NewBoxStyle() *BoxStyle {
	border := DefaultBorder
	return &BoxStyle{
		Width:  DefaultBoxWidth,
		Border: &border,
	}
}

// WithWidth returns a new BoxStyle with the specified width.
func (b *BoxStyle) WithWidth(width int) *BoxStyle {
	return &BoxStyle{
		Width:  width,
		Border: b.Border,
	}
}

// Render renders a box with the given title and content.
// Supports multi-line content by splitting on newlines.
func (b *BoxStyle) Render(title, content string) string {
	innerWidth := b.Width - 2

	var sb strings.Builder
	sb.WriteString(b.Border.TopLeft + strings.Repeat(b.Border.Top, innerWidth) + b.Border.TopRight + "\n")
	sb.WriteString(b.Border.Left + " " + padRight(title, innerWidth-1) + b.Border.Right + "\n")
	sb.WriteString(b.Border.MiddleLeft + strings.Repeat(b.Border.Top, innerWidth) + b.Border.MiddleRight + "\n")
	for _, line := range strings.Split(content, "\n") {
		sb.WriteString(b.Border.Left + " " + padRight(line, innerWidth-1) + b.Border.Right + "\n")
	}
	sb.WriteString(b.Border.BottomLeft + strings.Repeat(b.Border.Bottom, innerWidth) + b.Border.BottomRight)
	return sb.String()
}

// padRight pads a string to the right to reach the target display width.
// ANSI escape codes do not count towards the width; wide runes count as two cells.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		if visible == runewidth.StringWidth(s) {
			return runewidth.Truncate(s, width, "")
		}
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// HeaderStyle creates a styled header with the given color.
func HeaderStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		MarginBottom(1)
}

// DefaultTerminalWidth is used when terminal width cannot be determined.
const DefaultTerminalWidth = 80
