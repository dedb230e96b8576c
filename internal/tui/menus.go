// This file provides the interactive prompts built on Charm Huh: the task
// picker and confirmation behind `taskdeck tasks delete` and the task form
// behind `taskdeck tasks add`.
//
// All prompts share one theme derived from styles.go, adapt to the terminal
// width, honor the ACCESSIBLE environment variable for screen readers, and
// return ErrMenuCanceled when the user aborts or no terminal is attached.

package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/store"
)

// Terminal layout constants.
const (
	// TerminalEdgeMargin is the number of characters to leave between
	// menu content and the terminal edge.
	TerminalEdgeMargin = 4

	// MinMenuWidth is the minimum usable width for menu content.
	MinMenuWidth = 40
)

// ErrMenuCanceled is an alias for errors.ErrMenuCanceled for package-local use.
var ErrMenuCanceled = deckerrors.ErrMenuCanceled

// Option represents a selectable menu option.
type Option struct {
	// Label is the display text shown to the user.
	Label string
	// Description is optional help text appended to the label.
	Description string
	// Value is the value returned when this option is selected.
	Value string
}

// MenuConfig holds configuration for menu components.
type MenuConfig struct {
	// Width is the maximum width for the menu. If 0, adapts to terminal width.
	Width int
	// Accessible enables accessible mode for screen readers.
	Accessible bool
	// ShowKeyHints controls whether key hints are displayed.
	ShowKeyHints bool
}

// MenuConfigOption is a functional option for configuring MenuConfig.
type MenuConfigOption func(*MenuConfig)

// WithMenuKeyHints enables or disables key hints display.
func WithMenuKeyHints(show bool) MenuConfigOption {
	return func(c *MenuConfig) {
		c.ShowKeyHints = show
	}
}

// NewMenuConfig creates a MenuConfig with defaults.
// Accessible mode is enabled when the ACCESSIBLE environment variable is set.
func NewMenuConfig(opts ...MenuConfigOption) *MenuConfig {
	_, accessible := os.LookupEnv("ACCESSIBLE")

	c := &MenuConfig{
		Width:        DefaultBoxWidth,
		Accessible:   accessible,
		ShowKeyHints: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// adaptWidth returns a menu width that respects maxWidth and the terminal size.
func adaptWidth(maxWidth int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec // G115: file descriptors fit in int
	if err != nil || width <= 0 {
		if maxWidth <= 0 {
			return DefaultBoxWidth
		}
		return maxWidth
	}

	availableWidth := width - TerminalEdgeMargin
	if maxWidth > 0 && maxWidth < availableWidth {
		return maxWidth
	}
	if availableWidth < MinMenuWidth {
		return MinMenuWidth
	}
	return availableWidth
}

// runFormWithConfig creates and runs a single-group form from fields.
// The errorContext parameter is used to wrap unexpected form errors.
func runFormWithConfig(cfg *MenuConfig, errorContext string, fields ...huh.Field) error {
	// Without a terminal the form would block forever.
	if !term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec // G115: file descriptors fit in int
		return ErrMenuCanceled
	}

	CheckNoColor()

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(Theme()).
		WithWidth(adaptWidth(cfg.Width)).
		WithAccessible(cfg.Accessible).
		WithShowHelp(cfg.ShowKeyHints)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrMenuCanceled
		}
		return fmt.Errorf("%s: %w", errorContext, err)
	}
	return nil
}

// Theme returns the Huh theme built from the semantic colors in styles.go.
func Theme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorPrimary)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(ColorSuccess)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)

	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(ColorMuted)

	return t
}

// huhOptions converts options to huh options, folding descriptions into labels.
func huhOptions(options []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(options))
	for i, opt := range options {
		label := opt.Label
		if opt.Description != "" {
			label = opt.Label + " - " + opt.Description
		}
		out[i] = huh.NewOption(label, opt.Value)
	}
	return out
}

// SelectWithConfig presents a single-selection menu and returns the selected
// value. Returns ErrMenuCanceled if the user aborts.
func SelectWithConfig(title string, options []Option, cfg *MenuConfig) (string, error) {
	if len(options) == 0 {
		return "", deckerrors.Wrap(deckerrors.ErrInvalidArgument, "no menu options")
	}

	var selected string
	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions(options)...).
		Value(&selected)

	if err := runFormWithConfig(cfg, "select menu failed", field); err != nil {
		return "", err
	}
	return selected, nil
}

// ConfirmWithConfig presents a yes/no confirmation prompt.
func ConfirmWithConfig(message string, defaultYes bool, cfg *MenuConfig) (bool, error) {
	confirmed := defaultYes
	field := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := runFormWithConfig(cfg, "confirm prompt failed", field); err != nil {
		return false, err
	}
	return confirmed, nil
}

// TaskFormValues holds the raw text entered into the task form.
type TaskFormValues struct {
	Title          string
	Description    string
	Priority       string
	Project        string
	DueDate        string
	EstimatedHours string
}

// TaskForm prompts for a new task. projects lists the project names offered
// for selection; an empty choice leaves the task without a project.
func TaskForm(values TaskFormValues, projects []string, cfg *MenuConfig) (TaskFormValues, error) {
	if values.Priority == "" {
		values.Priority = constants.PriorityMedium.String()
	}

	priorities := make([]Option, 0, len(constants.ValidPriorities()))
	for _, p := range constants.ValidPriorities() {
		priorities = append(priorities, Option{Label: p.String(), Value: p.String()})
	}
	projectOptions := []Option{{Label: "(none)", Value: ""}}
	for _, name := range projects {
		projectOptions = append(projectOptions, Option{Label: name, Value: name})
	}

	fields := []huh.Field{
		huh.NewInput().Title("Title").Value(&values.Title).Validate(ValidateTitle),
		huh.NewText().Title("Description").Placeholder("Markdown is supported").Value(&values.Description),
		huh.NewSelect[string]().Title("Priority").Options(huhOptions(priorities)...).Value(&values.Priority),
		huh.NewSelect[string]().Title("Project").Options(huhOptions(projectOptions)...).Value(&values.Project),
		huh.NewInput().Title("Due date").Placeholder(constants.DateLayout).Value(&values.DueDate).Validate(ValidateDate),
		huh.NewInput().Title("Estimated hours").Placeholder("0").Value(&values.EstimatedHours).Validate(ValidateHours),
	}

	if err := runFormWithConfig(cfg, "task form failed", fields...); err != nil {
		return TaskFormValues{}, err
	}
	return values, nil
}

// ValidateTitle rejects blank titles.
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return deckerrors.Wrap(deckerrors.ErrEmptyValue, "title")
	}
	return nil
}

// ValidateDate accepts an empty string or a date in constants.DateLayout.
func ValidateDate(s string) error {
	_, err := parseDate(s)
	return err
}

// ValidateHours accepts an empty string or a non-negative number.
func ValidateHours(s string) error {
	_, err := parseHours(s)
	return err
}

// NewTask converts the form values into a store request.
func (v TaskFormValues) NewTask() (store.NewTask, error) {
	if err := ValidateTitle(v.Title); err != nil {
		return store.NewTask{}, err
	}
	priority := domain.Priority(strings.TrimSpace(v.Priority))
	if priority != "" && !priority.IsValid() {
		return store.NewTask{}, deckerrors.Wrapf(deckerrors.ErrInvalidPriority, "%q", v.Priority)
	}
	due, err := parseDate(v.DueDate)
	if err != nil {
		return store.NewTask{}, err
	}
	hours, err := parseHours(v.EstimatedHours)
	if err != nil {
		return store.NewTask{}, err
	}
	return store.NewTask{
		Title:          strings.TrimSpace(v.Title),
		Description:    strings.TrimSpace(v.Description),
		Priority:       priority,
		Project:        strings.TrimSpace(v.Project),
		DueDate:        due,
		EstimatedHours: hours,
	}, nil
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil //nolint:nilnil // no due date is a valid answer
	}
	t, err := time.ParseInLocation(constants.DateLayout, s, time.Local)
	if err != nil {
		return nil, deckerrors.Wrapf(deckerrors.ErrInvalidArgument, "due date %q must look like %s", s, constants.DateLayout)
	}
	return &t, nil
}

func parseHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil || h < 0 {
		return 0, deckerrors.Wrapf(deckerrors.ErrValueOutOfRange, "estimated hours %q", s)
	}
	return h, nil
}
