package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/taskdeck/internal/action"
	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/tui"
)

var (
	glamourRenderer     *glamour.TermRenderer //nolint:gochecknoglobals // cached renderer for performance
	glamourRendererOnce sync.Once             //nolint:gochecknoglobals // sync.Once for renderer initialization
)

// terminalCheck reports whether stdin is a terminal. Tests replace it.
var terminalCheck = isTerminal //nolint:gochecknoglobals // test seam

// promptTaskForm runs the interactive task form. Tests replace it.
var promptTaskForm = tui.TaskForm //nolint:gochecknoglobals // test seam

// promptSelect and promptConfirm run the picker and confirmation used by
// "tasks delete". Tests replace them.
var (
	promptSelect  = tui.SelectWithConfig  //nolint:gochecknoglobals // test seam
	promptConfirm = tui.ConfirmWithConfig //nolint:gochecknoglobals // test seam
)

// isTerminal returns true if stdin is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // G115: file descriptors fit in int
}

// getGlamourRenderer returns a cached glamour renderer for markdown rendering.
func getGlamourRenderer() *glamour.TermRenderer {
	glamourRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			glamourRenderer = r
		}
	})
	return glamourRenderer
}

// AddTasksCommand adds the tasks command group to the root command.
func AddTasksCommand(root *cobra.Command) {
	root.AddCommand(newTasksCmd())
}

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List, inspect, add and delete tasks",
		Long: `Work with the tasks on the seeded board.

Every invocation starts from the seed data. Changes made by "tasks add"
and "tasks delete" are printed but not saved.`,
	}

	cmd.AddCommand(newTasksListCmd())
	cmd.AddCommand(newTasksViewCmd())
	cmd.AddCommand(newTasksAddCmd())
	cmd.AddCommand(newTasksDeleteCmd())

	return cmd
}

// tasksListFlags holds the flags for the list command.
type tasksListFlags struct {
	query    string
	status   string
	priority string
	width    int
}

func newTasksListCmd() *cobra.Command {
	flags := &tasksListFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered",
		Long: `List tasks on the board.

--query matches the title or description, ignoring case.
--status and --priority accept "all" or a single value.
--width fits the table to a fixed number of columns instead of the
terminal; below 80 the headers are abbreviated and the project column
is dropped.

Examples:
  taskdeck tasks list
  taskdeck tasks list --status in-progress
  taskdeck tasks list --priority high --query api
  taskdeck tasks list --width 60 | less
  taskdeck tasks list -o json

Exit codes:
  0: Success
  1: General error
  2: Invalid status or priority`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTasksList(cmd.Context(), cmd, os.Stdout, flags)
		},
	}

	cmd.Flags().StringVar(&flags.query, "query", "", "Match title or description")
	cmd.Flags().StringVar(&flags.status, "status", constants.FilterAll, "Filter by status (all, todo, in-progress, done)")
	cmd.Flags().StringVar(&flags.priority, "priority", constants.FilterAll, "Filter by priority (all, low, medium, high)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Table width in columns (0 detects the terminal)")

	return cmd
}

// validateStatusFilter accepts "all", empty, or a known status.
func validateStatusFilter(s string) error {
	if s == "" || s == constants.FilterAll || domain.TaskStatus(s).IsValid() {
		return nil
	}
	return fmt.Errorf("%w: %q must be one of all, %s", errors.ErrInvalidStatus, s, joinValues(constants.ValidTaskStatuses()))
}

// validatePriorityFilter accepts "all", empty, or a known priority.
func validatePriorityFilter(p string) error {
	if p == "" || p == constants.FilterAll || domain.Priority(p).IsValid() {
		return nil
	}
	return fmt.Errorf("%w: %q must be one of all, %s", errors.ErrInvalidPriority, p, joinValues(constants.ValidPriorities()))
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func runTasksList(ctx context.Context, cmd *cobra.Command, w io.Writer, flags *tasksListFlags, opts ...boardOption) error {
	outputFormat := getOutputFormat(cmd)
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	if err := validateStatusFilter(flags.status); err != nil {
		return outputCommandError(w, outputFormat, "tasks list", err)
	}
	if err := validatePriorityFilter(flags.priority); err != nil {
		return outputCommandError(w, outputFormat, "tasks list", err)
	}
	if flags.width < 0 {
		return outputCommandError(w, outputFormat, "tasks list", errors.Wrapf(errors.ErrValueOutOfRange, "width %d", flags.width))
	}

	b, err := loadBoard(ctx, opts...)
	if err != nil {
		return outputCommandError(w, outputFormat, "tasks list", err)
	}

	for _, a := range []action.Action{
		{Kind: action.KindSetFilter, Filter: action.FilterQuery, Value: flags.query},
		{Kind: action.KindSetFilter, Filter: action.FilterStatus, Value: orAll(flags.status)},
		{Kind: action.KindSetFilter, Filter: action.FilterPriority, Value: orAll(flags.priority)},
	} {
		if _, err := b.dispatcher.Dispatch(a); err != nil {
			return outputCommandError(w, outputFormat, "tasks list", err)
		}
	}

	tasks := b.store.VisibleTasks()
	if tasks == nil {
		tasks = []domain.Task{}
	}

	if outputFormat == OutputJSON {
		return out.JSON(tasks)
	}

	if len(tasks) == 0 {
		out.Info("No tasks match the current filters.")
		return nil
	}

	tableOpts := []tui.TaskTableOption{tui.WithToday(clock.Today(b.store.Clock()))}
	if flags.width > 0 {
		tableOpts = append(tableOpts, tui.WithTerminalWidth(flags.width))
	}
	return tui.NewTaskTable(tasks, tableOpts...).Render(w)
}

func orAll(s string) string {
	if s == "" {
		return constants.FilterAll
	}
	return s
}

func newTasksViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show full details of a task",
		Long: `Show full details of a task by ID.

The description is rendered as markdown.

Examples:
  taskdeck tasks view 3
  taskdeck tasks view 3 -o json

Exit codes:
  0: Success
  1: Task not found or error
  2: ID is not a number`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTasksView(cmd.Context(), cmd, os.Stdout, args[0])
		},
	}
}

// parseTaskID converts a command-line argument into a task ID.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(errors.ErrInvalidArgument, "task id %q", arg)
	}
	return id, nil
}

func runTasksView(ctx context.Context, cmd *cobra.Command, w io.Writer, arg string, opts ...boardOption) error {
	outputFormat := getOutputFormat(cmd)
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	id, err := parseTaskID(arg)
	if err != nil {
		return outputCommandError(w, outputFormat, "tasks view", err)
	}

	b, err := loadBoard(ctx, opts...)
	if err != nil {
		return outputCommandError(w, outputFormat, "tasks view", err)
	}

	t, ok := b.store.Task(id)
	if !ok {
		return outputCommandError(w, outputFormat, "tasks view", errors.Wrapf(errors.ErrTaskNotFound, "#%d", id))
	}

	if outputFormat == OutputJSON {
		return out.JSON(t)
	}

	displayTask(out, w, &t, clock.Today(b.store.Clock()))
	return nil
}

// displayTask prints a task in rich detail format.
func displayTask(out tui.Output, w io.Writer, t *domain.Task, today time.Time) {
	out.Info(fmt.Sprintf("Task #%d: %s", t.ID, t.Title))
	out.Info(strings.Repeat("━", 50))
	out.Info("")

	out.Info(fmt.Sprintf("Status:     %s", tui.FormatStatus(t.Status)))
	out.Info(fmt.Sprintf("Priority:   %s", tui.FormatPriority(t.Priority)))
	if t.Project != "" {
		out.Info(fmt.Sprintf("Project:    %s", t.Project))
	}
	if t.Assignee != "" {
		out.Info(fmt.Sprintf("Assignee:   %s", t.Assignee))
	}
	out.Info(fmt.Sprintf("Due:        %s (%s)", tui.FormatDate(t.DueDate), tui.DueLabel(t.DueDate, today)))
	out.Info(fmt.Sprintf("Created:    %s", tui.FormatDate(&t.CreatedAt)))
	out.Info(fmt.Sprintf("Hours:      %s of %s logged", formatHours(t.CompletedHours), formatHours(t.EstimatedHours)))

	if t.Description != "" {
		out.Info("")
		out.Info("Description:")
		renderDescription(w, t.Description)
	}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

// renderDescription renders a markdown description using glamour.
func renderDescription(w io.Writer, description string) {
	if renderer := getGlamourRenderer(); renderer != nil {
		if rendered, err := renderer.Render(description); err == nil {
			for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
				_, _ = fmt.Fprintf(w, "  %s\n", line)
			}
			return
		}
	}
	_, _ = fmt.Fprintf(w, "  %s\n", description)
}

// tasksAddFlags holds the flags for the add command.
type tasksAddFlags struct {
	description string
	priority    string
	project     string
	due         string
	hours       string
}

func newTasksAddCmd() *cobra.Command {
	flags := &tasksAddFlags{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a task on a fresh board and print it",
		Long: `Create a task on a freshly seeded board and print the result.

Without a title, an interactive form is shown when a terminal is attached.
The task is not saved; the next command starts from the seed data again.

Examples:
  taskdeck tasks add "Write release notes" --priority high --due 2024-03-01
  taskdeck tasks add "Fix login" --project "Mobile App" --hours 4
  taskdeck tasks add

Exit codes:
  0: Success
  1: General error
  2: Invalid input or no title without a terminal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := ""
			if len(args) == 1 {
				title = args[0]
			}
			return runTasksAdd(cmd.Context(), cmd, os.Stdout, title, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "Task description (markdown)")
	cmd.Flags().StringVarP(&flags.priority, "priority", "p", string(constants.PriorityMedium), "Priority (low, medium, high)")
	cmd.Flags().StringVar(&flags.project, "project", "", "Owning project name")
	cmd.Flags().StringVar(&flags.due, "due", "", "Due date ("+constants.DateLayout+")")
	cmd.Flags().StringVar(&flags.hours, "hours", "", "Estimated hours")

	return cmd
}

func runTasksAdd(ctx context.Context, cmd *cobra.Command, w io.Writer, title string, flags *tasksAddFlags, opts ...boardOption) error {
	outputFormat := getOutputFormat(cmd)
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	b, err := loadBoard(ctx, opts...)
	if err != nil {
		return outputCommandError(w, outputFormat, "tasks add", err)
	}

	values := tui.TaskFormValues{
		Title:          title,
		Description:    flags.description,
		Priority:       flags.priority,
		Project:        flags.project,
		DueDate:        flags.due,
		EstimatedHours: flags.hours,
	}

	if strings.TrimSpace(values.Title) == "" {
		if outputFormat == OutputJSON || !terminalCheck() {
			return outputCommandError(w, outputFormat, "tasks add",
				errors.NewExitCode2Error(errors.Wrap(errors.ErrUserInputRequired, "a title is required when no terminal is attached")))
		}
		values, err = promptTaskForm(values, projectNames(b.store.Projects()), menuConfig(cmd))
		if err != nil {
			return outputCommandError(w, outputFormat, "tasks add", err)
		}
	}

	in, err := values.NewTask()
	if err != nil {
		return outputCommandError(w, outputFormat, "tasks add", err)
	}

	res, err := b.dispatcher.Dispatch(action.Action{
		Kind:           action.KindCreateTask,
		Title:          action.Ptr(in.Title),
		Description:    action.Ptr(in.Description),
		Priority:       action.Ptr(in.Priority),
		Project:        action.Ptr(in.Project),
		DueDate:        in.DueDate,
		EstimatedHours: action.Ptr(in.EstimatedHours),
	})
	if err != nil {
		return outputCommandError(w, outputFormat, "tasks add", err)
	}
	if !res.Applied {
		return outputCommandError(w, outputFormat, "tasks add", errors.Wrap(errors.ErrInvalidArgument, "task was rejected"))
	}

	t, _ := b.store.Task(res.Target)
	b.logger.Info().Int("task_id", t.ID).Str("priority", string(t.Priority)).Msg("task created")

	if outputFormat == OutputJSON {
		return out.JSON(t)
	}

	out.Success(fmt.Sprintf("Created task #%d (not saved)", t.ID))
	out.Info("")
	displayTask(out, w, &t, clock.Today(b.store.Clock()))
	return nil
}

// projectNames lists project names in board order.
func projectNames(projects []domain.Project) []string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return names
}

// menuConfig builds the prompt configuration; --quiet hides the key hints.
func menuConfig(cmd *cobra.Command) *tui.MenuConfig {
	return tui.NewMenuConfig(tui.WithMenuKeyHints(!isQuiet(cmd)))
}

// tasksDeleteFlags holds the flags for the delete command.
type tasksDeleteFlags struct {
	yes bool
}

func newTasksDeleteCmd() *cobra.Command {
	flags := &tasksDeleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task on a fresh board and print what remains",
		Long: `Delete a task from a freshly seeded board.

Without an ID, a picker is shown when a terminal is attached. Text output
asks for confirmation unless --yes is given. The deletion is not saved.

Examples:
  taskdeck tasks delete 3 --yes
  taskdeck tasks delete 3 -o json
  taskdeck tasks delete

Exit codes:
  0: Success or declined
  1: Task not found or error
  2: ID is not a number or no ID without a terminal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return runTasksDelete(cmd.Context(), cmd, os.Stdout, arg, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// taskDeleteResult is the JSON shape printed by "tasks delete".
type taskDeleteResult struct {
	Deleted   domain.Task `json:"deleted"`
	Remaining int         `json:"remaining"`
}

func runTasksDelete(ctx context.Context, cmd *cobra.Command, w io.Writer, arg string, flags *tasksDeleteFlags, opts ...boardOption) error {
	outputFormat := getOutputFormat(cmd)
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)
	interactive := outputFormat != OutputJSON && terminalCheck()

	b, err := loadBoard(ctx, opts...)
	if err != nil {
		return outputCommandError(w, outputFormat, "tasks delete", err)
	}

	if strings.TrimSpace(arg) == "" {
		if !interactive {
			return outputCommandError(w, outputFormat, "tasks delete",
				errors.NewExitCode2Error(errors.Wrap(errors.ErrUserInputRequired, "a task id is required when no terminal is attached")))
		}
		arg, err = promptSelect("Delete which task?", taskOptions(b.store.Tasks()), menuConfig(cmd))
		if err != nil {
			return outputCommandError(w, outputFormat, "tasks delete", err)
		}
	}

	id, err := parseTaskID(arg)
	if err != nil {
		return outputCommandError(w, outputFormat, "tasks delete", err)
	}

	t, ok := b.store.Task(id)
	if !ok {
		return outputCommandError(w, outputFormat, "tasks delete", errors.Wrapf(errors.ErrTaskNotFound, "#%d", id))
	}

	if !flags.yes && interactive {
		confirmed, err := promptConfirm(fmt.Sprintf("Delete task #%d %q?", t.ID, t.Title), false, menuConfig(cmd))
		if err != nil {
			return outputCommandError(w, outputFormat, "tasks delete", err)
		}
		if !confirmed {
			out.Info("Operation canceled.")
			return nil
		}
	}

	if _, err := b.dispatcher.Dispatch(action.Action{Kind: action.KindDeleteTask, ID: t.ID}); err != nil {
		return outputCommandError(w, outputFormat, "tasks delete", err)
	}
	b.logger.Info().Int("task_id", t.ID).Msg("task deleted")

	remaining := len(b.store.Tasks())
	if outputFormat == OutputJSON {
		return out.JSON(taskDeleteResult{Deleted: t, Remaining: remaining})
	}

	out.Success(fmt.Sprintf("Deleted task #%d %s (not saved)", t.ID, t.Title))
	out.Info(fmt.Sprintf("%d tasks remain.", remaining))
	return nil
}

// taskOptions lists tasks as picker options keyed by ID.
func taskOptions(tasks []domain.Task) []tui.Option {
	options := make([]tui.Option, len(tasks))
	for i, t := range tasks {
		options[i] = tui.Option{
			Label:       fmt.Sprintf("#%d %s", t.ID, t.Title),
			Description: t.Status.String(),
			Value:       strconv.Itoa(t.ID),
		}
	}
	return options
}
