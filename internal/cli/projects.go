package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/domain"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/query"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// AddProjectsCommand adds the projects command group to the root command.
func AddProjectsCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Show projects and their progress",
	}
	cmd.AddCommand(newProjectsListCmd())
	cmd.AddCommand(newProjectsViewCmd())
	root.AddCommand(cmd)
}

func newProjectsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects with live progress",
		Long: `List projects on the board.

Progress is the share of a project's tasks that are done, computed from
the tasks rather than read from the seed.

Examples:
  taskdeck projects list
  taskdeck projects list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProjectsList(cmd.Context(), cmd, os.Stdout)
		},
	}
}

func runProjectsList(ctx context.Context, cmd *cobra.Command, w io.Writer, opts ...boardOption) error {
	outputFormat := getOutputFormat(cmd)
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	b, err := loadBoard(ctx, opts...)
	if err != nil {
		return outputCommandError(w, outputFormat, "projects list", err)
	}

	summaries := query.SummarizeProjects(b.store.Projects(), b.store.Tasks())

	if outputFormat == OutputJSON {
		return out.JSON(summaries)
	}

	if len(summaries) == 0 {
		out.Info("No projects.")
		return nil
	}

	headers := []string{"NAME", "STATUS", "TASKS", "PROGRESS", "MEMBERS"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Project.Name,
			string(s.Project.Status),
			tui.FormatTaskCounter(s.DoneCount, s.TaskCount),
			fmt.Sprintf("%d%%", s.Progress),
			strconv.Itoa(s.Project.Members),
		})
	}
	out.Table(headers, rows)

	if isQuiet(cmd) {
		return nil
	}
	_, _ = fmt.Fprintln(w)
	dashboard := tui.NewProgressDashboard(tui.BuildProgressRows(summaries), tui.WithTermWidth(tui.TerminalWidth()))
	return dashboard.Render(w)
}

func newProjectsViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <id|name>",
		Short: "Show a project and its tasks",
		Long: `Show one project with its live progress and the tasks it owns.

The project may be given by ID or by name; names ignore case.

Examples:
  taskdeck projects view 3
  taskdeck projects view "mobile app"
  taskdeck projects view 3 -o json

Exit codes:
  0: Success
  1: Project not found or error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsView(cmd.Context(), cmd, os.Stdout, args[0])
		},
	}
}

// projectDetail is the JSON shape printed by "projects view".
type projectDetail struct {
	query.ProjectSummary

	Tasks []domain.Task `json:"tasks"`
}

// findProject resolves ref as a project ID first, then as a name.
func findProject(projects []domain.Project, ref string) (domain.Project, bool) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(strings.TrimPrefix(ref, "#")); err == nil {
		for _, p := range projects {
			if p.ID == id {
				return p, true
			}
		}
	}
	for _, p := range projects {
		if strings.EqualFold(p.Name, ref) {
			return p, true
		}
	}
	return domain.Project{}, false
}

func runProjectsView(ctx context.Context, cmd *cobra.Command, w io.Writer, ref string, opts ...boardOption) error {
	outputFormat := getOutputFormat(cmd)
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	b, err := loadBoard(ctx, opts...)
	if err != nil {
		return outputCommandError(w, outputFormat, "projects view", err)
	}

	p, ok := findProject(b.store.Projects(), ref)
	if !ok {
		return outputCommandError(w, outputFormat, "projects view", errors.Wrapf(errors.ErrProjectNotFound, "%q", ref))
	}

	tasks := query.ProjectTasks(p.Name, b.store.Tasks())
	detail := projectDetail{
		ProjectSummary: query.SummarizeProjects([]domain.Project{p}, tasks)[0],
		Tasks:          tasks,
	}

	if outputFormat == OutputJSON {
		return out.JSON(detail)
	}

	out.Info(fmt.Sprintf("Project #%d: %s", p.ID, p.Name))
	out.Info(strings.Repeat("━", 50))
	if p.Description != "" {
		out.Info(p.Description)
	}
	out.Info("")
	out.Info(fmt.Sprintf("Status:     %s", p.Status))
	out.Info(fmt.Sprintf("Progress:   %d%% (%s done)", detail.Progress, tui.FormatTaskCounter(detail.DoneCount, detail.TaskCount)))
	out.Info(fmt.Sprintf("Members:    %d", p.Members))
	out.Info(fmt.Sprintf("Runs:       %s to %s", tui.FormatDate(&p.StartDate), tui.FormatDate(p.EndDate)))
	out.Info("")

	if len(tasks) == 0 {
		out.Info("No tasks in this project.")
		return nil
	}
	return tui.NewTaskTable(tasks, tui.WithToday(clock.Today(b.store.Clock()))).Render(w)
}
