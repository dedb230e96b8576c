package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/query"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// AddStatsCommand adds the stats command to the root command.
func AddStatsCommand(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show board statistics",
		Long: `Show the statistics behind the dashboard cards: task counts per
status, overdue tasks, completion rate and hours.

Examples:
  taskdeck stats
  taskdeck stats -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd.Context(), cmd, os.Stdout)
		},
	})
}

func runStats(ctx context.Context, cmd *cobra.Command, w io.Writer, opts ...boardOption) error {
	outputFormat := getOutputFormat(cmd)
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	b, err := loadBoard(ctx, opts...)
	if err != nil {
		return outputCommandError(w, outputFormat, "stats", err)
	}

	stats := query.ComputeStats(b.store.Tasks(), clock.Today(b.store.Clock()))
	if outputFormat == OutputJSON {
		return out.JSON(stats)
	}

	displayStats(out, w, stats)
	return nil
}

// displayStats prints the statistics as a two-column table with a
// completion bar underneath.
func displayStats(out tui.Output, w io.Writer, s query.Stats) {
	out.Table([]string{"METRIC", "VALUE"}, [][]string{
		{"Total tasks", strconv.Itoa(s.Total)},
		{"To do", strconv.Itoa(s.Todo)},
		{"In progress", strconv.Itoa(s.InProgress)},
		{"Done", strconv.Itoa(s.Done)},
		{"Overdue", strconv.Itoa(s.Overdue)},
		{"Completion", fmt.Sprintf("%d%%", s.CompletionRate)},
		{"Hours logged", fmt.Sprintf("%s of %s", formatHours(s.CompletedHours), formatHours(s.EstimatedHours))},
	})

	bar := tui.NewProgressBar(40)
	_, _ = fmt.Fprintf(w, "\n%s %3d%%\n", bar.RenderPercent(s.CompletionRate), s.CompletionRate)
}
