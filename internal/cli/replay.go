package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/action"
	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/domain"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/query"
	"github.com/mrz1836/taskdeck/internal/signal"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// replaySummary is the JSON shape of a finished replay.
type replaySummary struct {
	Script      string                 `json:"script"`
	Steps       int                    `json:"steps"`
	Applied     int                    `json:"applied"`
	Interrupted bool                   `json:"interrupted,omitempty"`
	Results     []action.Result        `json:"results"`
	Stats       query.Stats            `json:"stats"`
	Projects    []query.ProjectSummary `json:"projects"`
	Unread      int                    `json:"unread"`
	Tasks       []domain.Task          `json:"tasks"`
}

// AddReplayCommand adds the replay command to the root command.
func AddReplayCommand(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a script of actions against the seeded board",
		Long: `Replay a YAML script of actions against a freshly seeded board and
print the resulting state.

A script is a list of actions, applied in order:

  name: triage
  actions:
    - kind: set_task_status
      id: 2
      status: done
    - kind: create_task
      title: Write release notes
      priority: high
    - kind: mark_all_read

Actions the board rejects (unknown ids, blank titles) are skipped and
reported as not applied. An unknown action kind stops the replay.

Examples:
  taskdeck replay demo.yaml
  taskdeck replay demo.yaml -o json

Exit codes:
  0: Success
  1: Script could not be read or contains an unknown action`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := signal.NewHandler(cmd.Context())
			defer h.Stop()
			return runReplay(h.Context(), cmd, os.Stdout, args[0])
		},
	})
}

func runReplay(ctx context.Context, cmd *cobra.Command, w io.Writer, path string, opts ...boardOption) error {
	outputFormat := getOutputFormat(cmd)
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	script, err := action.LoadScriptFile(path)
	if err != nil {
		return outputCommandError(w, outputFormat, "replay", err)
	}

	b, err := loadBoard(ctx, opts...)
	if err != nil {
		return outputCommandError(w, outputFormat, "replay", err)
	}

	name := script.Name
	if name == "" {
		name = path
	}
	b.logger.Info().Str("script", name).Int("steps", len(script.Actions)).Msg("replaying script")

	results, err := b.dispatcher.Replay(ctx, script.Actions)
	interrupted := ctx.Err() != nil
	if err != nil && !interrupted {
		return outputCommandError(w, outputFormat, "replay", err)
	}

	summary := replaySummary{
		Script:      name,
		Steps:       len(script.Actions),
		Applied:     countApplied(results),
		Interrupted: interrupted,
		Results:     results,
		Stats:       query.ComputeStats(b.store.Tasks(), clock.Today(b.store.Clock())),
		Projects:    query.SummarizeProjects(b.store.Projects(), b.store.Tasks()),
		Unread:      b.store.UnreadCount(),
		Tasks:       b.store.Tasks(),
	}

	if outputFormat == OutputJSON {
		return out.JSON(summary)
	}

	displayReplay(out, w, &summary, clock.Today(b.store.Clock()))
	if interrupted {
		return fmt.Errorf("%w after %d of %d steps: %w", errors.ErrOperationCanceled, len(results), len(script.Actions), ctx.Err())
	}
	return nil
}

func countApplied(results []action.Result) int {
	n := 0
	for _, r := range results {
		if r.Applied {
			n++
		}
	}
	return n
}

func displayReplay(out tui.Output, w io.Writer, s *replaySummary, today time.Time) {
	if s.Interrupted {
		out.Warning(fmt.Sprintf("Replay of %s interrupted after %d of %d steps", s.Script, len(s.Results), s.Steps))
	} else {
		out.Success(fmt.Sprintf("Replayed %s: %d of %d steps applied", s.Script, s.Applied, s.Steps))
	}

	rows := make([][]string, 0, len(s.Results))
	for i, r := range s.Results {
		applied := "skipped"
		if r.Applied {
			applied = "applied"
		}
		target := "-"
		if r.Target != 0 {
			target = fmt.Sprintf("#%d", r.Target)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), string(r.Kind), target, applied})
	}
	if len(rows) > 0 {
		_, _ = fmt.Fprintln(w)
		out.Table([]string{"STEP", "ACTION", "TARGET", "RESULT"}, rows)
	}

	_, _ = fmt.Fprintln(w)
	displayStats(out, w, s.Stats)
	out.Info(fmt.Sprintf("%d unread notifications", s.Unread))

	if len(s.Tasks) > 0 {
		_, _ = fmt.Fprintln(w)
		_ = tui.NewTaskTable(s.Tasks, tui.WithToday(today)).Render(w)
	}
}
