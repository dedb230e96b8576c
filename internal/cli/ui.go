package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/session"
	"github.com/mrz1836/taskdeck/internal/signal"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// AddUICommand adds the ui command to the root command.
func AddUICommand(root *cobra.Command) {
	var user string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard",
		Long: `Sign in and open the interactive dashboard.

Keys:
  1-4        switch view (dashboard, tasks, projects, notifications)
  /          search tasks
  s / p      cycle the status / priority filter
  n / N      new task / new project
  enter      advance the selected task's status
  d          delete the selected task
  r / R      mark notification read / mark all read
  b          toggle the notification dropdown
  j / k      move the selection
  q          quit

The board starts from the seed data and nothing is saved on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := signal.NewHandler(cmd.Context())
			defer h.Stop()
			return runUI(h.Context(), cmd, user)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Sign in as this user (default from config)")

	root.AddCommand(cmd)
}

// programRunner starts a Bubble Tea program. Tests replace it.
var programRunner = func(ctx context.Context, model tea.Model, in io.Reader, out io.Writer) (tea.Model, error) { //nolint:gochecknoglobals // test seam
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	var final tea.Model
	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		m, err := program.Run()
		final = m
		return err
	})

	// Quit the program when the command context is canceled.
	g.Go(func() error {
		select {
		case <-gctx.Done():
			program.Quit()
		case <-done:
		}
		return nil
	})

	if err := g.Wait(); err != nil && !stderrors.Is(err, tea.ErrProgramKilled) {
		return final, err
	}
	return final, nil
}

func runUI(ctx context.Context, cmd *cobra.Command, user string, opts ...boardOption) error {
	if getOutputFormat(cmd) == OutputJSON {
		return errors.NewExitCode2Error(errors.Wrap(errors.ErrInteractiveRequired, "the dashboard has no JSON output"))
	}
	tui.CheckNoColor()

	b, err := loadBoard(ctx, opts...)
	if err != nil {
		return err
	}

	cfg := tui.DashboardConfig{
		Username:        b.cfg.Session.DefaultUser,
		RefreshInterval: b.cfg.UI.RefreshInterval,
		BellEnabled:     b.cfg.UI.BellOnComplete,
		Quiet:           isQuiet(cmd),
		DefaultView:     constants.View(b.cfg.UI.DefaultView),
	}
	if user != "" {
		cfg.Username = user
	}

	auth := session.NewAuthenticator(b.cfg.Session.LoginDelay, session.WithLogger(b.logger))
	notifier := tui.NewNotifier(cfg.BellEnabled, cfg.Quiet)
	model := tui.NewDashboardModel(ctx, b.dispatcher, auth, cfg, tui.WithNotifier(notifier))

	b.logger.Debug().Str("user", cfg.Username).Str("view", string(cfg.DefaultView)).Msg("starting dashboard")

	final, err := programRunner(ctx, model, os.Stdin, cmd.OutOrStdout())
	if err != nil {
		return errors.Wrap(err, "dashboard failed")
	}

	if dm, ok := final.(*tui.DashboardModel); ok {
		if dm.LoginCanceled() || ctx.Err() != nil {
			b.logger.Info().Msg("dashboard closed before sign-in finished")
			return nil
		}
		if dm.Error() != nil {
			return dm.Error()
		}
	}
	return nil
}
