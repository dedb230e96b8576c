package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/session"
	"github.com/mrz1836/taskdeck/internal/signal"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// AddLoginCommand adds the login command to the root command.
func AddLoginCommand(root *cobra.Command) {
	var user string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Run the simulated sign-in and print the session",
		Long: `Run the simulated sign-in on its own and print the resulting session.

Any non-blank user name is accepted. Ctrl+C during the delay cancels
the sign-in.

Examples:
  taskdeck login
  taskdeck login --user "Alex Morgan"
  taskdeck login -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := signal.NewHandler(cmd.Context())
			defer h.Stop()
			return runLogin(h.Context(), cmd, os.Stdout, user)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Sign in as this user (default from config)")

	root.AddCommand(cmd)
}

func runLogin(ctx context.Context, cmd *cobra.Command, w io.Writer, user string, opts ...boardOption) error {
	outputFormat := getOutputFormat(cmd)
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	b, err := loadBoard(ctx, opts...)
	if err != nil {
		return outputCommandError(w, outputFormat, "login", err)
	}
	if user == "" {
		user = b.cfg.Session.DefaultUser
	}

	auth := session.NewAuthenticator(b.cfg.Session.LoginDelay, session.WithLogger(b.logger))

	var spinner tui.Spinner = &tui.NoopSpinner{}
	if !isQuiet(cmd) {
		spinner = out.Spinner(ctx, fmt.Sprintf("Signing in as %s...", user))
	}
	sess, err := auth.Login(ctx, session.Credentials{Username: user})
	if err != nil {
		spinner.StopWithError("Sign-in failed")
		if stderrors.Is(err, errors.ErrEmptyValue) {
			err = errors.NewExitCode2Error(err)
		}
		return outputCommandError(w, outputFormat, "login", err)
	}

	if outputFormat == OutputJSON {
		spinner.Stop()
		return out.JSON(sess)
	}

	// The quiet spinner is a no-op, so the status line goes through out.
	signedIn := fmt.Sprintf("Signed in as %s", sess.User.Name)
	if isQuiet(cmd) {
		out.Success(signedIn)
	} else {
		spinner.StopWithSuccess(signedIn)
	}
	out.Info(fmt.Sprintf("Session:  %s", sess.ID))
	out.Info(fmt.Sprintf("Email:    %s", sess.User.Email))
	out.Info(fmt.Sprintf("Role:     %s", sess.User.Role))
	out.Info(fmt.Sprintf("Started:  %s", sess.StartedAt.Format("2006-01-02 15:04:05 MST")))
	return nil
}
