package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
	"github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// AddNotificationsCommand adds the notifications command group to the root command.
func AddNotificationsCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notifs"},
		Short:   "Show the notification feed",
	}
	cmd.AddCommand(newNotificationsListCmd())
	root.AddCommand(cmd)
}

// notificationsListFlags holds the flags for the list command.
type notificationsListFlags struct {
	unreadOnly bool
	kind       string
}

func newNotificationsListCmd() *cobra.Command {
	flags := &notificationsListFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications, most recent first",
		Long: `List notifications, most recent first.

Examples:
  taskdeck notifications list
  taskdeck notifications list --unread
  taskdeck notifications list --type warning
  taskdeck notifications list -o json

Exit codes:
  0: Success
  1: General error
  2: Unknown notification type`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNotificationsList(cmd.Context(), cmd, os.Stdout, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.unreadOnly, "unread", false, "Only show unread notifications")
	cmd.Flags().StringVar(&flags.kind, "type", "", "Only show one type (success, info, warning, error)")

	return cmd
}

func runNotificationsList(ctx context.Context, cmd *cobra.Command, w io.Writer, flags *notificationsListFlags, opts ...boardOption) error {
	outputFormat := getOutputFormat(cmd)
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	kind := constants.NotificationType(flags.kind)
	if kind != "" && !kind.IsValid() {
		return outputCommandError(w, outputFormat, "notifications list",
			errors.Wrapf(errors.ErrInvalidNotificationType, "%q must be one of %s", flags.kind, joinValues(constants.ValidNotificationTypes())))
	}

	b, err := loadBoard(ctx, opts...)
	if err != nil {
		return outputCommandError(w, outputFormat, "notifications list", err)
	}

	// Relative labels in the seed are rewritten against the current clock.
	b.store.RefreshLabels()

	items := b.store.Notifications()
	if flags.unreadOnly {
		items = unread(items)
	}
	if kind != "" {
		items = ofType(items, kind)
	}
	if items == nil {
		items = []domain.Notification{}
	}

	if outputFormat == OutputJSON {
		return out.JSON(items)
	}

	cfg := tui.DefaultFeedConfig()
	cfg.MaxLines = max(len(items), 1)
	if width := tui.TerminalWidth(); width > 0 {
		cfg.Width = min(width, 100)
	}
	_, err = fmt.Fprintln(w, tui.NewNotificationFeed(items, cfg).Render())
	return err
}

// unread filters out notifications that were already read.
func unread(items []domain.Notification) []domain.Notification {
	out := make([]domain.Notification, 0, len(items))
	for _, n := range items {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

// ofType keeps the notifications of one type.
func ofType(items []domain.Notification, kind constants.NotificationType) []domain.Notification {
	out := make([]domain.Notification, 0, len(items))
	for _, n := range items {
		if n.Type == kind {
			out = append(out, n)
		}
	}
	return out
}
