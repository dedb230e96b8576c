package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mrz1836/taskdeck/internal/domain"
)

// FeedConfig configures the notification feed box.
type FeedConfig struct {
	// MaxLines is the maximum number of notifications to display.
	MaxLines int

	// Width is the box width.
	Width int

	// Title is the box title.
	Title string

	// ShowTimes appends the relative time label to each line.
	ShowTimes bool
}

// DefaultFeedConfig returns the default configuration.
func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		MaxLines:  5,
		Width:     60,
		Title:     "Notifications",
		ShowTimes: true,
	}
}

// NotificationFeed renders the most recent notifications as a bordered box.
type NotificationFeed struct {
	config FeedConfig
	items  []domain.Notification
	unread int
	styles *OutputStyles
}

// NewNotificationFeed creates a feed over items, which are expected most
// recent first. Only the first MaxLines are kept.
func NewNotificationFeed(items []domain.Notification, config FeedConfig) *NotificationFeed {
	if config.MaxLines <= 0 {
		config.MaxLines = 5
	}
	if config.Width <= 0 {
		config.Width = 60
	}
	if config.Title == "" {
		config.Title = "Notifications"
	}

	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}
	if len(items) > config.MaxLines {
		items = items[:config.MaxLines]
	}

	return &NotificationFeed{
		config: config,
		items:  items,
		unread: unread,
		styles: NewOutputStyles(),
	}
}

// Len returns the number of notifications the feed will draw.
func (f *NotificationFeed) Len() int {
	return len(f.items)
}

// Unread returns the unread count across every notification passed in,
// including those beyond MaxLines.
func (f *NotificationFeed) Unread() int {
	return f.unread
}

// Render returns the feed as a bordered box.
func (f *NotificationFeed) Render() string {
	innerWidth := f.config.Width - 4

	var sb strings.Builder

	title := fmt.Sprintf("%s (%d unread)", f.config.Title, f.unread)
	titleStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	fmt.Fprintf(&sb, "┌─ %s %s┐\n",
		titleStyle.Render(title),
		strings.Repeat("─", max(0, innerWidth-runewidth.StringWidth(title)-1)))

	if len(f.items) == 0 {
		fmt.Fprintf(&sb, "│ %s │\n", padRight(f.styles.Dim.Render("No notifications."), innerWidth))
	}
	for _, n := range f.items {
		marker := " "
		if !n.Read {
			marker = lipgloss.NewStyle().Foreground(ColorPrimary).Render("●")
		}
		icon := lipgloss.NewStyle().Foreground(NotificationColor(n.Type)).Render(NotificationIcon(n.Type))
		line := f.formatLine(n, innerWidth-4)
		fmt.Fprintf(&sb, "│ %s %s %s │\n", marker, icon, padRight(line, innerWidth-4))
	}

	fmt.Fprintf(&sb, "└%s┘", strings.Repeat("─", f.config.Width-2))
	return sb.String()
}

// formatLine joins the message and time label, truncated to maxWidth cells.
func (f *NotificationFeed) formatLine(n domain.Notification, maxWidth int) string {
	msg := n.Message
	suffix := ""
	if f.config.ShowTimes && n.Time != "" {
		suffix = " · " + n.Time
	}
	room := maxWidth - runewidth.StringWidth(suffix)
	if room < 4 {
		return runewidth.Truncate(msg, maxWidth, "...")
	}
	msg = runewidth.Truncate(msg, room, "...")
	if suffix == "" {
		return msg
	}
	return msg + f.styles.Dim.Render(suffix)
}
