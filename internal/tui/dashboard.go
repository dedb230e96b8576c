package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mrz1836/taskdeck/internal/action"
	"github.com/mrz1836/taskdeck/internal/clock"
	"github.com/mrz1836/taskdeck/internal/constants"
	"github.com/mrz1836/taskdeck/internal/domain"
	deckerrors "github.com/mrz1836/taskdeck/internal/errors"
	"github.com/mrz1836/taskdeck/internal/query"
	"github.com/mrz1836/taskdeck/internal/session"
	"github.com/mrz1836/taskdeck/internal/store"
)

// DashboardConfig holds configuration for the interactive dashboard.
type DashboardConfig struct {
	// Username is the name submitted to the login step.
	Username string
	// RefreshInterval is how often notification time labels are recomputed.
	RefreshInterval time.Duration
	// BellEnabled rings the terminal bell when a task is completed.
	BellEnabled bool
	// Quiet hides the logo header and silences the bell.
	Quiet bool
	// DefaultView is the section shown right after login.
	DefaultView constants.View
}

// DefaultDashboardConfig returns the default dashboard configuration.
func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		Username:        constants.DefaultUser,
		RefreshInterval: constants.DefaultRefreshInterval,
		BellEnabled:     true,
		DefaultView:     constants.ViewDashboard,
	}
}

// Authenticator signs the user in before the board is shown.
type Authenticator interface {
	Login(ctx context.Context, creds session.Credentials) (*session.Session, error)
}

// Phase is the top-level screen of the dashboard.
type Phase int

// Phase constants.
const (
	PhaseLogin Phase = iota
	PhaseBoard
)

// InputMode says what the text input is currently collecting.
type InputMode int

// Input mode constants.
const (
	InputNone InputMode = iota
	InputSearch
	InputTaskTitle
	InputProjectName
)

// maxDropdownItems caps the notification dropdown.
const maxDropdownItems = 5

// LoginMsg carries the result of the login command.
type LoginMsg struct {
	Session *session.Session
	Err     error
}

// TickMsg signals time to refresh notification labels.
type TickMsg time.Time

// BellMsg signals that a bell was emitted.
type BellMsg struct{}

// DashboardModel is the Bubble Tea model for the interactive board.
// Every mutation goes through the action dispatcher.
type DashboardModel struct {
	dispatcher *action.Dispatcher
	auth       Authenticator
	config     DashboardConfig
	notifier   *Notifier

	phase   Phase
	session *session.Session
	spinner spinner.Model
	input   textinput.Model
	mode    InputMode

	// newPriority is the priority given to tasks created from the modal.
	newPriority domain.Priority
	cursor      int
	status      string

	width, height int
	quitting      bool
	err           error

	// baseCtx is stored for use in async Bubble Tea commands.
	baseCtx context.Context //nolint:containedctx // Required for Bubble Tea async commands
}

// ModelOption configures a DashboardModel.
type ModelOption func(*DashboardModel)

// WithNotifier replaces the bell notifier (useful for testing).
func WithNotifier(n *Notifier) ModelOption {
	return func(m *DashboardModel) {
		m.notifier = n
	}
}

// NewDashboardModel creates a dashboard that signs in through auth and then
// drives d.
func NewDashboardModel(ctx context.Context, d *action.Dispatcher, auth Authenticator, cfg DashboardConfig, opts ...ModelOption) *DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	in := textinput.New()
	in.CharLimit = 120

	m := &DashboardModel{
		dispatcher:  d,
		auth:        auth,
		config:      cfg,
		notifier:    NewNotifier(cfg.BellEnabled, cfg.Quiet),
		phase:       PhaseLogin,
		spinner:     sp,
		input:       in,
		newPriority: domain.PriorityMedium,
		width:       DefaultTerminalWidth,
		height:      24,
		baseCtx:     ctx,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init starts the login spinner and the login itself.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.login())
}

// Update handles messages and returns the updated model and any commands.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-10, 10)
		return m, nil

	case LoginMsg:
		return m.handleLogin(msg)

	case spinner.TickMsg:
		if m.phase != PhaseLogin {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TickMsg:
		if m.phase != PhaseBoard {
			return m, nil
		}
		m.store().RefreshLabels()
		return m, m.tick()

	case BellMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.phase == PhaseLogin {
			if msg.String() == "q" {
				return m.quit()
			}
			return m, nil
		}
		if m.mode != InputNone {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleLogin(msg LoginMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		return m.quit()
	}
	m.session = msg.Session
	m.phase = PhaseBoard
	m.store().SetUser(msg.Session.User)
	if m.config.DefaultView.IsValid() {
		m.dispatch(action.Action{Kind: action.KindSetView, View: m.config.DefaultView})
	}
	m.store().RefreshLabels()
	return m, m.tick()
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m.quit()
	case "1", "2", "3", "4":
		view := constants.ValidViews()[int(key[0]-'1')]
		m.dispatch(action.Action{Kind: action.KindSetView, View: view})
		m.cursor = 0
	case "/":
		m.startInput(InputSearch, "/ ", m.store().UI().Query)
	case "s":
		next := nextFilter(m.store().UI().StatusFilter, statusFilterCycle())
		m.dispatch(action.Action{Kind: action.KindSetFilter, Filter: action.FilterStatus, Value: next})
		m.clampCursor()
	case "p":
		next := nextFilter(m.store().UI().PriorityFilter, priorityFilterCycle())
		m.dispatch(action.Action{Kind: action.KindSetFilter, Filter: action.FilterPriority, Value: next})
		m.clampCursor()
	case "n":
		m.openModal(store.ModalTask)
		m.newPriority = domain.PriorityMedium
		m.startInput(InputTaskTitle, "Title: ", "")
	case "N":
		m.openModal(store.ModalProject)
		m.startInput(InputProjectName, "Name: ", "")
	case "b":
		m.dispatch(action.Action{Kind: action.KindToggleModal, Modal: store.ModalNotifications})
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()
	case "enter", " ":
		return m, m.cycleSelected()
	case "d":
		m.deleteSelected()
	case "r":
		m.markSelectedRead()
	case "R":
		res := m.dispatch(action.Action{Kind: action.KindMarkAllRead})
		if res.Applied {
			m.status = "All notifications marked read"
		}
	}
	return m, nil
}

func (m *DashboardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == InputSearch {
			m.input.SetValue("")
			m.dispatch(action.Action{Kind: action.KindSetFilter, Filter: action.FilterQuery})
		}
		m.closeInput()
		return m, nil

	case "enter":
		m.submitInput()
		return m, nil

	case "tab":
		if m.mode == InputTaskTitle {
			m.newPriority = nextPriority(m.newPriority)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == InputSearch {
		m.dispatch(action.Action{Kind: action.KindSetFilter, Filter: action.FilterQuery, Value: m.input.Value()})
		m.clampCursor()
	}
	return m, cmd
}

func (m *DashboardModel) submitInput() {
	value := m.input.Value()
	switch m.mode {
	case InputSearch:
		m.closeInput()

	case InputTaskTitle:
		priority := m.newPriority
		res := m.dispatch(action.Action{Kind: action.KindCreateTask, Title: &value, Priority: &priority})
		if !res.Applied {
			m.status = "A task needs a title"
			return
		}
		m.status = fmt.Sprintf("Created task #%d", res.Target)
		m.closeInput()

	case InputProjectName:
		res := m.dispatch(action.Action{Kind: action.KindCreateProject, Name: value})
		if !res.Applied {
			m.status = "A project needs a name"
			return
		}
		m.status = fmt.Sprintf("Created project #%d", res.Target)
		m.closeInput()

	case InputNone:
	}
}

func (m *DashboardModel) startInput(mode InputMode, prompt, value string) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *DashboardModel) closeInput() {
	switch m.mode {
	case InputTaskTitle:
		m.closeModal(store.ModalTask)
	case InputProjectName:
		m.closeModal(store.ModalProject)
	case InputSearch, InputNone:
	}
	m.mode = InputNone
	m.input.Blur()
	m.input.SetValue("")
	m.clampCursor()
}

func (m *DashboardModel) openModal(modal store.Modal) {
	if !m.store().UI().ModalOpen(modal) {
		m.dispatch(action.Action{Kind: action.KindToggleModal, Modal: modal})
	}
}

func (m *DashboardModel) closeModal(modal store.Modal) {
	if m.store().UI().ModalOpen(modal) {
		m.dispatch(action.Action{Kind: action.KindToggleModal, Modal: modal})
	}
}

// cycleSelected advances the selected task's status and rings the bell when
// it lands on done.
func (m *DashboardModel) cycleSelected() tea.Cmd {
	task, ok := m.selectedTask()
	if !ok {
		return nil
	}
	res := m.dispatch(action.Action{Kind: action.KindCycleTaskStatus, ID: task.ID})
	if !res.Applied {
		return nil
	}
	updated, _ := m.store().Task(task.ID)
	m.status = fmt.Sprintf("#%d is now %s", updated.ID, updated.Status)
	m.clampCursor()
	if !task.IsDone() && updated.IsDone() {
		return m.emitBell()
	}
	return nil
}

func (m *DashboardModel) deleteSelected() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	if res := m.dispatch(action.Action{Kind: action.KindDeleteTask, ID: task.ID}); res.Applied {
		m.status = fmt.Sprintf("Deleted task #%d", task.ID)
	}
	m.clampCursor()
}

func (m *DashboardModel) markSelectedRead() {
	if m.store().UI().View != constants.ViewNotifications {
		return
	}
	list := m.store().Notifications()
	if m.cursor >= len(list) {
		return
	}
	m.dispatch(action.Action{Kind: action.KindMarkRead, ID: list[m.cursor].ID})
}

func (m *DashboardModel) selectedTask() (domain.Task, bool) {
	switch m.store().UI().View {
	case constants.ViewDashboard, constants.ViewTasks:
	case constants.ViewProjects, constants.ViewNotifications:
		return domain.Task{}, false
	}
	tasks := m.store().VisibleTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return domain.Task{}, false
	}
	return tasks[m.cursor], true
}

// listLen is the length of the list the cursor moves over in the current view.
func (m *DashboardModel) listLen() int {
	switch m.store().UI().View {
	case constants.ViewProjects:
		return len(m.store().Projects())
	case constants.ViewNotifications:
		return len(m.store().Notifications())
	case constants.ViewDashboard, constants.ViewTasks:
	}
	return len(m.store().VisibleTasks())
}

func (m *DashboardModel) clampCursor() {
	n := m.listLen()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *DashboardModel) dispatch(a action.Action) action.Result {
	res, err := m.dispatcher.Dispatch(a)
	if err != nil {
		m.err = err
	}
	return res
}

func (m *DashboardModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *DashboardModel) store() *store.Store {
	return m.dispatcher.Store()
}

// login returns a command that runs the authenticator.
func (m *DashboardModel) login() tea.Cmd {
	return func() tea.Msg {
		ctx := m.baseCtx
		if ctx == nil {
			ctx = context.Background()
		}
		sess, err := m.auth.Login(ctx, session.Credentials{Username: m.config.Username})
		return LoginMsg{Session: sess, Err: err}
	}
}

// tick returns a command that sends a TickMsg after the refresh interval.
func (m *DashboardModel) tick() tea.Cmd {
	interval := m.config.RefreshInterval
	if interval <= 0 {
		interval = constants.DefaultRefreshInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// emitBell returns a command that rings the bell, or nil when bells are off.
func (m *DashboardModel) emitBell() tea.Cmd {
	if !m.notifier.Enabled() {
		return nil
	}
	return func() tea.Msg {
		m.notifier.Bell()
		return BellMsg{}
	}
}

// Phase returns the current top-level screen.
func (m *DashboardModel) Phase() Phase {
	return m.phase
}

// Session returns the signed-in session, or nil before login completes.
func (m *DashboardModel) Session() *session.Session {
	return m.session
}

// Mode returns what the text input is collecting.
func (m *DashboardModel) Mode() InputMode {
	return m.mode
}

// Cursor returns the selected row in the current view.
func (m *DashboardModel) Cursor() int {
	return m.cursor
}

// NewTaskPriority returns the priority the task modal will create with.
func (m *DashboardModel) NewTaskPriority() domain.Priority {
	return m.newPriority
}

// IsQuitting returns true if the model is in quitting state.
func (m *DashboardModel) IsQuitting() bool {
	return m.quitting
}

// Error returns the last error, including a failed or canceled login.
func (m *DashboardModel) Error() error {
	return m.err
}

// LoginCanceled reports whether the dashboard exited because login was abandoned.
func (m *DashboardModel) LoginCanceled() bool {
	return errors.Is(m.err, deckerrors.ErrLoginCanceled)
}

// View renders the current state to a string.
func (m *DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if !m.config.Quiet {
		b.WriteString(RenderHeader(m.width))
		b.WriteString("\n\n")
	}

	if m.phase == PhaseLogin {
		fmt.Fprintf(&b, "%s Signing in as %s...\n", m.spinner.View(), m.config.Username)
		b.WriteString(StyleDim.Render("Press 'q' to quit"))
		return b.String()
	}

	b.WriteString(m.renderTopBar())
	b.WriteString("\n\n")

	ui := m.store().UI()
	if ui.ShowNotifications {
		b.WriteString(m.renderDropdown())
		b.WriteString("\n")
	}

	switch ui.View {
	case constants.ViewTasks:
		b.WriteString(m.renderTasks())
	case constants.ViewProjects:
		b.WriteString(m.renderProjects())
	case constants.ViewNotifications:
		b.WriteString(m.renderNotifications())
	case constants.ViewDashboard:
		b.WriteString(m.renderOverview())
	}

	if ui.ShowTaskModal || ui.ShowProjectModal {
		b.WriteString("\n")
		b.WriteString(m.renderModal(ui))
	} else if m.mode == InputSearch {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}

	if m.err != nil {
		fmt.Fprintf(&b, "\nError: %v", m.err)
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.helpLine(ui.View)))
	return b.String()
}

func (m *DashboardModel) renderTopBar() string {
	ui := m.store().UI()
	title := cases.Title(language.English)

	tabs := make([]string, 0, len(constants.ValidViews()))
	for i, v := range constants.ValidViews() {
		label := fmt.Sprintf("%d %s", i+1, title.String(v.String()))
		if v == ui.View {
			label = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Render("[" + label + "]")
		} else {
			label = StyleDim.Render(" " + label + " ")
		}
		tabs = append(tabs, label)
	}

	user := m.store().User().Name
	bell := fmt.Sprintf("🔔 %d", m.store().UnreadCount())
	return strings.Join(tabs, " ") + "   " + StyleBold.Render(user) + "  " + bell
}

func (m *DashboardModel) renderOverview() string {
	s := m.store()
	today := clock.Today(s.Clock())
	stats := query.ComputeStats(s.Tasks(), today)

	cards := []string{
		statCard("Total", fmt.Sprint(stats.Total), ColorPrimary),
		statCard("In progress", fmt.Sprint(stats.InProgress), ColorWarning),
		statCard("Done", fmt.Sprint(stats.Done), ColorSuccess),
		statCard("Overdue", fmt.Sprint(stats.Overdue), ColorError),
		statCard("Complete", fmt.Sprintf("%d%%", stats.CompletionRate), ColorPrimary),
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")
	b.WriteString(HeaderStyle(ColorPrimary).Render("Projects"))
	b.WriteString("\n")
	rows := BuildProgressRows(query.SummarizeProjects(s.Projects(), s.Tasks()))
	b.WriteString(renderProgress(rows, WithTermWidth(m.width), WithDensityMode(DensityCompact)))
	b.WriteString("\n")
	b.WriteString(HeaderStyle(ColorPrimary).Render("Tasks"))
	b.WriteString("\n")
	b.WriteString(m.renderTaskList(s.VisibleTasks(), today))
	return b.String()
}

func statCard(label, value string, color lipgloss.TerminalColor) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		MarginRight(1).
		Render(lipgloss.NewStyle().Bold(true).Foreground(color).Render(value) + "\n" + StyleDim.Render(label))
}

func (m *DashboardModel) renderTasks() string {
	s := m.store()
	ui := s.UI()
	today := clock.Today(s.Clock())

	var b strings.Builder
	fmt.Fprintf(&b, "Search: %q  Status: %s  Priority: %s\n\n", ui.Query, ui.StatusFilter, ui.PriorityFilter)
	b.WriteString(m.renderTaskList(s.VisibleTasks(), today))
	b.WriteString("\n")

	visible := s.VisibleTasks()
	columns := make([]string, 0, len(constants.ValidTaskStatuses()))
	colWidth := max((m.width-4)/3, 20)
	for _, status := range constants.ValidTaskStatuses() {
		group := query.TasksByStatus(visible, status)
		var col strings.Builder
		col.WriteString(lipgloss.NewStyle().Bold(true).Foreground(TaskStatusColor(status)).
			Render(fmt.Sprintf("%s %s (%d)", TaskStatusIcon(status), status, len(group))))
		for _, t := range group {
			col.WriteString("\n  #")
			fmt.Fprintf(&col, "%d %s", t.ID, t.Title)
		}
		columns = append(columns, lipgloss.NewStyle().Width(colWidth).Render(col.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	return b.String()
}

func (m *DashboardModel) renderTaskList(tasks []domain.Task, today time.Time) string {
	if len(tasks) == 0 {
		return StyleDim.Render("No tasks match the current filters.") + "\n"
	}
	var b strings.Builder
	for i, t := range tasks {
		marker := "  "
		line := fmt.Sprintf("#%-3d %s  %s  %s  %s", t.ID, FormatStatus(t.Status), FormatPriority(t.Priority),
			t.Title, StyleDim.Render(DueLabel(t.DueDate, today)))
		if i == m.cursor {
			marker = lipgloss.NewStyle().Foreground(ColorPrimary).Render("▸ ")
			line = StyleBold.Render(line)
		}
		if t.IsOverdue(today) {
			line += " " + lipgloss.NewStyle().Foreground(ColorError).Render("!")
		}
		b.WriteString(marker + line + "\n")
	}
	return b.String()
}

func (m *DashboardModel) renderProjects() string {
	s := m.store()
	summaries := query.SummarizeProjects(s.Projects(), s.Tasks())
	if len(summaries) == 0 {
		return StyleDim.Render("No projects yet. Press 'N' to create one.") + "\n"
	}
	return renderProgress(BuildProgressRows(summaries), WithTermWidth(m.width))
}

// renderProgress draws the project bars. A render failure is shown in place
// of the bars so the rest of the view still draws.
func renderProgress(rows []ProgressRow, opts ...DashboardOption) string {
	var b strings.Builder
	if err := NewProgressDashboard(rows, opts...).Render(&b); err != nil {
		return StyleDim.Render("Project progress unavailable: "+err.Error()) + "\n"
	}
	return b.String()
}

func (m *DashboardModel) renderNotifications() string {
	list := m.store().Notifications()
	if len(list) == 0 {
		return StyleDim.Render("No notifications.") + "\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d unread\n\n", m.store().UnreadCount())
	for i, n := range list {
		b.WriteString(m.notificationLine(n, i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *DashboardModel) renderDropdown() string {
	cfg := DefaultFeedConfig()
	cfg.MaxLines = maxDropdownItems
	cfg.Width = min(m.width, DefaultBoxWidth)
	return NewNotificationFeed(m.store().Notifications(), cfg).Render() + "\n"
}

func (m *DashboardModel) notificationLine(n domain.Notification, selected bool) string {
	icon := lipgloss.NewStyle().Foreground(NotificationColor(n.Type)).Render(NotificationIcon(n.Type))
	unread := " "
	if !n.Read {
		unread = lipgloss.NewStyle().Foreground(ColorPrimary).Render("●")
	}
	line := fmt.Sprintf("%s %s %s %s", unread, icon, n.Message, StyleDim.Render(n.Time))
	if selected {
		return lipgloss.NewStyle().Foreground(ColorPrimary).Render("▸") + line
	}
	return " " + line
}

func (m *DashboardModel) renderModal(ui store.UIState) string {
	title := "New project"
	hint := "enter create · esc cancel"
	if ui.ShowTaskModal {
		title = "New task"
		hint = "enter create · tab priority (" + m.newPriority.String() + ") · esc cancel"
	}
	box := NewBoxStyle().WithWidth(min(m.width, 60))
	return box.Render(title, m.input.View()+"\n"+hint)
}

func (m *DashboardModel) helpLine(view constants.View) string {
	switch view {
	case constants.ViewNotifications:
		return "1-4 views · j/k move · r read · R read all · b dropdown · q quit"
	case constants.ViewProjects:
		return "1-4 views · N new project · b notifications · q quit"
	case constants.ViewDashboard, constants.ViewTasks:
	}
	return "1-4 views · j/k move · enter cycle · d delete · n new task · N new project · / search · s status · p priority · q quit"
}

func statusFilterCycle() []string {
	out := []string{constants.FilterAll}
	for _, s := range constants.ValidTaskStatuses() {
		out = append(out, s.String())
	}
	return out
}

func priorityFilterCycle() []string {
	out := []string{constants.FilterAll}
	for _, p := range constants.ValidPriorities() {
		out = append(out, p.String())
	}
	return out
}

// nextFilter returns the value after current in cycle, wrapping around.
func nextFilter(current string, cycle []string) string {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func nextPriority(p domain.Priority) domain.Priority {
	all := constants.ValidPriorities()
	for i, v := range all {
		if v == p {
			return all[(i+1)%len(all)]
		}
	}
	return domain.PriorityMedium
}
