package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/weekplan/internal/model"
	"github.com/sandeepkv93/weekplan/internal/planner"
	"github.com/sandeepkv93/weekplan/internal/views"
)

// Init requests the first refresh through Update.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return RefreshMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.Pending > 0 {
			var cmd tea.Cmd
			m.syncSpinner, cmd = m.syncSpinner.Update(typed)
			return m, cmd
		}
	case RefreshMsg:
		cmd := m.refresh()
		return m, cmd
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.settle()
		m.LastError = typed.Err
		if typed.Err != nil {
			text := typed.Err.Error()
			if typed.Op != "" {
				text = typed.Op + ": " + text
			}
			m.Status = StatusBar{Text: text, IsError: true}
			m.notify("Error", text, "error")
		}
		return m, nil
	case TasksLoadedMsg:
		m.settle()
		if typed.Day != m.Session.Day {
			return m, nil
		}
		m.Session.Tasks = typed.Tasks
		m.clampCursor()
		return m, nil
	case AllTasksLoadedMsg:
		m.settle()
		m.Session.AllTasks = typed.Tasks
		return m, nil
	case SummaryLoadedMsg:
		m.settle()
		m.Session.Summary = typed.Summary
		return m, nil
	case TaskCreatedMsg:
		m.settle()
		m.Status = StatusBar{Text: fmt.Sprintf("added %q on %s", typed.Task.Title, typed.Task.Day)}
		cmd := m.refresh()
		return m, cmd
	case TaskUpdatedMsg:
		m.settle()
		state := "pending"
		if typed.Task.Completed {
			state = "done"
		}
		m.Status = StatusBar{Text: fmt.Sprintf("%q marked %s", typed.Task.Title, state)}
		cmd := m.refresh()
		return m, cmd
	case TaskDeletedMsg:
		m.settle()
		m.Status = StatusBar{Text: "task deleted"}
		cmd := m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.ConfirmDelete != nil {
		return m.handleConfirmKey(keyStr)
	}

	switch keyStr {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.Focus()
		m.commandInput.SetValue("")
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Dashboard:
		m.CurrentView = ViewDashboard
		return m, nil
	case m.Keys.Timetable:
		m.CurrentView = ViewTimetable
		return m, nil
	case m.Keys.Analytics:
		m.CurrentView = ViewAnalytics
		return m, nil
	case m.Keys.PrevDay:
		return m.selectDay(m.Session.Day.Prev())
	case m.Keys.NextDay:
		return m.selectDay(m.Session.Day.Next())
	case m.Keys.Refresh:
		m.Status = StatusBar{Text: "refreshing"}
		cmd := m.refresh()
		return m, cmd
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "D":
		m.cycleDensity()
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentView {
	case ViewDashboard:
		return m.handleDashboardKey(keyStr)
	case ViewDetails:
		return m.handleDetailsKey(msg)
	}
	return m, nil
}

func (m Model) handleDashboardKey(keyStr string) (Model, tea.Cmd) {
	switch keyStr {
	case "j", "down":
		if m.Cursor < len(m.Session.Tasks)-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case " ", "space":
		task, ok := m.selectedTask()
		if !ok {
			m.Status = StatusBar{Text: "no task selected", IsError: true}
			return m, nil
		}
		cmd := m.toggleTask(task)
		return m, cmd
	case "x":
		task, ok := m.selectedTask()
		if !ok {
			m.Status = StatusBar{Text: "no task selected", IsError: true}
			return m, nil
		}
		m.ConfirmDelete = &task
		m.Status = StatusBar{Text: fmt.Sprintf("delete %q?", task.Title)}
	case "enter":
		if _, ok := m.selectedTask(); ok {
			m.CurrentView = ViewDetails
			m.detailsViewport.GotoTop()
		}
	}
	return m, nil
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.CurrentView = ViewDashboard
		return m, nil
	}
	var cmd tea.Cmd
	m.detailsViewport, cmd = m.detailsViewport.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(keyStr string) (Model, tea.Cmd) {
	task := *m.ConfirmDelete
	m.ConfirmDelete = nil
	switch strings.ToLower(keyStr) {
	case "y":
		cmd := m.deleteTask(task.ID)
		return m, cmd
	default:
		m.Status = StatusBar{Text: "delete cancelled"}
		return m, nil
	}
}

func (m Model) selectDay(day model.Day) (Model, tea.Cmd) {
	if !day.IsValid() || day == m.Session.Day {
		return m, nil
	}
	m.Session.Day = day
	m.Session.Tasks = nil
	m.Cursor = 0
	cmd := m.loadDay(day)
	return m, cmd
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := m.renderCommandPalette() + m.renderHelpIfVisible()
	switch m.CurrentView {
	case ViewDashboard:
		leftPane = m.renderDashboardView()
	case ViewTimetable:
		leftPane = m.renderTimetableView()
	case ViewAnalytics:
		leftPane = m.renderAnalyticsView()
	case ViewDetails:
		leftPane = m.detailsViewport.View()
	}

	notification := strings.TrimSpace(strings.Join([]string{
		views.RenderConfirm(m.confirmPrompt()),
		m.renderNotificationsView(),
	}, "\n"))

	width := 0
	if m.CurrentView == ViewTimetable {
		width = 9 + 7*10 + 2
	}
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("weekplan | view: %s | day: %s", m.CurrentView, m.Session.Day),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: notification,
		PaneWidth:    width,
		Footer: fmt.Sprintf("keys: %s dash | %s grid | %s stats | %s/%s day | %s refresh | / cmd | %s help | %s quit",
			m.Keys.Dashboard, m.Keys.Timetable, m.Keys.Analytics, m.Keys.PrevDay, m.Keys.NextDay, m.Keys.Refresh, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderDashboardView() string {
	return views.RenderDashboard(views.DashboardData{
		Day:      m.Session.Day,
		Today:    model.Today(m.now()),
		Tasks:    m.Session.Tasks,
		Cursor:   m.Cursor,
		Stats:    planner.ComputeStats(m.Session.Tasks),
		Loading:  m.Pending > 0,
		Spinner:  m.syncSpinner.View(),
		ListView: m.taskListView(),
	})
}

func (m Model) taskListView() string {
	if len(m.Session.Tasks) == 0 {
		return ""
	}
	return m.taskTable.View()
}

func (m Model) renderTimetableView() string {
	grid, err := planner.BuildTimetable(m.Session.AllTasks)
	if err != nil {
		return fmt.Sprintf("timetable unavailable: %v", err)
	}
	return views.RenderTimetable(views.TimetableData{Grid: grid, Selected: m.Session.Day})
}

func (m Model) renderAnalyticsView() string {
	summary := m.Session.Summary
	if len(summary) == 0 {
		summary = planner.Summarize(m.Session.AllTasks)
	}
	return views.RenderAnalytics(views.AnalyticsData{
		Summary: summary,
		Week:    planner.WeekTotals(summary),
		Today:   model.Today(m.now()),
	})
}

func (m Model) confirmPrompt() string {
	if m.ConfirmDelete == nil {
		return ""
	}
	return fmt.Sprintf("delete %q?", m.ConfirmDelete.Title)
}

func isKnownView(v View) bool {
	switch v {
	case ViewDashboard, ViewTimetable, ViewAnalytics, ViewDetails:
		return true
	default:
		return false
	}
}
