package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/weekplan/internal/config"
	"github.com/sandeepkv93/weekplan/internal/model"
	"github.com/sandeepkv93/weekplan/internal/taskapi"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewTimetable View = "Timetable"
	ViewAnalytics View = "Analytics"
	ViewDetails   View = "Details"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Timetable string
	Analytics string
	PrevDay   string
	NextDay   string
	Refresh   string
	Help      string
	Quit      string
}

// Session is what the planner currently shows: the selected day, its tasks,
// the whole week and the per-day summary.
type Session struct {
	Day      model.Day
	Tasks    []model.Task
	AllTasks []model.Task
	Summary  []model.DaySummary
}

type Model struct {
	CurrentView    View
	Session        Session
	Cursor         int
	SelectedTaskID string
	Palette        CommandPaletteState
	HelpVisible    bool
	// ConfirmDelete holds the task awaiting a y/n answer.
	ConfirmDelete *model.Task
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Pending       int
	Quitting      bool
	LastError     error

	repo    taskapi.Repository
	timeout time.Duration
	now     func() time.Time

	taskTable       table.Model
	commandInput    textinput.Model
	syncSpinner     spinner.Model
	helpModel       help.Model
	detailsViewport viewport.Model
	uiDensity       int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

// RefreshMsg re-fetches the session from the store.
type RefreshMsg struct{}

// AppErrorMsg reports a failed repository call.
type AppErrorMsg struct {
	Op  string
	Err error
}

type TasksLoadedMsg struct {
	Day   model.Day
	Tasks []model.Task
}

type AllTasksLoadedMsg struct {
	Tasks []model.Task
}

type SummaryLoadedMsg struct {
	Summary []model.DaySummary
}

type TaskCreatedMsg struct {
	Task model.Task
}

type TaskUpdatedMsg struct {
	Task model.Task
}

type TaskDeletedMsg struct {
	ID string
}

type Option func(*Model)

// WithClock replaces time.Now, used to pick the initial day.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func NewModel(repo taskapi.Repository, cfg config.RuntimeConfig, opts ...Option) Model {
	m := Model{
		CurrentView: ViewDashboard,
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Timetable: "2",
			Analytics: "3",
			PrevDay:   "h",
			NextDay:   "l",
			Refresh:   "r",
			Help:      "?",
			Quit:      "q",
		},
		repo:      repo,
		timeout:   cfg.RequestTimeout,
		now:       time.Now,
		uiDensity: cfg.UIDensity,
	}
	if m.timeout <= 0 {
		m.timeout = config.Default().RequestTimeout
	}
	if m.uiDensity < 1 || m.uiDensity > 3 {
		m.uiDensity = 1
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.Session.Day = model.Today(m.now())
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}
