package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/weekplan/internal/model"
	"github.com/sandeepkv93/weekplan/internal/views"
)

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "", Width: 3},
		{Title: "Time", Width: 19},
		{Title: "Title", Width: 20},
		{Title: "Category", Width: 9},
		{Title: "Pri", Width: 4},
	}
	m.taskTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.syncSpinner = spinner.New()
	m.syncSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.detailsViewport = viewport.New(56, 12)
}

// syncBubbleData pushes session state into the widgets.
func (m *Model) syncBubbleData() {
	tableHeight, viewportHeight := densityDimensions(m.uiDensity)
	m.taskTable.SetHeight(tableHeight)
	m.detailsViewport.Height = viewportHeight

	rows := make([]table.Row, 0, len(m.Session.Tasks))
	for _, task := range m.Session.Tasks {
		check := "[ ]"
		if task.Completed {
			check = "[x]"
		}
		rows = append(rows, table.Row{check, views.TimeSpan(task), task.Title, string(task.Category), views.PriorityBadge(task.Priority)})
	}
	m.taskTable.SetRows(rows)
	m.clampCursor()
	if len(rows) > 0 {
		m.taskTable.SetCursor(m.Cursor)
	}

	if task, ok := m.selectedTask(); ok {
		m.SelectedTaskID = task.ID
		m.detailsViewport.SetContent(views.RenderTaskDetails(&task))
	} else {
		m.SelectedTaskID = ""
		m.detailsViewport.SetContent(views.RenderTaskDetails(nil))
	}
}

func densityDimensions(level int) (tableHeight int, viewportHeight int) {
	switch level {
	case 2:
		return 14, 16
	case 3:
		return 18, 20
	default:
		return 10, 12
	}
}

func (m *Model) cycleDensity() {
	m.uiDensity++
	if m.uiDensity > 3 {
		m.uiDensity = 1
	}
	m.Status = StatusBar{Text: fmt.Sprintf("density level: %d", m.uiDensity)}
}

func (m *Model) clampCursor() {
	if m.Cursor >= len(m.Session.Tasks) {
		m.Cursor = len(m.Session.Tasks) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) selectedTask() (model.Task, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Session.Tasks) {
		return model.Task{}, false
	}
	return m.Session.Tasks[m.Cursor], true
}

// findTask looks a task up by id in the day list first, then the week.
func (m Model) findTask(id string) (model.Task, bool) {
	for _, task := range m.Session.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	for _, task := range m.Session.AllTasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}
