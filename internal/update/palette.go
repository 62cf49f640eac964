package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/weekplan/internal/commands"
	"github.com/sandeepkv93/weekplan/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var next tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			next = m.createTask(a.Task)
			msg := fmt.Sprintf("adding %q on %s", a.Task.Title, a.Task.Day)
			if !a.Task.Category.IsKnown() {
				msg += fmt.Sprintf(" (unknown category %q)", a.Task.Category)
			}
			return commands.Result{Message: msg}, nil
		},
		Toggle: func(a commands.TargetArgs) (commands.Result, error) {
			task, err := m.resolveTarget(a.Target)
			if err != nil {
				return commands.Result{}, err
			}
			next = m.toggleTask(task)
			return commands.Result{Message: fmt.Sprintf("toggling %q", task.Title)}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			task, err := m.resolveTarget(a.Target)
			if err != nil {
				return commands.Result{}, err
			}
			next = m.deleteTask(task.ID)
			return commands.Result{Message: fmt.Sprintf("deleting %q", task.Title)}, nil
		},
		Day: func(a commands.DayArgs) (commands.Result, error) {
			m, next = m.selectDay(a.Day)
			m.CurrentView = ViewDashboard
			return commands.Result{Message: fmt.Sprintf("day: %s", a.Day)}, nil
		},
		Show: func(a commands.ShowArgs) (commands.Result, error) {
			switch a.Subject {
			case "timetable":
				m.CurrentView = ViewTimetable
			case "analytics":
				m.CurrentView = ViewAnalytics
			default:
				m.CurrentView = ViewDashboard
			}
			return commands.Result{Message: fmt.Sprintf("show %s", a.Subject)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	m.notify("Command", res.Message, "info")
	return m, next
}

// resolveTarget maps "selected" to the cursor task and anything else to a
// task id known to the session.
func (m Model) resolveTarget(target string) (model.Task, error) {
	if target == commands.TargetSelected {
		task, ok := m.selectedTask()
		if !ok {
			return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
		}
		return task, nil
	}
	task, ok := m.findTask(target)
	if !ok {
		return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown task id: %s", target)}
	}
	return task, nil
}
