package update

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/weekplan/internal/model"
	"github.com/sandeepkv93/weekplan/internal/taskapi"
)

func (m Model) callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

func (m Model) loadDayCmd(day model.Day) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		ctx, cancel := m.callContext()
		defer cancel()
		tasks, err := repo.ListTasks(ctx, taskapi.ListFilter{Day: day})
		if err != nil {
			return AppErrorMsg{Op: "load " + string(day), Err: err}
		}
		return TasksLoadedMsg{Day: day, Tasks: tasks}
	}
}

func (m Model) loadAllCmd() tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		ctx, cancel := m.callContext()
		defer cancel()
		tasks, err := repo.ListTasks(ctx, taskapi.ListFilter{})
		if err != nil {
			return AppErrorMsg{Op: "load week", Err: err}
		}
		return AllTasksLoadedMsg{Tasks: tasks}
	}
}

// loadSummaryCmd asks the store for the summary and derives it from the task
// list when the store has no summary route.
func (m Model) loadSummaryCmd() tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		ctx, cancel := m.callContext()
		defer cancel()
		summary, err := repo.Summary(ctx)
		if errors.Is(err, taskapi.ErrNotFound) {
			summary, err = taskapi.SummaryFromTasks(ctx, repo)
		}
		if err != nil {
			return AppErrorMsg{Op: "load summary", Err: err}
		}
		return SummaryLoadedMsg{Summary: summary}
	}
}

// refresh re-fetches the day list, the week and the summary.
func (m *Model) refresh() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	m.Pending += 3
	return tea.Batch(m.loadDayCmd(m.Session.Day), m.loadAllCmd(), m.loadSummaryCmd(), m.syncSpinner.Tick)
}

func (m *Model) loadDay(day model.Day) tea.Cmd {
	if m.repo == nil {
		return nil
	}
	m.Pending++
	return tea.Batch(m.loadDayCmd(day), m.syncSpinner.Tick)
}

func (m *Model) createTask(in model.NewTask) tea.Cmd {
	if m.repo == nil {
		return nil
	}
	m.Pending++
	repo := m.repo
	ctxFn := m.callContext
	return tea.Batch(func() tea.Msg {
		ctx, cancel := ctxFn()
		defer cancel()
		task, err := repo.CreateTask(ctx, in)
		if err != nil {
			return AppErrorMsg{Op: "create task", Err: err}
		}
		return TaskCreatedMsg{Task: task}
	}, m.syncSpinner.Tick)
}

func (m *Model) toggleTask(task model.Task) tea.Cmd {
	if m.repo == nil {
		return nil
	}
	m.Pending++
	repo := m.repo
	ctxFn := m.callContext
	return tea.Batch(func() tea.Msg {
		ctx, cancel := ctxFn()
		defer cancel()
		updated, err := taskapi.ToggleCompleted(ctx, repo, task)
		if err != nil {
			return AppErrorMsg{Op: "toggle task", Err: err}
		}
		return TaskUpdatedMsg{Task: updated}
	}, m.syncSpinner.Tick)
}

func (m *Model) deleteTask(id string) tea.Cmd {
	if m.repo == nil {
		return nil
	}
	m.Pending++
	repo := m.repo
	ctxFn := m.callContext
	return tea.Batch(func() tea.Msg {
		ctx, cancel := ctxFn()
		defer cancel()
		if err := repo.DeleteTask(ctx, id); err != nil {
			return AppErrorMsg{Op: "delete task", Err: err}
		}
		return TaskDeletedMsg{ID: id}
	}, m.syncSpinner.Tick)
}

func (m *Model) settle() {
	if m.Pending > 0 {
		m.Pending--
	}
}
