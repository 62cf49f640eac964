package taskapi

import (
	"context"

	"github.com/sandeepkv93/weekplan/internal/model"
	"github.com/sandeepkv93/weekplan/internal/planner"
)

type ListFilter struct {
	// Day restricts the listing to one weekday when set.
	Day model.Day
}

// Repository is the contract with the remote task store. Implementations do
// network I/O only and keep no cache.
type Repository interface {
	ListTasks(ctx context.Context, filter ListFilter) ([]model.Task, error)
	CreateTask(ctx context.Context, in model.NewTask) (model.Task, error)
	UpdateTask(ctx context.Context, id string, patch model.TaskPatch) error
	DeleteTask(ctx context.Context, id string) error
	Summary(ctx context.Context) ([]model.DaySummary, error)
}

// ToggleCompleted flips the completion flag of task in the store and returns
// the task as it now stands.
func ToggleCompleted(ctx context.Context, repo Repository, task model.Task) (model.Task, error) {
	patch := model.CompletedPatch(!task.Completed)
	if err := repo.UpdateTask(ctx, task.ID, patch); err != nil {
		return task, err
	}
	return patch.Apply(task), nil
}

// SummaryFromTasks derives the per-day summary client side from the full list.
func SummaryFromTasks(ctx context.Context, repo Repository) ([]model.DaySummary, error) {
	tasks, err := repo.ListTasks(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}
	return planner.Summarize(tasks), nil
}
