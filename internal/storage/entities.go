package storage

import "time"

type Task struct {
	ID          string
	Title       string
	Description string
	Day         string
	Category    string
	StartTime   string
	EndTime     string
	Priority    string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TaskListFilter struct {
	Day    string
	Limit  int
	Offset int
}
