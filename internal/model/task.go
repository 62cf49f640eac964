package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTask      = errors.New("model: invalid task")
	ErrInvalidDay       = errors.New("model: invalid day")
	ErrInvalidPriority  = errors.New("model: invalid task priority")
	ErrInvalidTimeRange = errors.New("model: end time must be after start time")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type Task struct {
	ID          string
	Title       string
	Description string
	Day         Day
	Category    Category
	StartTime   string
	EndTime     string
	Priority    Priority
	Completed   bool
}

// Start parses StartTime.
func (t Task) Start() (Clock, error) {
	return ParseClock(t.StartTime)
}

// End parses EndTime.
func (t Task) End() (Clock, error) {
	return ParseClock(t.EndTime)
}

// NewTask holds the fields a client sends to create a task. The store assigns
// the id and every new task starts incomplete.
type NewTask struct {
	Title       string
	Description string
	Day         Day
	Category    Category
	StartTime   string
	EndTime     string
	Priority    Priority
}

// Normalize trims text fields and fills the default priority.
func (n NewTask) Normalize() NewTask {
	n.Title = strings.TrimSpace(n.Title)
	n.Description = strings.TrimSpace(n.Description)
	n.Day = Day(strings.TrimSpace(string(n.Day)))
	n.Category = Category(strings.ToLower(strings.TrimSpace(string(n.Category))))
	n.StartTime = strings.TrimSpace(n.StartTime)
	n.EndTime = strings.TrimSpace(n.EndTime)
	n.Priority = Priority(strings.ToLower(strings.TrimSpace(string(n.Priority))))
	if n.Priority == "" {
		n.Priority = PriorityMedium
	}
	return n
}

func (n NewTask) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	if !n.Day.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDay, n.Day)
	}
	if n.Priority != "" && !n.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, n.Priority)
	}
	start, err := ParseClock(n.StartTime)
	if err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidTask, err)
	}
	end, err := ParseClock(n.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidTask, err)
	}
	if end <= start {
		return fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, n.StartTime, n.EndTime)
	}
	return nil
}

// Task builds the stored task for a server-assigned id.
func (n NewTask) Task(id string) Task {
	return Task{
		ID:          id,
		Title:       n.Title,
		Description: n.Description,
		Day:         n.Day,
		Category:    n.Category,
		StartTime:   n.StartTime,
		EndTime:     n.EndTime,
		Priority:    n.Priority,
	}
}

// TaskPatch carries the fields of a partial update. Nil fields are unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Day         *Day
	Category    *Category
	StartTime   *string
	EndTime     *string
	Priority    *Priority
	Completed   *bool
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Day == nil && p.Category == nil &&
		p.StartTime == nil && p.EndTime == nil && p.Priority == nil && p.Completed == nil
}

// Apply returns t with the patch fields set.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Day != nil {
		t.Day = *p.Day
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.StartTime != nil {
		t.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		t.EndTime = *p.EndTime
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

// CompletedPatch is the common update that only sets the completion flag.
func CompletedPatch(done bool) TaskPatch {
	return TaskPatch{Completed: &done}
}

// Fields returns the create fields of an existing task, used to revalidate a
// task after a patch.
func (t Task) Fields() NewTask {
	return NewTask{
		Title:       t.Title,
		Description: t.Description,
		Day:         t.Day,
		Category:    t.Category,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Priority:    t.Priority,
	}
}

// DaySummary is the completion aggregate of one day.
type DaySummary struct {
	Day        Day
	Total      int
	Completed  int
	Percentage int
}
