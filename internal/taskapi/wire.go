package taskapi

import (
	"errors"
	"strings"

	"github.com/sandeepkv93/weekplan/internal/model"
)

// TaskRecord is the wire shape of a task.
type TaskRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         string `json:"day"`
	Category    string `json:"category"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

// NewTaskRecord is the create request body.
type NewTaskRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Day         string `json:"day"`
	Category    string `json:"category"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Priority    string `json:"priority"`
}

// PatchRecord is the update request body; absent fields stay unchanged.
type PatchRecord struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Day         *string `json:"day,omitempty"`
	Category    *string `json:"category,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

type SummaryRecord struct {
	Day        string `json:"day"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

type ErrorRecord struct {
	Error string `json:"error"`
}

var errMissingID = errors.New("task record without id")

func RecordFromTask(t model.Task) TaskRecord {
	return TaskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Day:         string(t.Day),
		Category:    string(t.Category),
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Priority:    string(t.Priority),
		Completed:   t.Completed,
	}
}

func (r TaskRecord) Task() (model.Task, error) {
	if strings.TrimSpace(r.ID) == "" {
		return model.Task{}, errMissingID
	}
	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Day:         model.Day(r.Day),
		Category:    model.Category(r.Category),
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Priority:    model.Priority(r.Priority),
		Completed:   r.Completed,
	}, nil
}

func RecordFromNewTask(n model.NewTask) NewTaskRecord {
	return NewTaskRecord{
		Title:       n.Title,
		Description: n.Description,
		Day:         string(n.Day),
		Category:    string(n.Category),
		StartTime:   n.StartTime,
		EndTime:     n.EndTime,
		Priority:    string(n.Priority),
	}
}

func (r NewTaskRecord) NewTask() model.NewTask {
	return model.NewTask{
		Title:       r.Title,
		Description: r.Description,
		Day:         model.Day(r.Day),
		Category:    model.Category(r.Category),
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Priority:    model.Priority(r.Priority),
	}
}

func RecordFromPatch(p model.TaskPatch) PatchRecord {
	out := PatchRecord{
		Title:       p.Title,
		Description: p.Description,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Completed:   p.Completed,
	}
	if p.Day != nil {
		s := string(*p.Day)
		out.Day = &s
	}
	if p.Category != nil {
		s := string(*p.Category)
		out.Category = &s
	}
	if p.Priority != nil {
		s := string(*p.Priority)
		out.Priority = &s
	}
	return out
}

func (r PatchRecord) Patch() model.TaskPatch {
	out := model.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Completed:   r.Completed,
	}
	if r.Day != nil {
		d := model.Day(*r.Day)
		out.Day = &d
	}
	if r.Category != nil {
		c := model.Category(*r.Category)
		out.Category = &c
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		out.Priority = &p
	}
	return out
}

func RecordFromSummary(s model.DaySummary) SummaryRecord {
	return SummaryRecord{Day: string(s.Day), Total: s.Total, Completed: s.Completed, Percentage: s.Percentage}
}

func (r SummaryRecord) Summary() model.DaySummary {
	return model.DaySummary{Day: model.Day(r.Day), Total: r.Total, Completed: r.Completed, Percentage: r.Percentage}
}
