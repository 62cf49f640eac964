package planner

import (
	"fmt"

	"github.com/sandeepkv93/weekplan/internal/model"
)

// The timetable covers 06:00 through the 22:00 slot.
const (
	FirstHour = 6
	LastHour  = 22
	HourSlots = LastHour - FirstHour + 1
)

// Slot addresses one timetable cell.
type Slot struct {
	Day  model.Day
	Hour int
}

// Entry is a task placed in the cell containing its start time.
type Entry struct {
	Task     model.Task
	Duration float64
	Color    string
}

// Timetable maps every (day, hour) of the week grid to the tasks that start
// in it. Every key is present, empty cells hold an empty slice.
type Timetable struct {
	cells map[Slot][]Entry
}

// Hours returns the hour slots in ascending order.
func Hours() []int {
	out := make([]int, 0, HourSlots)
	for h := FirstHour; h <= LastHour; h++ {
		out = append(out, h)
	}
	return out
}

// BuildTimetable buckets tasks by day and start hour. A task occupies a single
// cell however long it runs; its Duration conveys the span. Cell order follows
// input order.
func BuildTimetable(tasks []model.Task) (Timetable, error) {
	grid := Timetable{cells: make(map[Slot][]Entry, len(model.Days())*HourSlots)}
	for _, day := range model.Days() {
		for _, hour := range Hours() {
			grid.cells[Slot{Day: day, Hour: hour}] = []Entry{}
		}
	}

	for _, task := range tasks {
		entry, err := newEntry(task)
		if err != nil {
			return Timetable{}, err
		}
		start, _ := task.Start()
		slot := Slot{Day: task.Day, Hour: start.Hour()}
		cell, ok := grid.cells[slot]
		if !ok {
			continue
		}
		grid.cells[slot] = append(cell, entry)
	}
	return grid, nil
}

func newEntry(task model.Task) (Entry, error) {
	start, err := task.Start()
	if err != nil {
		return Entry{}, fmt.Errorf("task %s start: %w", task.ID, err)
	}
	end, err := task.End()
	if err != nil {
		return Entry{}, fmt.Errorf("task %s end: %w", task.ID, err)
	}
	duration := start.HoursUntil(end)
	if duration < 0 {
		return Entry{}, fmt.Errorf("task %s %s-%s: %w", task.ID, task.StartTime, task.EndTime, model.ErrNegativeDuration)
	}
	return Entry{
		Task:     task,
		Duration: duration,
		Color:    task.Category.Color(),
	}, nil
}

// Cell returns the entries of one cell, or nil for a slot outside the grid.
func (t Timetable) Cell(day model.Day, hour int) []Entry {
	return t.cells[Slot{Day: day, Hour: hour}]
}

// Has reports whether the slot is part of the grid.
func (t Timetable) Has(day model.Day, hour int) bool {
	_, ok := t.cells[Slot{Day: day, Hour: hour}]
	return ok
}

func (t Timetable) Len() int {
	return len(t.cells)
}

// Keys lists every slot day-major in canonical order.
func (t Timetable) Keys() []Slot {
	out := make([]Slot, 0, len(t.cells))
	for _, day := range model.Days() {
		for _, hour := range Hours() {
			if _, ok := t.cells[Slot{Day: day, Hour: hour}]; ok {
				out = append(out, Slot{Day: day, Hour: hour})
			}
		}
	}
	return out
}

// Count is the number of placed entries.
func (t Timetable) Count() int {
	n := 0
	for _, cell := range t.cells {
		n += len(cell)
	}
	return n
}
