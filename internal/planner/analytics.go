package planner

import (
	"math"

	"github.com/sandeepkv93/weekplan/internal/model"
)

// Percentage is round(completed/total*100) with ties away from zero, and 0
// for an empty day.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Summarize returns one summary per canonical day, Monday first, including
// days without tasks. Tasks on unknown days are ignored.
func Summarize(tasks []model.Task) []model.DaySummary {
	days := model.Days()
	out := make([]model.DaySummary, len(days))
	for i, day := range days {
		out[i].Day = day
	}
	for _, task := range tasks {
		idx := task.Day.Index()
		if idx < 0 {
			continue
		}
		out[idx].Total++
		if task.Completed {
			out[idx].Completed++
		}
	}
	for i := range out {
		out[i].Percentage = Percentage(out[i].Completed, out[i].Total)
	}
	return out
}

// WeekTotals folds the day summaries into a single week aggregate.
func WeekTotals(summary []model.DaySummary) Stats {
	var s Stats
	for _, day := range summary {
		s.Total += day.Total
		s.Completed += day.Completed
	}
	s.Percentage = Percentage(s.Completed, s.Total)
	return s
}
