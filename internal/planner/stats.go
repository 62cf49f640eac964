package planner

import "github.com/sandeepkv93/weekplan/internal/model"

type Stats struct {
	Total      int
	Completed  int
	Percentage int
}

// ComputeStats summarizes tasks the caller already filtered to one day.
func ComputeStats(tasks []model.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			s.Completed++
		}
	}
	s.Percentage = Percentage(s.Completed, s.Total)
	return s
}
