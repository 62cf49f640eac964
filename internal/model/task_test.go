package model

import (
	"errors"
	"testing"
	"time"
)

func validNewTask() NewTask {
	return NewTask{
		Title:     "Write weekly report",
		Day:       Monday,
		Category:  CategoryWork,
		StartTime: "09:00",
		EndTime:   "10:30",
		Priority:  PriorityHigh,
	}
}

func TestNewTaskValidateSuccess(t *testing.T) {
	if err := validNewTask().Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestNewTaskValidateRequiredFields(t *testing.T) {
	in := validNewTask()
	in.Title = "   "
	if err := in.Validate(); err == nil || !errors.Is(err, ErrInvalidTask) {
		t.Fatalf("expected ErrInvalidTask for blank title, got: %v", err)
	}

	in = validNewTask()
	in.Day = Day("Funday")
	if err := in.Validate(); err == nil || !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got: %v", err)
	}

	in = validNewTask()
	in.Priority = Priority("urgent")
	if err := in.Validate(); err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}

	in = validNewTask()
	in.StartTime = ""
	if err := in.Validate(); err == nil || !errors.Is(err, ErrInvalidTask) {
		t.Fatalf("expected ErrInvalidTask for missing start, got: %v", err)
	}
}

func TestNewTaskValidateTimeRange(t *testing.T) {
	in := validNewTask()
	in.StartTime = "10:00"
	in.EndTime = "09:00"
	err := in.Validate()
	if err == nil || !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange for end before start, got: %v", err)
	}
	if errors.Is(err, ErrData) {
		t.Fatalf("creation errors must not be data errors: %v", err)
	}

	in.EndTime = "10:00"
	if err := in.Validate(); err == nil || !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange for zero-length task, got: %v", err)
	}
}

func TestNewTaskNormalizeDefaultsPriority(t *testing.T) {
	in := NewTask{Title: "  Lunch ", Day: " Monday", Category: "Meal", StartTime: "12:00 ", EndTime: "13:00"}
	got := in.Normalize()
	if got.Priority != PriorityMedium {
		t.Fatalf("expected default priority medium, got %q", got.Priority)
	}
	if got.Title != "Lunch" || got.Day != Monday || got.Category != CategoryMeal || got.StartTime != "12:00" {
		t.Fatalf("unexpected normalized task: %+v", got)
	}
}

func TestTaskPatchApply(t *testing.T) {
	task := validNewTask().Task("task-1")
	if task.Completed {
		t.Fatal("new tasks must start incomplete")
	}
	patch := CompletedPatch(true)
	if patch.IsEmpty() {
		t.Fatal("completed patch must not be empty")
	}
	got := patch.Apply(task)
	if !got.Completed || got.Title != task.Title {
		t.Fatalf("unexpected patched task: %+v", got)
	}
	if !(TaskPatch{}).IsEmpty() {
		t.Fatal("zero patch must be empty")
	}
}

func TestCategoryColorFallback(t *testing.T) {
	if CategoryWork.Color() != "#4299e1" {
		t.Fatalf("unexpected work color: %s", CategoryWork.Color())
	}
	if got := Category("unknown-category").Color(); got != FallbackColor {
		t.Fatalf("expected fallback color, got %s", got)
	}
	if Category("").IsKnown() {
		t.Fatal("empty category must not be known")
	}
}

func TestDayOrderAndNavigation(t *testing.T) {
	days := Days()
	if len(days) != 7 || days[0] != Monday || days[6] != Sunday {
		t.Fatalf("unexpected canonical order: %v", days)
	}
	days[0] = Sunday
	if Days()[0] != Monday {
		t.Fatal("Days must return a copy")
	}
	if Sunday.Next() != Monday || Monday.Prev() != Sunday {
		t.Fatal("expected week navigation to wrap")
	}
	if Day("x").Index() != -1 {
		t.Fatal("expected -1 index for unknown day")
	}
}

func TestParseDay(t *testing.T) {
	cases := map[string]Day{
		"monday":   Monday,
		"FRIDAY":   Friday,
		" sun ":    Sunday,
		"Wed":      Wednesday,
		"sAturday": Saturday,
	}
	for in, want := range cases {
		got, err := ParseDay(in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseDay("someday"); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
}

func TestTodayMapsWeekday(t *testing.T) {
	sunday := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	if Today(sunday) != Sunday || Today(monday) != Monday {
		t.Fatalf("unexpected weekday mapping: %s %s", Today(sunday), Today(monday))
	}
}
