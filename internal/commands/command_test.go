package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/weekplan/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add monday 09:00-10:30 work high Write report", TypeAdd},
		{"toggle selected", TypeToggle},
		{"delete 3f2a", TypeDelete},
		{"day fri", TypeDay},
		{"show timetable", TypeShow},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddFields(t *testing.T) {
	cmd, err := Parse("/add Tue 18:00-19:15 exercise low Evening run")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got := cmd.Add.Task
	want := model.NewTask{
		Title:     "Evening run",
		Day:       model.Tuesday,
		Category:  model.CategoryExercise,
		StartTime: "18:00",
		EndTime:   "19:15",
		Priority:  model.PriorityLow,
	}
	if got != want {
		t.Fatalf("add task = %+v, want %+v", got, want)
	}

	cmd, err = Parse("add sunday 08:00-09:00 meal brunch")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Task.Priority != model.PriorityMedium || cmd.Add.Task.Title != "brunch" {
		t.Fatalf("expected default priority and title, got %+v", cmd.Add.Task)
	}

	cmd, err = Parse("add sunday 08:00-09:00 meal high")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Task.Title != "high" {
		t.Fatalf("a lone trailing word is the title, got %+v", cmd.Add.Task)
	}
}

func TestParseAddDescription(t *testing.T) {
	cmd, err := Parse("add fri 14:00-15:00 study high Read paper -- chapter 3 and notes")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got := cmd.Add.Task
	if got.Title != "Read paper" || got.Description != "chapter 3 and notes" || got.Priority != model.PriorityHigh {
		t.Fatalf("unexpected task: %+v", got)
	}

	cmd, err = Parse("add fri 14:00-15:00 study Read paper --")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Task.Title != "Read paper" || cmd.Add.Task.Description != "" {
		t.Fatalf("expected empty description, got %+v", cmd.Add.Task)
	}

	if _, err := Parse("add fri 14:00-15:00 study -- only a description"); err == nil {
		t.Fatal("expected missing title error")
	}
}

func TestParseAddRejectsBadInput(t *testing.T) {
	for _, in := range []string{
		"add monday",
		"add someday 09:00-10:00 work title",
		"add monday 09:00 work title",
		"add monday 10:00-09:00 work title",
		"add monday 9am-10am work title",
	} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseTargetsAndShow(t *testing.T) {
	cmd, err := Parse("toggle SELECTED")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Toggle.Target != TargetSelected {
		t.Fatalf("expected selected target, got %q", cmd.Toggle.Target)
	}
	if _, err := Parse("delete"); err == nil {
		t.Fatal("expected error for delete without target")
	}
	if _, err := Parse("show everything"); err == nil {
		t.Fatal("expected error for unknown show subject")
	}
	cmd, err = Parse("day SUNDAY")
	if err != nil || cmd.Day.Day != model.Sunday {
		t.Fatalf("unexpected day command: %+v %v", cmd, err)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}

	_, err = Parse(" / ")
	if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty input error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/day wed")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Day: func(a DayArgs) (Result, error) {
			called = true
			if a.Day != model.Wednesday {
				t.Fatalf("unexpected day: %q", a.Day)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("show analytics")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
