package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/weekplan/internal/model"
	"github.com/sandeepkv93/weekplan/internal/server"
	"github.com/sandeepkv93/weekplan/internal/storage"
	"github.com/sandeepkv93/weekplan/internal/taskapi"
)

func startStore(t *testing.T) string {
	t.Helper()
	repo, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "cli.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	srv, err := server.New(repo, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	base := ts.URL + "/api"
	client, err := taskapi.NewClient(base, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	for _, in := range []model.NewTask{
		{Title: "Deep work", Day: model.Tuesday, Category: model.CategoryWork, StartTime: "09:00", EndTime: "11:00", Priority: model.PriorityHigh},
		{Title: "Swim", Day: model.Tuesday, Category: model.CategoryExercise, StartTime: "07:00", EndTime: "08:00"},
	} {
		if _, err := client.CreateTask(context.Background(), in); err != nil {
			t.Fatalf("seed task: %v", err)
		}
	}
	return base
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTodayPrintsDayTasks(t *testing.T) {
	base := startStore(t)
	out, err := runCLI(t, "--api-url", base, "today", "tue")
	if err != nil {
		t.Fatalf("today failed: %v", err)
	}
	for _, want := range []string{"Tuesday", "total: 2", "9:00 AM - 11:00 AM", "Swim"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestTodayRejectsUnknownDay(t *testing.T) {
	base := startStore(t)
	if _, err := runCLI(t, "--api-url", base, "today", "someday"); err == nil {
		t.Fatal("expected error for unknown day")
	}
}

func TestSummaryAndTimetable(t *testing.T) {
	base := startStore(t)
	out, err := runCLI(t, "--api-url", base, "summary")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if !strings.Contains(out, "week: 0/2 completed (0%)") {
		t.Fatalf("unexpected summary output:\n%s", out)
	}

	out, err = runCLI(t, "--api-url", base, "timetable")
	if err != nil {
		t.Fatalf("timetable failed: %v", err)
	}
	if !strings.Contains(out, "Swim") || !strings.Contains(out, "7:00 AM") {
		t.Fatalf("unexpected timetable output:\n%s", out)
	}
}

func TestUnreachableStoreFails(t *testing.T) {
	if _, err := runCLI(t, "--api-url", "http://127.0.0.1:1/api", "--timeout", "200ms", "summary"); err == nil {
		t.Fatal("expected transport error")
	}
}
