package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "weekplan-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func parseRFC3339(t *testing.T, value string) time.Time {
	t.Helper()
	out, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return out
}

func TestTaskCRUDAndList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := parseRFC3339(t, "2026-02-09T12:00:00Z")

	task := Task{
		ID:          "task-1",
		Title:       "Write schema",
		Description: "Design storage layout",
		Day:         "Monday",
		Category:    "work",
		StartTime:   "09:00",
		EndTime:     "10:30",
		Priority:    "high",
		CreatedAt:   created,
	}
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	got, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Title != task.Title || got.Day != "Monday" || got.Completed {
		t.Fatalf("unexpected task get result: %#v", got)
	}
	if !got.UpdatedAt.Equal(created) {
		t.Fatalf("expected updated_at to default to created_at, got %v", got.UpdatedAt)
	}

	task.Title = "Write schema v2"
	task.Day = "Tuesday"
	task.Completed = true
	task.UpdatedAt = created.Add(time.Hour)
	if err := repo.UpdateTask(ctx, task); err != nil {
		t.Fatalf("update task: %v", err)
	}

	tuesday, err := repo.ListTasks(ctx, TaskListFilter{Day: "Tuesday"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tuesday) != 1 || tuesday[0].ID != task.ID || !tuesday[0].Completed {
		t.Fatalf("unexpected tuesday list: %#v", tuesday)
	}

	monday, err := repo.ListTasks(ctx, TaskListFilter{Day: "Monday"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(monday) != 0 {
		t.Fatalf("expected no monday tasks, got %#v", monday)
	}

	if err := repo.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	_, err = repo.GetTask(ctx, task.ID)
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestUpdateAndDeleteUnknownTask(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	now := parseRFC3339(t, "2026-02-09T12:00:00Z")

	err := repo.UpdateTask(ctx, Task{ID: "missing", Title: "x", Day: "Monday", UpdatedAt: now})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on update, got: %v", err)
	}
	if err := repo.DeleteTask(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on delete, got: %v", err)
	}
}

func TestListTasksKeepsInsertionOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	now := parseRFC3339(t, "2026-02-09T12:00:00Z")

	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		if err := repo.CreateTask(ctx, Task{
			ID:        id,
			Title:     "task " + id,
			Day:       "Wednesday",
			StartTime: "09:00",
			EndTime:   "10:00",
			Priority:  "low",
			CreatedAt: now,
		}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	list, err := repo.ListTasks(ctx, TaskListFilter{})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(list))
	}
	for i, id := range ids {
		if list[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, list[i].ID, id)
		}
	}

	page, err := repo.ListTasks(ctx, TaskListFilter{Offset: 1})
	if err != nil {
		t.Fatalf("list with offset: %v", err)
	}
	if len(page) != 2 || page[0].ID != "a" {
		t.Fatalf("unexpected offset page: %#v", page)
	}

	limited, err := repo.ListTasks(ctx, TaskListFilter{Limit: 1, Offset: 2})
	if err != nil {
		t.Fatalf("list with limit: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "b" {
		t.Fatalf("unexpected limited page: %#v", limited)
	}
}

func TestListTasksOrderIgnoresFractionalSeconds(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	stamps := []struct {
		id string
		at string
	}{
		{"first", "2026-02-09T12:00:00Z"},
		{"second", "2026-02-09T12:00:00.5Z"},
		{"third", "2026-02-09T11:59:59.999Z"},
	}
	for _, st := range stamps {
		if err := repo.CreateTask(ctx, Task{
			ID:        st.id,
			Title:     st.id,
			Day:       "Monday",
			StartTime: "09:00",
			EndTime:   "10:00",
			Priority:  "medium",
			CreatedAt: parseRFC3339(t, st.at),
		}); err != nil {
			t.Fatalf("create %s: %v", st.id, err)
		}
	}

	list, err := repo.ListTasks(ctx, TaskListFilter{Day: "Monday"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(list))
	}
	for i, st := range stamps {
		if list[i].ID != st.id {
			t.Fatalf("position %d = %s, want %s", i, list[i].ID, st.id)
		}
	}
	if got := list[1].CreatedAt; !got.Equal(parseRFC3339(t, "2026-02-09T12:00:00.5Z")) {
		t.Fatalf("created_at round trip = %s", got)
	}
}

func TestOpenSQLiteMigrates(t *testing.T) {
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "open.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer repo.Close()

	list, err := repo.ListTasks(context.Background(), TaskListFilter{})
	if err != nil {
		t.Fatalf("list on fresh db: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty store, got %d", len(list))
	}
}
