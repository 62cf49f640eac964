package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/sandeepkv93/weekplan/internal/model"
	"github.com/sandeepkv93/weekplan/internal/planner"
	"github.com/sandeepkv93/weekplan/internal/storage"
	"github.com/sandeepkv93/weekplan/internal/taskapi"
)

const maxRequestBody = 1 << 20

// Server is the reference task store: the REST routes the client expects,
// persisted through a storage.Repository.
type Server struct {
	repo   storage.Repository
	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

func New(repo storage.Repository, logger *log.Logger) (*Server, error) {
	if repo == nil {
		return nil, errors.New("server: nil repository")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}, nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("GET /api/tasks/{day}", s.handleListDayTasks)
	mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	mux.HandleFunc("PUT /api/tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	return s.logRequests(allowCORS(mux))
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("task store listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	s.listTasks(w, r, storage.TaskListFilter{})
}

func (s *Server) handleListDayTasks(w http.ResponseWriter, r *http.Request) {
	day, err := model.ParseDay(r.PathValue("day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.listTasks(w, r, storage.TaskListFilter{Day: string(day)})
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request, filter storage.TaskListFilter) {
	var err error
	if filter.Limit, err = queryInt(r, "limit"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Offset, err = queryInt(r, "offset"); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tasks, err := s.repo.ListTasks(r.Context(), filter)
	if err != nil {
		s.internalError(w, "list tasks", err)
		return
	}
	out := make([]taskapi.TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskapi.RecordFromTask(toModel(t)))
	}
	writeJSON(w, http.StatusOK, out)
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer: %q", name, raw)
	}
	return n, nil
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var rec taskapi.NewTaskRecord
	if err := decodeBody(w, r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	in := rec.NewTask().Normalize()
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task := in.Task(s.newID())
	now := s.now()
	if err := s.repo.CreateTask(r.Context(), fromModel(task, now, now)); err != nil {
		s.internalError(w, "create task", err)
		return
	}
	writeJSON(w, http.StatusCreated, taskapi.RecordFromTask(task))
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var rec taskapi.PatchRecord
	if err := decodeBody(w, r, &rec); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	patch := rec.Patch()
	if patch.IsEmpty() {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	stored, err := s.repo.GetTask(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("task %s not found", id))
		return
	}
	if err != nil {
		s.internalError(w, "get task", err)
		return
	}

	next := patch.Apply(toModel(stored))
	fields := next.Fields().Normalize()
	if err := fields.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated := fields.Task(next.ID)
	updated.Completed = next.Completed

	err = s.repo.UpdateTask(r.Context(), fromModel(updated, stored.CreatedAt, s.now()))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("task %s not found", id))
		return
	}
	if err != nil {
		s.internalError(w, "update task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := s.repo.DeleteTask(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("task %s not found", id))
		return
	}
	if err != nil {
		s.internalError(w, "delete task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.repo.ListTasks(r.Context(), storage.TaskListFilter{})
	if err != nil {
		s.internalError(w, "summary", err)
		return
	}
	all := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		all = append(all, toModel(t))
	}
	summary := planner.Summarize(all)
	out := make([]taskapi.SummaryRecord, 0, len(summary))
	for _, day := range summary {
		out = append(out, taskapi.RecordFromSummary(day))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Printf("%s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		s.logger.Printf("%s %s %d %s", r.Method, r.URL.Path, m.Code, m.Duration.Round(time.Microsecond))
	})
}

func allowCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid json body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, taskapi.ErrorRecord{Error: strings.TrimSpace(msg)})
}

func toModel(t storage.Task) model.Task {
	return model.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Day:         model.Day(t.Day),
		Category:    model.Category(t.Category),
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Priority:    model.Priority(t.Priority),
		Completed:   t.Completed,
	}
}

func fromModel(t model.Task, created, updated time.Time) storage.Task {
	return storage.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Day:         string(t.Day),
		Category:    string(t.Category),
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Priority:    string(t.Priority),
		Completed:   t.Completed,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}
