package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sandeepkv93/weekplan/internal/model"
)

const DefaultTimeout = 10 * time.Second

// maxBody caps how much of a response is read.
const maxBody = 4 << 20

// Client talks to the task store REST API rooted at baseURL, e.g.
// "http://localhost:3000/api".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, errors.New("taskapi: base url is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("taskapi: invalid base url: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *Client) ListTasks(ctx context.Context, filter ListFilter) ([]model.Task, error) {
	const op = "list tasks"
	path := "/tasks"
	if filter.Day != "" {
		path += "/" + url.PathEscape(string(filter.Day))
	}
	var records []TaskRecord
	if err := c.do(ctx, op, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(records))
	for _, rec := range records {
		task, err := rec.Task()
		if err != nil {
			return nil, decodeErr(op, err)
		}
		out = append(out, task)
	}
	return out, nil
}

func (c *Client) CreateTask(ctx context.Context, in model.NewTask) (model.Task, error) {
	const op = "create task"
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return model.Task{}, validationErr(op, err)
	}
	var rec TaskRecord
	if err := c.do(ctx, op, http.MethodPost, "/tasks", RecordFromNewTask(in), &rec); err != nil {
		return model.Task{}, err
	}
	task, err := rec.Task()
	if err != nil {
		return model.Task{}, decodeErr(op, err)
	}
	return task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) error {
	const op = "update task"
	if strings.TrimSpace(id) == "" {
		return validationErr(op, errors.New("task id is required"))
	}
	if patch.IsEmpty() {
		return validationErr(op, errors.New("no fields to update"))
	}
	return c.do(ctx, op, http.MethodPut, "/tasks/"+url.PathEscape(id), RecordFromPatch(patch), nil)
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	const op = "delete task"
	if strings.TrimSpace(id) == "" {
		return validationErr(op, errors.New("task id is required"))
	}
	return c.do(ctx, op, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Summary(ctx context.Context) ([]model.DaySummary, error) {
	var records []SummaryRecord
	if err := c.do(ctx, "summary", http.MethodGet, "/summary", nil, &records); err != nil {
		return nil, err
	}
	out := make([]model.DaySummary, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Summary())
	}
	return out, nil
}

// do sends body as JSON when non-nil and decodes a 2xx answer into out when
// out is non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return transportErr(op, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return transportErr(op, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return statusErr(op, res.StatusCode, errorMessage(raw))
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return decodeErr(op, errors.New("empty body"))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return decodeErr(op, err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var rec ErrorRecord
	if err := json.Unmarshal(raw, &rec); err == nil && rec.Error != "" {
		return rec.Error
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
