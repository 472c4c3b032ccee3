// Package client is a typed HTTP client for the MindDock /api surface.
package client

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

	"minddock/internal/dto"

	"github.com/google/uuid"
)

// APIError is any non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("minddock api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("minddock api: %d %s", e.StatusCode, e.Message)
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool   { return statusOf(err) == http.StatusNotFound }
func IsConflict(err error) bool   { return statusOf(err) == http.StatusConflict }
func IsValidation(err error) bool { return statusOf(err) == http.StatusBadRequest }

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024)); len(raw) > 0 {
			if json.Unmarshal(raw, &errBody) == nil {
				apiErr.Message = errBody.Message
			}
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// Ping probes /api/health. Any error means the backend is unreachable.
func (c *Client) Ping(ctx context.Context) error {
	var res dto.HealthResponse
	return c.do(ctx, http.MethodGet, "/api/health", nil, &res)
}

func (c *Client) Capture(ctx context.Context, text string) (*dto.CaptureResponse, error) {
	var res dto.CaptureResponse
	if err := c.do(ctx, http.MethodPost, "/api/capture", dto.CaptureRequest{Text: text}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Tasks

func (c *Client) ListTasks(ctx context.Context) ([]*dto.TaskResponse, error) {
	return c.ListTasksByStatus(ctx, "")
}

// ListTasksByStatus lists the tasks in one status, or every task when status
// is empty.
func (c *Client) ListTasksByStatus(ctx context.Context, status string) ([]*dto.TaskResponse, error) {
	path := "/api/tasks"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}
	var res []*dto.TaskResponse
	return res, c.do(ctx, http.MethodGet, path, nil, &res)
}

func (c *Client) GetTask(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error) {
	var res dto.TaskResponse
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+id.String(), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateTask(ctx context.Context, title string) (*dto.TaskResponse, error) {
	var res dto.TaskResponse
	if err := c.do(ctx, http.MethodPost, "/api/tasks", dto.CreateTaskRequest{Title: title}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status string) (*dto.TaskResponse, error) {
	var res dto.TaskResponse
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id.String(), dto.UpdateTaskRequest{Status: status}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Notes

func (c *Client) ListNotes(ctx context.Context) ([]*dto.NoteResponse, error) {
	var res []*dto.NoteResponse
	return res, c.do(ctx, http.MethodGet, "/api/notes", nil, &res)
}

func (c *Client) GetNote(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	var res dto.NoteResponse
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+id.String(), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateNote(ctx context.Context, title, content string) (*dto.NoteResponse, error) {
	var res dto.NoteResponse
	req := dto.CreateNoteRequest{Title: title, Content: &content}
	if err := c.do(ctx, http.MethodPost, "/api/notes", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateNote(ctx context.Context, id uuid.UUID, title, content string) (*dto.NoteResponse, error) {
	var res dto.NoteResponse
	req := dto.UpdateNoteRequest{Title: &title, Content: &content}
	if err := c.do(ctx, http.MethodPut, "/api/notes/"+id.String(), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+id.String(), nil, nil)
}

// Daily logs

func (c *Client) ListDailyLogs(ctx context.Context) ([]*dto.DailyLogResponse, error) {
	var res []*dto.DailyLogResponse
	return res, c.do(ctx, http.MethodGet, "/api/dailylogs", nil, &res)
}

// GetDailyLog takes a YYYY-MM-DD date.
func (c *Client) GetDailyLog(ctx context.Context, date string) (*dto.DailyLogResponse, error) {
	var res dto.DailyLogResponse
	if err := c.do(ctx, http.MethodGet, "/api/dailylogs/"+url.PathEscape(date), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateDailyLog(ctx context.Context, req dto.CreateDailyLogRequest) (*dto.DailyLogResponse, error) {
	var res dto.DailyLogResponse
	if err := c.do(ctx, http.MethodPost, "/api/dailylogs", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateDailyLog(ctx context.Context, id uuid.UUID, req dto.UpdateDailyLogRequest) (*dto.DailyLogResponse, error) {
	var res dto.DailyLogResponse
	if err := c.do(ctx, http.MethodPut, "/api/dailylogs/"+id.String(), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Whiteboard folders

func (c *Client) ListFolders(ctx context.Context) ([]*dto.WhiteboardFolderResponse, error) {
	var res []*dto.WhiteboardFolderResponse
	return res, c.do(ctx, http.MethodGet, "/api/whiteboardfolders", nil, &res)
}

func (c *Client) GetFolder(ctx context.Context, id uuid.UUID) (*dto.WhiteboardFolderResponse, error) {
	var res dto.WhiteboardFolderResponse
	if err := c.do(ctx, http.MethodGet, "/api/whiteboardfolders/"+id.String(), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateFolder(ctx context.Context, name string) (*dto.WhiteboardFolderResponse, error) {
	var res dto.WhiteboardFolderResponse
	if err := c.do(ctx, http.MethodPost, "/api/whiteboardfolders", dto.CreateWhiteboardFolderRequest{Name: name}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RenameFolder(ctx context.Context, id uuid.UUID, name string) (*dto.WhiteboardFolderResponse, error) {
	var res dto.WhiteboardFolderResponse
	if err := c.do(ctx, http.MethodPut, "/api/whiteboardfolders/"+id.String(), dto.UpdateWhiteboardFolderRequest{Name: name}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteFolder(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/whiteboardfolders/"+id.String(), nil, nil)
}

// Whiteboards

func (c *Client) ListWhiteboards(ctx context.Context) ([]*dto.WhiteboardResponse, error) {
	var res []*dto.WhiteboardResponse
	return res, c.do(ctx, http.MethodGet, "/api/whiteboards", nil, &res)
}

func (c *Client) GetWhiteboard(ctx context.Context, id uuid.UUID) (*dto.WhiteboardResponse, error) {
	var res dto.WhiteboardResponse
	if err := c.do(ctx, http.MethodGet, "/api/whiteboards/"+id.String(), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateWhiteboard(ctx context.Context, req dto.CreateWhiteboardRequest) (*dto.WhiteboardResponse, error) {
	var res dto.WhiteboardResponse
	if err := c.do(ctx, http.MethodPost, "/api/whiteboards", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateWhiteboard(ctx context.Context, id uuid.UUID, req dto.UpdateWhiteboardRequest) (*dto.WhiteboardResponse, error) {
	var res dto.WhiteboardResponse
	if err := c.do(ctx, http.MethodPut, "/api/whiteboards/"+id.String(), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteWhiteboard(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/whiteboards/"+id.String(), nil, nil)
}
