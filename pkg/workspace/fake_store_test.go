package workspace

import (
	"context"
	"net/http"
	"sync"
	"time"

	"minddock/internal/dto"
	"minddock/pkg/autosave"
	"minddock/pkg/client"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the HTTP client.
type fakeStore struct {
	mu          sync.Mutex
	logs        map[string]*dto.DailyLogResponse
	boards      map[uuid.UUID]*dto.WhiteboardResponse
	tasks       []*dto.TaskResponse
	notes       []*dto.NoteResponse
	failSave    error
	beforeSave  func()
	creates     int
	updates     int
	getLogCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		logs:   make(map[string]*dto.DailyLogResponse),
		boards: make(map[uuid.UUID]*dto.WhiteboardResponse),
	}
}

func notFound(msg string) error {
	return &client.APIError{StatusCode: http.StatusNotFound, Message: msg}
}

func (s *fakeStore) GetDailyLog(_ context.Context, date string) (*dto.DailyLogResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getLogCalls++
	l, ok := s.logs[date]
	if !ok {
		return nil, notFound("daily log not found")
	}
	cp := *l
	return &cp, nil
}

func (s *fakeStore) CreateDailyLog(_ context.Context, req dto.CreateDailyLogRequest) (*dto.DailyLogResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if _, ok := s.logs[req.Date]; ok {
		return nil, &client.APIError{StatusCode: http.StatusConflict, Message: "Log already exists for this date"}
	}
	l := &dto.DailyLogResponse{
		Id:            uuid.New(),
		Date:          req.Date,
		WorkedOn:      *req.WorkedOn,
		Blockers:      *req.Blockers,
		Learned:       *req.Learned,
		TomorrowFocus: *req.TomorrowFocus,
	}
	s.logs[req.Date] = l
	cp := *l
	return &cp, nil
}

func (s *fakeStore) UpdateDailyLog(_ context.Context, id uuid.UUID, req dto.UpdateDailyLogRequest) (*dto.DailyLogResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	for _, l := range s.logs {
		if l.Id == id {
			l.WorkedOn = *req.WorkedOn
			l.Blockers = *req.Blockers
			l.Learned = *req.Learned
			l.TomorrowFocus = *req.TomorrowFocus
			cp := *l
			return &cp, nil
		}
	}
	return nil, notFound("daily log not found")
}

func (s *fakeStore) GetWhiteboard(_ context.Context, id uuid.UUID) (*dto.WhiteboardResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[id]
	if !ok {
		return nil, notFound("whiteboard not found")
	}
	cp := *b
	return &cp, nil
}

func (s *fakeStore) hook() error {
	s.mu.Lock()
	hook, fail := s.beforeSave, s.failSave
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
	return fail
}

func (s *fakeStore) CreateWhiteboard(_ context.Context, req dto.CreateWhiteboardRequest) (*dto.WhiteboardResponse, error) {
	if err := s.hook(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	b := &dto.WhiteboardResponse{
		Id:             uuid.New(),
		Title:          req.Title,
		ExcalidrawJson: req.ExcalidrawJson,
		FolderId:       req.FolderId,
	}
	s.boards[b.Id] = b
	cp := *b
	return &cp, nil
}

func (s *fakeStore) UpdateWhiteboard(_ context.Context, id uuid.UUID, req dto.UpdateWhiteboardRequest) (*dto.WhiteboardResponse, error) {
	if err := s.hook(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	b, ok := s.boards[id]
	if !ok {
		return nil, notFound("whiteboard not found")
	}
	b.Title = *req.Title
	b.ExcalidrawJson = *req.ExcalidrawJson
	b.FolderId = req.FolderId
	cp := *b
	return &cp, nil
}

func (s *fakeStore) ListTasks(context.Context) ([]*dto.TaskResponse, error) { return s.tasks, nil }
func (s *fakeStore) ListNotes(context.Context) ([]*dto.NoteResponse, error) { return s.notes, nil }

func (s *fakeStore) ListDailyLogs(context.Context) ([]*dto.DailyLogResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*dto.DailyLogResponse, 0, len(s.logs))
	for _, l := range s.logs {
		out = append(out, l)
	}
	return out, nil
}

func (s *fakeStore) ListWhiteboards(context.Context) ([]*dto.WhiteboardResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*dto.WhiteboardResponse, 0, len(s.boards))
	for _, b := range s.boards {
		out = append(out, b)
	}
	return out, nil
}

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

type manualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) autosave.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}
