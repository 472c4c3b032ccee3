package workspace

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"minddock/internal/dto"
	"minddock/pkg/autosave"

	"github.com/google/uuid"
)

const (
	NewWhiteboardTitle = "New Whiteboard"
	UntitledWhiteboard = "Untitled Whiteboard"
	emptyCanvas        = "{}"
)

type WhiteboardStore interface {
	GetWhiteboard(ctx context.Context, id uuid.UUID) (*dto.WhiteboardResponse, error)
	CreateWhiteboard(ctx context.Context, req dto.CreateWhiteboardRequest) (*dto.WhiteboardResponse, error)
	UpdateWhiteboard(ctx context.Context, id uuid.UUID, req dto.UpdateWhiteboardRequest) (*dto.WhiteboardResponse, error)
}

type SaveState int

const (
	StateClean SaveState = iota
	StateDirty
	StateSaving
	StateSaved
	StateFailed
)

func (s SaveState) String() string {
	switch s {
	case StateDirty:
		return "unsaved changes"
	case StateSaving:
		return "saving"
	case StateSaved:
		return "saved"
	case StateFailed:
		return "save failed"
	default:
		return "clean"
	}
}

// StatusFunc receives every save state change. err is set only for StateFailed.
type StatusFunc func(state SaveState, err error)

type EditorOption func(*editorOptions)

type editorOptions struct {
	delay     time.Duration
	scheduler autosave.Scheduler
	status    StatusFunc
}

func WithAutosaveDelay(d time.Duration) EditorOption {
	return func(o *editorOptions) { o.delay = d }
}

func WithScheduler(s autosave.Scheduler) EditorOption {
	return func(o *editorOptions) { o.scheduler = s }
}

func WithStatus(fn StatusFunc) EditorOption {
	return func(o *editorOptions) { o.status = fn }
}

// WhiteboardEditor keeps the local canvas and title of one whiteboard and
// saves them after a quiet period. Local edits survive failed saves.
type WhiteboardEditor struct {
	store     WhiteboardStore
	debouncer *autosave.Debouncer
	status    StatusFunc

	mu       sync.Mutex
	id       *uuid.UUID
	title    string
	canvas   string
	folderID *uuid.UUID
	dirty    bool
	version  uint64

	saveMu sync.Mutex
}

// NewWhiteboardEditor starts a draft that has no server identity yet.
func NewWhiteboardEditor(store WhiteboardStore, opts ...EditorOption) *WhiteboardEditor {
	return newEditor(store, NewWhiteboardTitle, emptyCanvas, nil, nil, opts)
}

func OpenWhiteboard(ctx context.Context, store WhiteboardStore, id uuid.UUID, opts ...EditorOption) (*WhiteboardEditor, error) {
	wb, err := store.GetWhiteboard(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load whiteboard %s: %w", id, err)
	}
	wbID := wb.Id
	return newEditor(store, wb.Title, wb.ExcalidrawJson, &wbID, wb.FolderId, opts), nil
}

func newEditor(store WhiteboardStore, title, canvas string, id, folderID *uuid.UUID, opts []EditorOption) *WhiteboardEditor {
	o := editorOptions{delay: autosave.DefaultDelay, scheduler: autosave.RealScheduler()}
	for _, opt := range opts {
		opt(&o)
	}

	e := &WhiteboardEditor{
		store:    store,
		status:   o.status,
		id:       id,
		title:    title,
		canvas:   canvas,
		folderID: folderID,
	}
	e.debouncer = autosave.NewDebouncer(e.save,
		autosave.WithDelay(o.delay),
		autosave.WithScheduler(o.scheduler),
	)
	return e
}

func (e *WhiteboardEditor) ID() (uuid.UUID, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.id == nil {
		return uuid.Nil, false
	}
	return *e.id, true
}

func (e *WhiteboardEditor) Title() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.title
}

func (e *WhiteboardEditor) Canvas() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.canvas
}

func (e *WhiteboardEditor) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// Change replaces the serialized canvas. The blob is opaque here.
func (e *WhiteboardEditor) Change(canvas string) {
	e.edit(func() { e.canvas = canvas })
}

func (e *WhiteboardEditor) Rename(title string) {
	e.edit(func() { e.title = title })
}

// MoveTo sets the folder sent with the next save; nil means no folder.
func (e *WhiteboardEditor) MoveTo(folderID *uuid.UUID) {
	e.edit(func() { e.folderID = folderID })
}

func (e *WhiteboardEditor) edit(apply func()) {
	e.mu.Lock()
	apply()
	e.dirty = true
	e.version++
	e.mu.Unlock()

	e.notify(StateDirty, nil)
	e.debouncer.Trigger()
}

// Blur saves immediately when there are unsaved edits.
func (e *WhiteboardEditor) Blur(ctx context.Context) error {
	if !e.Dirty() {
		return nil
	}
	return e.debouncer.Flush(ctx)
}

func (e *WhiteboardEditor) Flush(ctx context.Context) error {
	return e.debouncer.Flush(ctx)
}

// Close drops the pending timer. Call Blur first to keep edits.
func (e *WhiteboardEditor) Close() {
	e.debouncer.Close()
}

func (e *WhiteboardEditor) save(ctx context.Context) error {
	e.saveMu.Lock()
	defer e.saveMu.Unlock()

	e.mu.Lock()
	if !e.dirty {
		e.mu.Unlock()
		return nil
	}
	id := e.id
	title := strings.TrimSpace(e.title)
	canvas := e.canvas
	folderID := e.folderID
	version := e.version
	e.mu.Unlock()

	if title == "" {
		title = UntitledWhiteboard
	}

	e.notify(StateSaving, nil)

	var (
		saved *dto.WhiteboardResponse
		err   error
	)
	if id == nil {
		saved, err = e.store.CreateWhiteboard(ctx, dto.CreateWhiteboardRequest{
			Title:          title,
			ExcalidrawJson: canvas,
			FolderId:       folderID,
		})
	} else {
		saved, err = e.store.UpdateWhiteboard(ctx, *id, dto.UpdateWhiteboardRequest{
			Title:          &title,
			ExcalidrawJson: &canvas,
			FolderId:       folderID,
		})
	}
	if err != nil {
		e.notify(StateFailed, err)
		return fmt.Errorf("save whiteboard: %w", err)
	}

	e.mu.Lock()
	savedID := saved.Id
	e.id = &savedID
	// edits made while the request was in flight stay dirty
	if e.version == version {
		e.dirty = false
	}
	stillDirty := e.dirty
	e.mu.Unlock()

	if stillDirty {
		e.notify(StateDirty, nil)
	} else {
		e.notify(StateSaved, nil)
	}
	return nil
}

func (e *WhiteboardEditor) notify(state SaveState, err error) {
	if e.status != nil {
		e.status(state, err)
	}
}
