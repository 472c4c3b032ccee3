package workspace

import (
	"context"
	"errors"
	"sync"
	"testing"

	"minddock/internal/dto"
	"minddock/pkg/autosave"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusLog struct {
	mu     sync.Mutex
	states []SaveState
	last   error
}

func (l *statusLog) record(state SaveState, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.states = append(l.states, state)
	if err != nil {
		l.last = err
	}
}

func (l *statusLog) final() SaveState {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.states) == 0 {
		return StateClean
	}
	return l.states[len(l.states)-1]
}

func newTestEditor(store *fakeStore) (*WhiteboardEditor, *manualScheduler, *statusLog) {
	clock := &manualScheduler{}
	status := &statusLog{}
	editor := NewWhiteboardEditor(store, WithScheduler(clock), WithStatus(status.record))
	return editor, clock, status
}

func TestDraftDefaults(t *testing.T) {
	editor, _, _ := newTestEditor(newFakeStore())
	_, persisted := editor.ID()
	assert.False(t, persisted)
	assert.Equal(t, NewWhiteboardTitle, editor.Title())
	assert.Equal(t, "{}", editor.Canvas())
	assert.False(t, editor.Dirty())
}

func TestAutosaveCreatesAndAdoptsID(t *testing.T) {
	store := newFakeStore()
	editor, clock, status := newTestEditor(store)

	editor.Change(`{"elements":[1]}`)
	assert.True(t, editor.Dirty())
	assert.Equal(t, StateDirty, status.final())

	clock.Advance(autosave.DefaultDelay)

	id, persisted := editor.ID()
	require.True(t, persisted)
	assert.False(t, editor.Dirty())
	assert.Equal(t, StateSaved, status.final())
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, `{"elements":[1]}`, store.boards[id].ExcalidrawJson)

	editor.Change(`{"elements":[1,2]}`)
	clock.Advance(autosave.DefaultDelay)
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, 1, store.updates)
	assert.Equal(t, `{"elements":[1,2]}`, store.boards[id].ExcalidrawJson)
}

func TestBurstOfEditsSavesOnce(t *testing.T) {
	store := newFakeStore()
	editor, clock, _ := newTestEditor(store)

	for i := 0; i < 5; i++ {
		editor.Change(`{"n":1}`)
		clock.Advance(autosave.DefaultDelay / 2)
	}
	assert.Equal(t, 0, store.creates)

	clock.Advance(autosave.DefaultDelay)
	assert.Equal(t, 1, store.creates)
}

func TestBlankTitleSavesAsUntitled(t *testing.T) {
	store := newFakeStore()
	editor, _, _ := newTestEditor(store)

	editor.Rename("   ")
	require.NoError(t, editor.Blur(context.Background()))

	id, _ := editor.ID()
	assert.Equal(t, UntitledWhiteboard, store.boards[id].Title)
}

func TestBlurSavesImmediatelyOnlyWhenDirty(t *testing.T) {
	store := newFakeStore()
	editor, clock, _ := newTestEditor(store)

	require.NoError(t, editor.Blur(context.Background()))
	assert.Equal(t, 0, store.creates)

	editor.Rename("Plan")
	require.NoError(t, editor.Blur(context.Background()))
	assert.Equal(t, 1, store.creates)

	// the armed timer was cancelled by the immediate save
	clock.Advance(autosave.DefaultDelay)
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, 0, store.updates)
}

func TestFailedSaveKeepsLocalEdits(t *testing.T) {
	store := newFakeStore()
	store.failSave = errors.New("backend unreachable")
	editor, clock, status := newTestEditor(store)

	editor.Change(`{"keep":true}`)
	clock.Advance(autosave.DefaultDelay)

	assert.Equal(t, StateFailed, status.final())
	assert.ErrorIs(t, status.last, store.failSave)
	assert.True(t, editor.Dirty())
	assert.Equal(t, `{"keep":true}`, editor.Canvas())
	_, persisted := editor.ID()
	assert.False(t, persisted)

	// no automatic retry
	clock.Advance(autosave.DefaultDelay)
	assert.Equal(t, 0, store.creates)

	store.failSave = nil
	require.NoError(t, editor.Blur(context.Background()))
	assert.False(t, editor.Dirty())
	assert.Equal(t, 1, store.creates)
}

func TestEditDuringSaveStaysDirty(t *testing.T) {
	store := newFakeStore()
	editor, clock, _ := newTestEditor(store)

	once := sync.Once{}
	store.beforeSave = func() {
		once.Do(func() { editor.Change(`{"v":2}`) })
	}

	editor.Change(`{"v":1}`)
	require.NoError(t, editor.Flush(context.Background()))
	assert.True(t, editor.Dirty())

	clock.Advance(autosave.DefaultDelay)
	assert.False(t, editor.Dirty())
	id, _ := editor.ID()
	assert.Equal(t, `{"v":2}`, store.boards[id].ExcalidrawJson)
}

func TestOpenWhiteboardKeepsFolderOnUpdate(t *testing.T) {
	store := newFakeStore()
	folder := uuid.New()
	existing := &dto.WhiteboardResponse{Id: uuid.New(), Title: "Arch", ExcalidrawJson: "{}", FolderId: &folder}
	store.boards[existing.Id] = existing

	clock := &manualScheduler{}
	editor, err := OpenWhiteboard(context.Background(), store, existing.Id, WithScheduler(clock))
	require.NoError(t, err)
	assert.Equal(t, "Arch", editor.Title())

	editor.Rename("Architecture")
	clock.Advance(autosave.DefaultDelay)

	require.NotNil(t, store.boards[existing.Id].FolderId)
	assert.Equal(t, folder, *store.boards[existing.Id].FolderId)
	assert.Equal(t, "Architecture", store.boards[existing.Id].Title)
}

func TestMoveToNilClearsFolder(t *testing.T) {
	store := newFakeStore()
	folder := uuid.New()
	existing := &dto.WhiteboardResponse{Id: uuid.New(), Title: "Arch", ExcalidrawJson: "{}", FolderId: &folder}
	store.boards[existing.Id] = existing

	editor, err := OpenWhiteboard(context.Background(), store, existing.Id, WithScheduler(&manualScheduler{}))
	require.NoError(t, err)

	editor.MoveTo(nil)
	require.NoError(t, editor.Flush(context.Background()))
	assert.Nil(t, store.boards[existing.Id].FolderId)
}

func TestOpenWhiteboardMissing(t *testing.T) {
	_, err := OpenWhiteboard(context.Background(), newFakeStore(), uuid.New())
	require.Error(t, err)
}

func TestCloseDropsPendingTimer(t *testing.T) {
	store := newFakeStore()
	editor, clock, _ := newTestEditor(store)

	editor.Change(`{}`)
	editor.Close()
	clock.Advance(autosave.DefaultDelay)
	assert.Equal(t, 0, store.creates)
	assert.True(t, editor.Dirty())
}
