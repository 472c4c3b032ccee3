package workspace

import (
	"context"
	"errors"
	"testing"

	"minddock/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2026-10-16"

func TestOpenDailyLogMissingStartsBlank(t *testing.T) {
	store := newFakeStore()

	editor, err := OpenDailyLog(context.Background(), store, testDate)
	require.NoError(t, err)
	assert.False(t, editor.Persisted())
	assert.Equal(t, DailyLogDraft{}, editor.Draft)
	assert.Equal(t, testDate, editor.Date())
}

func TestOpenDailyLogLoadsExisting(t *testing.T) {
	store := newFakeStore()
	store.logs[testDate] = &dto.DailyLogResponse{Id: uuid.New(), Date: testDate, WorkedOn: "api"}

	editor, err := OpenDailyLog(context.Background(), store, testDate)
	require.NoError(t, err)
	assert.True(t, editor.Persisted())
	assert.Equal(t, "api", editor.Draft.WorkedOn)
}

type brokenLogStore struct{ *fakeStore }

func (brokenLogStore) GetDailyLog(context.Context, string) (*dto.DailyLogResponse, error) {
	return nil, errors.New("connection refused")
}

func TestOpenDailyLogPropagatesOtherErrors(t *testing.T) {
	_, err := OpenDailyLog(context.Background(), brokenLogStore{newFakeStore()}, testDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSaveCreatesThenUpdates(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	editor, err := OpenDailyLog(ctx, store, testDate)
	require.NoError(t, err)

	editor.Draft.WorkedOn = "api"
	first, err := editor.Save(ctx)
	require.NoError(t, err)
	assert.True(t, editor.Persisted())
	assert.Equal(t, 1, store.creates)

	editor.Draft.Learned = "gorm"
	second, err := editor.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, 1, store.updates)
	assert.Equal(t, "gorm", store.logs[testDate].Learned)
}

func TestSaveRecoversFromLostCreateRace(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	editor, err := OpenDailyLog(ctx, store, testDate)
	require.NoError(t, err)

	// another client creates the same day first
	winner := &dto.DailyLogResponse{Id: uuid.New(), Date: testDate, WorkedOn: "from phone", Blockers: "vpn"}
	store.logs[testDate] = winner

	editor.Draft.WorkedOn = "from laptop"
	editor.Draft.TomorrowFocus = "ship"
	saved, err := editor.Save(ctx)
	require.NoError(t, err)

	assert.Equal(t, winner.Id, saved.Id)
	assert.Len(t, store.logs, 1)
	assert.Equal(t, "from laptop", saved.WorkedOn)
	assert.Equal(t, "vpn", saved.Blockers)
	assert.Equal(t, "ship", saved.TomorrowFocus)
	assert.True(t, editor.Persisted())
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, 1, store.updates)
}
