package workspace

import (
	"context"
	"fmt"

	"minddock/internal/dto"
	"minddock/pkg/client"

	"github.com/google/uuid"
)

type DailyLogStore interface {
	GetDailyLog(ctx context.Context, date string) (*dto.DailyLogResponse, error)
	CreateDailyLog(ctx context.Context, req dto.CreateDailyLogRequest) (*dto.DailyLogResponse, error)
	UpdateDailyLog(ctx context.Context, id uuid.UUID, req dto.UpdateDailyLogRequest) (*dto.DailyLogResponse, error)
}

// DailyLogDraft holds the four editable fields of a day's log.
type DailyLogDraft struct {
	WorkedOn      string
	Blockers      string
	Learned       string
	TomorrowFocus string
}

// mergeOnto keeps server values for fields the draft left empty.
func (d DailyLogDraft) mergeOnto(existing *dto.DailyLogResponse) DailyLogDraft {
	pick := func(draft, server string) string {
		if draft != "" {
			return draft
		}
		return server
	}
	return DailyLogDraft{
		WorkedOn:      pick(d.WorkedOn, existing.WorkedOn),
		Blockers:      pick(d.Blockers, existing.Blockers),
		Learned:       pick(d.Learned, existing.Learned),
		TomorrowFocus: pick(d.TomorrowFocus, existing.TomorrowFocus),
	}
}

// DailyLogEditor edits the log of one date. The server enforces one log per
// date, so a lost create race falls back to updating the winner.
type DailyLogEditor struct {
	store DailyLogStore
	date  string
	id    *uuid.UUID
	Draft DailyLogDraft
}

// OpenDailyLog loads the log for date, or starts a blank draft when none
// exists yet.
func OpenDailyLog(ctx context.Context, store DailyLogStore, date string) (*DailyLogEditor, error) {
	editor := &DailyLogEditor{store: store, date: date}

	existing, err := store.GetDailyLog(ctx, date)
	if err != nil {
		if client.IsNotFound(err) {
			return editor, nil
		}
		return nil, fmt.Errorf("load daily log %s: %w", date, err)
	}
	editor.adopt(existing)
	return editor, nil
}

func (e *DailyLogEditor) Date() string {
	return e.date
}

// Persisted reports whether the log already has a server identity.
func (e *DailyLogEditor) Persisted() bool {
	return e.id != nil
}

func (e *DailyLogEditor) adopt(log *dto.DailyLogResponse) {
	id := log.Id
	e.id = &id
	e.Draft = DailyLogDraft{
		WorkedOn:      log.WorkedOn,
		Blockers:      log.Blockers,
		Learned:       log.Learned,
		TomorrowFocus: log.TomorrowFocus,
	}
}

func (e *DailyLogEditor) Save(ctx context.Context) (*dto.DailyLogResponse, error) {
	if e.id != nil {
		return e.update(ctx, *e.id, e.Draft)
	}

	d := e.Draft
	created, err := e.store.CreateDailyLog(ctx, dto.CreateDailyLogRequest{
		Date:          e.date,
		WorkedOn:      &d.WorkedOn,
		Blockers:      &d.Blockers,
		Learned:       &d.Learned,
		TomorrowFocus: &d.TomorrowFocus,
	})
	if err == nil {
		e.adopt(created)
		return created, nil
	}
	if !client.IsConflict(err) {
		return nil, fmt.Errorf("create daily log %s: %w", e.date, err)
	}

	existing, err := e.store.GetDailyLog(ctx, e.date)
	if err != nil {
		return nil, fmt.Errorf("reload daily log %s after conflict: %w", e.date, err)
	}
	return e.update(ctx, existing.Id, e.Draft.mergeOnto(existing))
}

func (e *DailyLogEditor) update(ctx context.Context, id uuid.UUID, d DailyLogDraft) (*dto.DailyLogResponse, error) {
	updated, err := e.store.UpdateDailyLog(ctx, id, dto.UpdateDailyLogRequest{
		WorkedOn:      &d.WorkedOn,
		Blockers:      &d.Blockers,
		Learned:       &d.Learned,
		TomorrowFocus: &d.TomorrowFocus,
	})
	if err != nil {
		return nil, fmt.Errorf("update daily log %s: %w", e.date, err)
	}
	e.adopt(updated)
	return updated, nil
}
