package service

import (
	"context"
	"time"

	"minddock/internal/dto"
	"minddock/internal/entity"
	"minddock/internal/pkg/apperror"
	"minddock/internal/pkg/logger"
	"minddock/internal/repository/specification"
	"minddock/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	GetAll(ctx context.Context) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	activity   activityRecorder
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		logger:     logger,
		activity:   activityRecorder{publisher: publisherService, log: logger},
	}
}

func (s *noteService) GetAll(ctx context.Context) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx, specification.RecentlyEdited()...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, toNoteResponse(note))
	}
	return result, nil
}

func (s *noteService) Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	note, err := s.findNote(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if req.Content == nil {
		return nil, apperror.Validation("content is required")
	}

	title := req.Title
	if title == "" {
		title = entity.DeriveNoteTitle(*req.Content)
	}

	now := time.Now().UTC()
	note := entity.Note{
		Id:        uuid.New(),
		Title:     title,
		Content:   *req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	s.logger.Info("NOTE", "Note created", map[string]interface{}{"note_id": note.Id.String()})
	s.activity.record(ctx, EntityNote, ActionCreated, note.Id)

	return toNoteResponse(&note), nil
}

func (s *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if req.Title == nil || req.Content == nil {
		return nil, apperror.Validation("title and content are required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := s.findNote(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	note.Title = *req.Title
	note.Content = *req.Content
	note.UpdatedAt = time.Now().UTC()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, notFoundOnMiss(err, "note not found")
	}

	s.logger.Info("NOTE", "Note updated", map[string]interface{}{"note_id": note.Id.String()})
	s.activity.record(ctx, EntityNote, ActionUpdated, note.Id)

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findNote(ctx, uow, id); err != nil {
		return err
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return notFoundOnMiss(err, "note not found")
	}

	s.logger.Info("NOTE", "Note deleted", map[string]interface{}{"note_id": id.String()})
	s.activity.record(ctx, EntityNote, ActionDeleted, id)

	return nil
}

func (s *noteService) findNote(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note not found")
	}
	return note, nil
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
