package service

import (
	"context"
	"strings"
	"time"

	"minddock/internal/dto"
	"minddock/internal/entity"
	"minddock/internal/pkg/apperror"
	"minddock/internal/pkg/logger"
	"minddock/internal/repository/specification"
	"minddock/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWhiteboardService interface {
	GetAll(ctx context.Context) ([]*dto.WhiteboardResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.WhiteboardResponse, error)
	Create(ctx context.Context, req *dto.CreateWhiteboardRequest) (*dto.WhiteboardResponse, error)
	Update(ctx context.Context, req *dto.UpdateWhiteboardRequest) (*dto.WhiteboardResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type whiteboardService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	activity   activityRecorder
}

func NewWhiteboardService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) IWhiteboardService {
	return &whiteboardService{
		uowFactory: uowFactory,
		logger:     logger,
		activity:   activityRecorder{publisher: publisherService, log: logger},
	}
}

func (s *whiteboardService) GetAll(ctx context.Context) ([]*dto.WhiteboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.WhiteboardDocumentRepository().FindAll(ctx, specification.RecentlyEdited()...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.WhiteboardResponse, 0, len(docs))
	for _, doc := range docs {
		result = append(result, toWhiteboardResponse(doc))
	}
	return result, nil
}

func (s *whiteboardService) Show(ctx context.Context, id uuid.UUID) (*dto.WhiteboardResponse, error) {
	doc, err := s.findDocument(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toWhiteboardResponse(doc), nil
}

func (s *whiteboardService) Create(ctx context.Context, req *dto.CreateWhiteboardRequest) (*dto.WhiteboardResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.Validation("title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.ensureFolder(ctx, uow, req.FolderId); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := entity.WhiteboardDocument{
		Id:             uuid.New(),
		Title:          title,
		ExcalidrawJson: req.ExcalidrawJson,
		FolderId:       req.FolderId,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uow.WhiteboardDocumentRepository().Create(ctx, &doc); err != nil {
		return nil, err
	}

	s.logger.Info("WHITEBOARD", "Whiteboard created", map[string]interface{}{
		"whiteboard_id": doc.Id.String(),
		"bytes":         len(doc.ExcalidrawJson),
	})
	s.activity.record(ctx, EntityWhiteboard, ActionCreated, doc.Id)

	return toWhiteboardResponse(&doc), nil
}

func (s *whiteboardService) Update(ctx context.Context, req *dto.UpdateWhiteboardRequest) (*dto.WhiteboardResponse, error) {
	if req.Title == nil || req.ExcalidrawJson == nil {
		return nil, apperror.Validation("title and excalidrawJson are required")
	}
	title := strings.TrimSpace(*req.Title)
	if title == "" {
		return nil, apperror.Validation("title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := s.findDocument(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureFolder(ctx, uow, req.FolderId); err != nil {
		return nil, err
	}

	doc.Title = title
	doc.ExcalidrawJson = *req.ExcalidrawJson
	doc.FolderId = req.FolderId
	doc.UpdatedAt = time.Now().UTC()

	if err := uow.WhiteboardDocumentRepository().Update(ctx, doc); err != nil {
		return nil, notFoundOnMiss(err, "whiteboard not found")
	}

	s.logger.Debug("WHITEBOARD", "Whiteboard saved", map[string]interface{}{
		"whiteboard_id": doc.Id.String(),
		"bytes":         len(doc.ExcalidrawJson),
	})
	s.activity.record(ctx, EntityWhiteboard, ActionUpdated, doc.Id)

	return toWhiteboardResponse(doc), nil
}

func (s *whiteboardService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findDocument(ctx, uow, id); err != nil {
		return err
	}

	if err := uow.WhiteboardDocumentRepository().Delete(ctx, id); err != nil {
		return notFoundOnMiss(err, "whiteboard not found")
	}

	s.logger.Info("WHITEBOARD", "Whiteboard deleted", map[string]interface{}{"whiteboard_id": id.String()})
	s.activity.record(ctx, EntityWhiteboard, ActionDeleted, id)

	return nil
}

// ensureFolder rejects a folder reference that names no folder.
func (s *whiteboardService) ensureFolder(ctx context.Context, uow unitofwork.UnitOfWork, folderId *uuid.UUID) error {
	if folderId == nil {
		return nil
	}

	count, err := uow.WhiteboardFolderRepository().Count(ctx, specification.ByID{ID: *folderId})
	if err != nil {
		return err
	}
	if count == 0 {
		return apperror.Validationf("folder %s does not exist", folderId)
	}
	return nil
}

func (s *whiteboardService) findDocument(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.WhiteboardDocument, error) {
	doc, err := uow.WhiteboardDocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NotFound("whiteboard not found")
	}
	return doc, nil
}

func toWhiteboardResponse(doc *entity.WhiteboardDocument) *dto.WhiteboardResponse {
	return &dto.WhiteboardResponse{
		Id:             doc.Id,
		Title:          doc.Title,
		ExcalidrawJson: doc.ExcalidrawJson,
		FolderId:       doc.FolderId,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}
