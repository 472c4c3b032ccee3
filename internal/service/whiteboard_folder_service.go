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

type IWhiteboardFolderService interface {
	GetAll(ctx context.Context) ([]*dto.WhiteboardFolderResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.WhiteboardFolderResponse, error)
	Create(ctx context.Context, req *dto.CreateWhiteboardFolderRequest) (*dto.WhiteboardFolderResponse, error)
	Update(ctx context.Context, req *dto.UpdateWhiteboardFolderRequest) (*dto.WhiteboardFolderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type whiteboardFolderService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	activity   activityRecorder
}

func NewWhiteboardFolderService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) IWhiteboardFolderService {
	return &whiteboardFolderService{
		uowFactory: uowFactory,
		logger:     logger,
		activity:   activityRecorder{publisher: publisherService, log: logger},
	}
}

func (s *whiteboardFolderService) GetAll(ctx context.Context) ([]*dto.WhiteboardFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folders, err := uow.WhiteboardFolderRepository().FindAll(ctx,
		specification.OrderBy{Field: "name"},
		specification.OrderBy{Field: "id"},
		specification.WithDocuments{},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.WhiteboardFolderResponse, 0, len(folders))
	for _, folder := range folders {
		result = append(result, toFolderResponse(folder))
	}
	return result, nil
}

func (s *whiteboardFolderService) Show(ctx context.Context, id uuid.UUID) (*dto.WhiteboardFolderResponse, error) {
	folder, err := s.findFolder(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toFolderResponse(folder), nil
}

func (s *whiteboardFolderService) Create(ctx context.Context, req *dto.CreateWhiteboardFolderRequest) (*dto.WhiteboardFolderResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}

	now := time.Now().UTC()
	folder := entity.WhiteboardFolder{
		Id:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WhiteboardFolderRepository().Create(ctx, &folder); err != nil {
		return nil, err
	}

	s.logger.Info("WHITEBOARD_FOLDER", "Folder created", map[string]interface{}{
		"folder_id": folder.Id.String(),
		"name":      folder.Name,
	})
	s.activity.record(ctx, EntityWhiteboardFolder, ActionCreated, folder.Id)

	return toFolderResponse(&folder), nil
}

func (s *whiteboardFolderService) Update(ctx context.Context, req *dto.UpdateWhiteboardFolderRequest) (*dto.WhiteboardFolderResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	folder, err := s.findFolder(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	folder.Name = name
	folder.UpdatedAt = time.Now().UTC()

	if err := uow.WhiteboardFolderRepository().Update(ctx, folder); err != nil {
		return nil, notFoundOnMiss(err, "whiteboard folder not found")
	}

	s.logger.Info("WHITEBOARD_FOLDER", "Folder renamed", map[string]interface{}{
		"folder_id": folder.Id.String(),
		"name":      folder.Name,
	})
	s.activity.record(ctx, EntityWhiteboardFolder, ActionUpdated, folder.Id)

	return toFolderResponse(folder), nil
}

// Delete removes the folder and keeps its documents. They are detached in the
// same transaction so no document is left pointing at a missing folder.
func (s *whiteboardFolderService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	folder, err := uow.WhiteboardFolderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if folder == nil {
		return apperror.NotFound("whiteboard folder not found")
	}

	detached, err := uow.WhiteboardDocumentRepository().DetachFromFolder(ctx, id)
	if err != nil {
		return err
	}

	if err := uow.WhiteboardFolderRepository().Delete(ctx, id); err != nil {
		return notFoundOnMiss(err, "whiteboard folder not found")
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("WHITEBOARD_FOLDER", "Folder deleted", map[string]interface{}{
		"folder_id": id.String(),
		"detached":  detached,
	})
	s.activity.record(ctx, EntityWhiteboardFolder, ActionDeleted, id)

	return nil
}

func (s *whiteboardFolderService) findFolder(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.WhiteboardFolder, error) {
	folder, err := uow.WhiteboardFolderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.WithDocuments{},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, apperror.NotFound("whiteboard folder not found")
	}
	return folder, nil
}

func toFolderResponse(folder *entity.WhiteboardFolder) *dto.WhiteboardFolderResponse {
	docs := make([]*dto.WhiteboardSummary, 0, len(folder.Documents))
	for _, doc := range folder.Documents {
		docs = append(docs, &dto.WhiteboardSummary{
			Id:       doc.Id,
			Title:    doc.Title,
			FolderId: doc.FolderId,
		})
	}

	return &dto.WhiteboardFolderResponse{
		Id:        folder.Id,
		Name:      folder.Name,
		Documents: docs,
		CreatedAt: folder.CreatedAt,
		UpdatedAt: folder.UpdatedAt,
	}
}
