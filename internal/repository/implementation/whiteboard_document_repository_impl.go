package implementation

import (
	"context"
	"errors"

	"minddock/internal/entity"
	"minddock/internal/mapper"
	"minddock/internal/model"
	"minddock/internal/repository/contract"
	"minddock/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WhiteboardDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WhiteboardMapper
}

func NewWhiteboardDocumentRepository(db *gorm.DB) contract.WhiteboardDocumentRepository {
	return &WhiteboardDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewWhiteboardMapper(),
	}
}

func (r *WhiteboardDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.WhiteboardDocument) error {
	m := r.mapper.DocumentToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateCreateError(err)
	}
	*doc = *r.mapper.DocumentToEntity(m)
	return nil
}

// Update selects folder_id explicitly, so a nil FolderId clears the folder.
func (r *WhiteboardDocumentRepositoryImpl) Update(ctx context.Context, doc *entity.WhiteboardDocument) error {
	m := r.mapper.DocumentToModel(doc)
	res := r.db.WithContext(ctx).
		Model(&model.WhiteboardDocument{}).
		Where("id = ?", m.Id).
		Select("title", "excalidraw_json", "folder_id", "updated_at").
		Updates(m)
	return requireRow(res)
}

func (r *WhiteboardDocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return requireRow(r.db.WithContext(ctx).Delete(&model.WhiteboardDocument{}, "id = ?", id))
}

func (r *WhiteboardDocumentRepositoryImpl) DetachFromFolder(ctx context.Context, folderId uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.WhiteboardDocument{}).
		Where("folder_id = ?", folderId).
		Update("folder_id", nil)
	return res.RowsAffected, res.Error
}

func (r *WhiteboardDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WhiteboardDocument, error) {
	var m model.WhiteboardDocument
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DocumentToEntity(&m), nil
}

func (r *WhiteboardDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WhiteboardDocument, error) {
	var models []*model.WhiteboardDocument
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.DocumentsToEntities(models), nil
}

func (r *WhiteboardDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.WhiteboardDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
