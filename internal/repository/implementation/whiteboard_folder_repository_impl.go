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

type WhiteboardFolderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WhiteboardMapper
}

func NewWhiteboardFolderRepository(db *gorm.DB) contract.WhiteboardFolderRepository {
	return &WhiteboardFolderRepositoryImpl{
		db:     db,
		mapper: mapper.NewWhiteboardMapper(),
	}
}

func (r *WhiteboardFolderRepositoryImpl) Create(ctx context.Context, folder *entity.WhiteboardFolder) error {
	m := r.mapper.FolderToModel(folder)
	if err := r.db.WithContext(ctx).Omit("Documents").Create(m).Error; err != nil {
		return translateCreateError(err)
	}
	folder.Id = m.Id
	return nil
}

func (r *WhiteboardFolderRepositoryImpl) Update(ctx context.Context, folder *entity.WhiteboardFolder) error {
	res := r.db.WithContext(ctx).
		Model(&model.WhiteboardFolder{}).
		Where("id = ?", folder.Id).
		Updates(map[string]interface{}{
			"name":       folder.Name,
			"updated_at": folder.UpdatedAt,
		})
	return requireRow(res)
}

func (r *WhiteboardFolderRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return requireRow(r.db.WithContext(ctx).Delete(&model.WhiteboardFolder{}, "id = ?", id))
}

func (r *WhiteboardFolderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WhiteboardFolder, error) {
	var m model.WhiteboardFolder
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FolderToEntity(&m), nil
}

func (r *WhiteboardFolderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WhiteboardFolder, error) {
	var models []*model.WhiteboardFolder
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.FoldersToEntities(models), nil
}

func (r *WhiteboardFolderRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.WhiteboardFolder{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
