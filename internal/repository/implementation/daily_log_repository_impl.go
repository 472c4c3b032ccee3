package implementation

import (
	"context"
	"errors"

	"minddock/internal/entity"
	"minddock/internal/mapper"
	"minddock/internal/model"
	"minddock/internal/repository/contract"
	"minddock/internal/repository/specification"

	"gorm.io/gorm"
)

type DailyLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DailyLogMapper
}

func NewDailyLogRepository(db *gorm.DB) contract.DailyLogRepository {
	return &DailyLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewDailyLogMapper(),
	}
}

func (r *DailyLogRepositoryImpl) Create(ctx context.Context, log *entity.DailyLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateCreateError(err)
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

// Update never rewrites the date column, so it cannot collide with another day.
func (r *DailyLogRepositoryImpl) Update(ctx context.Context, log *entity.DailyLog) error {
	m := r.mapper.ToModel(log)
	res := r.db.WithContext(ctx).
		Model(&model.DailyLog{}).
		Where("id = ?", m.Id).
		Select("worked_on", "blockers", "learned", "tomorrow_focus", "updated_at").
		Updates(m)
	return requireRow(res)
}

func (r *DailyLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DailyLog, error) {
	var m model.DailyLog
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DailyLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DailyLog, error) {
	var models []*model.DailyLog
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DailyLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.DailyLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
