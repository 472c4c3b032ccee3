package mapper

import (
	"time"

	"minddock/internal/entity"
	"minddock/internal/model"

	"gorm.io/datatypes"
)

type DailyLogMapper struct{}

func NewDailyLogMapper() *DailyLogMapper {
	return &DailyLogMapper{}
}

func (m *DailyLogMapper) ToEntity(l *model.DailyLog) *entity.DailyLog {
	if l == nil {
		return nil
	}
	return &entity.DailyLog{
		Id:            l.Id,
		Date:          entity.TruncateDay(time.Time(l.Date)),
		WorkedOn:      l.WorkedOn,
		Blockers:      l.Blockers,
		Learned:       l.Learned,
		TomorrowFocus: l.TomorrowFocus,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func (m *DailyLogMapper) ToModel(l *entity.DailyLog) *model.DailyLog {
	if l == nil {
		return nil
	}
	return &model.DailyLog{
		Id:            l.Id,
		Date:          datatypes.Date(entity.TruncateDay(l.Date)),
		WorkedOn:      l.WorkedOn,
		Blockers:      l.Blockers,
		Learned:       l.Learned,
		TomorrowFocus: l.TomorrowFocus,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func (m *DailyLogMapper) ToEntities(logs []*model.DailyLog) []*entity.DailyLog {
	entities := make([]*entity.DailyLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
