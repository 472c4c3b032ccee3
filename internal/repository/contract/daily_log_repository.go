package contract

import (
	"context"

	"minddock/internal/entity"
	"minddock/internal/repository/specification"
)

type DailyLogRepository interface {
	// Create returns ErrDuplicateKey when a log already exists for the date.
	Create(ctx context.Context, log *entity.DailyLog) error
	Update(ctx context.Context, log *entity.DailyLog) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DailyLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DailyLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
