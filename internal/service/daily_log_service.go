package service

import (
	"context"
	"errors"
	"time"

	"minddock/internal/dto"
	"minddock/internal/entity"
	"minddock/internal/pkg/apperror"
	"minddock/internal/pkg/logger"
	"minddock/internal/repository/contract"
	"minddock/internal/repository/specification"
	"minddock/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const ErrMsgDailyLogExists = "Log already exists for this date"

type IDailyLogService interface {
	GetAll(ctx context.Context) ([]*dto.DailyLogResponse, error)
	ShowByDate(ctx context.Context, date string) (*dto.DailyLogResponse, error)
	Create(ctx context.Context, req *dto.CreateDailyLogRequest) (*dto.DailyLogResponse, error)
	Update(ctx context.Context, req *dto.UpdateDailyLogRequest) (*dto.DailyLogResponse, error)
}

type dailyLogService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	activity   activityRecorder
}

func NewDailyLogService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) IDailyLogService {
	return &dailyLogService{
		uowFactory: uowFactory,
		logger:     logger,
		activity:   activityRecorder{publisher: publisherService, log: logger},
	}
}

func (s *dailyLogService) GetAll(ctx context.Context) ([]*dto.DailyLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.DailyLogRepository().FindAll(ctx, specification.OrderBy{Field: "date", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DailyLogResponse, 0, len(logs))
	for _, l := range logs {
		result = append(result, toDailyLogResponse(l))
	}
	return result, nil
}

func (s *dailyLogService) ShowByDate(ctx context.Context, date string) (*dto.DailyLogResponse, error) {
	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	dailyLog, err := uow.DailyLogRepository().FindOne(ctx, specification.ByDate{Date: day})
	if err != nil {
		return nil, err
	}
	if dailyLog == nil {
		return nil, apperror.NotFound("no log for " + date)
	}
	return toDailyLogResponse(dailyLog), nil
}

// Create refuses a second log for the same day. The pre-check gives the
// common case a clean answer; the unique index settles a concurrent race.
// Either way the existing log is left untouched.
func (s *dailyLogService) Create(ctx context.Context, req *dto.CreateDailyLogRequest) (*dto.DailyLogResponse, error) {
	day, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}
	if req.WorkedOn == nil || req.Blockers == nil || req.Learned == nil || req.TomorrowFocus == nil {
		return nil, apperror.Validation("workedOn, blockers, learned and tomorrowFocus are required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.DailyLogRepository().FindOne(ctx, specification.ByDate{Date: day})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logConflict(req.Date, "pre-check")
		return nil, apperror.Conflict(ErrMsgDailyLogExists)
	}

	now := time.Now().UTC()
	dailyLog := entity.DailyLog{
		Id:            uuid.New(),
		Date:          day,
		WorkedOn:      *req.WorkedOn,
		Blockers:      *req.Blockers,
		Learned:       *req.Learned,
		TomorrowFocus: *req.TomorrowFocus,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uow.DailyLogRepository().Create(ctx, &dailyLog); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			s.logConflict(req.Date, "unique index")
			return nil, apperror.Wrap(apperror.KindConflict, ErrMsgDailyLogExists, err)
		}
		return nil, err
	}

	s.logger.Info("DAILY_LOG", "Daily log created", map[string]interface{}{
		"log_id": dailyLog.Id.String(),
		"date":   req.Date,
	})
	s.activity.record(ctx, EntityDailyLog, ActionCreated, dailyLog.Id)

	return toDailyLogResponse(&dailyLog), nil
}

func (s *dailyLogService) Update(ctx context.Context, req *dto.UpdateDailyLogRequest) (*dto.DailyLogResponse, error) {
	if req.WorkedOn == nil || req.Blockers == nil || req.Learned == nil || req.TomorrowFocus == nil {
		return nil, apperror.Validation("workedOn, blockers, learned and tomorrowFocus are required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	dailyLog, err := uow.DailyLogRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if dailyLog == nil {
		return nil, apperror.NotFound("daily log not found")
	}

	dailyLog.WorkedOn = *req.WorkedOn
	dailyLog.Blockers = *req.Blockers
	dailyLog.Learned = *req.Learned
	dailyLog.TomorrowFocus = *req.TomorrowFocus
	dailyLog.UpdatedAt = time.Now().UTC()

	if err := uow.DailyLogRepository().Update(ctx, dailyLog); err != nil {
		return nil, notFoundOnMiss(err, "daily log not found")
	}

	s.logger.Info("DAILY_LOG", "Daily log updated", map[string]interface{}{
		"log_id": dailyLog.Id.String(),
		"date":   dailyLog.Date.Format(entity.DateLayout),
	})
	s.activity.record(ctx, EntityDailyLog, ActionUpdated, dailyLog.Id)

	return toDailyLogResponse(dailyLog), nil
}

func (s *dailyLogService) logConflict(date, source string) {
	s.logger.Warn("DAILY_LOG", "Rejected duplicate daily log", map[string]interface{}{
		"date":   date,
		"source": source,
	})
}

func parseDay(date string) (time.Time, error) {
	day, err := entity.ParseDay(date)
	if err != nil {
		return time.Time{}, apperror.Wrap(apperror.KindValidation, "date must be formatted as YYYY-MM-DD", err)
	}
	return day, nil
}

func toDailyLogResponse(l *entity.DailyLog) *dto.DailyLogResponse {
	return &dto.DailyLogResponse{
		Id:            l.Id,
		Date:          l.Date.Format(entity.DateLayout),
		WorkedOn:      l.WorkedOn,
		Blockers:      l.Blockers,
		Learned:       l.Learned,
		TomorrowFocus: l.TomorrowFocus,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}
