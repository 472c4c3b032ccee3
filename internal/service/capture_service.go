package service

import (
	"context"
	"errors"

	"minddock/internal/dto"
	"minddock/internal/entity"
	"minddock/internal/pkg/apperror"
	"minddock/internal/pkg/logger"
	"minddock/pkg/capture"
)

type CaptureObserver interface {
	ObserveCapture(kind string)
}

type ICaptureService interface {
	Capture(ctx context.Context, req *dto.CaptureRequest) (*dto.CaptureResponse, error)
}

type captureService struct {
	taskService ITaskService
	noteService INoteService
	logger      logger.ILogger
	observer    CaptureObserver
}

// NewCaptureService routes quick captures through the task and note services
// so captured records get the same defaults and activity events.
func NewCaptureService(
	taskService ITaskService,
	noteService INoteService,
	logger logger.ILogger,
	observer CaptureObserver,
) ICaptureService {
	return &captureService{
		taskService: taskService,
		noteService: noteService,
		logger:      logger,
		observer:    observer,
	}
}

func (s *captureService) Capture(ctx context.Context, req *dto.CaptureRequest) (*dto.CaptureResponse, error) {
	result, err := capture.Classify(req.Text)
	if err != nil {
		if errors.Is(err, capture.ErrEmptyText) {
			return nil, apperror.Validation("text is required")
		}
		return nil, apperror.Wrap(apperror.KindValidation, "cannot capture text", err)
	}

	var res *dto.CaptureResponse
	switch result.Kind {
	case capture.KindTask:
		task, err := s.taskService.Create(ctx, &dto.CreateTaskRequest{Title: result.Body})
		if err != nil {
			return nil, err
		}
		res = &dto.CaptureResponse{Type: string(capture.KindTask), Id: task.Id, Message: "Task created"}
	default:
		content := result.Body
		note, err := s.noteService.Create(ctx, &dto.CreateNoteRequest{
			Title:   entity.DeriveNoteTitle(content),
			Content: &content,
		})
		if err != nil {
			return nil, err
		}
		res = &dto.CaptureResponse{Type: string(capture.KindNote), Id: note.Id, Message: "Note created"}
	}

	s.logger.Info("CAPTURE", "Captured text", map[string]interface{}{
		"type":     res.Type,
		"id":       res.Id.String(),
		"prefixed": result.Prefixed,
	})
	if s.observer != nil {
		s.observer.ObserveCapture(res.Type)
	}

	return res, nil
}
