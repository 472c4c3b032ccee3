package service

import (
	"context"
	"encoding/json"
	"time"

	"minddock/internal/dto"
	"minddock/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const (
	EntityTask             = "task"
	EntityNote             = "note"
	EntityDailyLog         = "dailylog"
	EntityWhiteboardFolder = "whiteboardfolder"
	EntityWhiteboard       = "whiteboard"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (p *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.pubSub.Publish(p.topicName, msg)
}

// activityRecorder announces record writes. Failures are logged and never
// reach the caller.
type activityRecorder struct {
	publisher IPublisherService
	log       logger.ILogger
}

func (a activityRecorder) record(ctx context.Context, entityName, action string, id uuid.UUID) {
	if a.publisher == nil {
		return
	}

	payload, err := json.Marshal(dto.ActivityMessage{
		Type:       entityName + "." + action,
		Entity:     entityName,
		Id:         id,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		a.log.Warn("ACTIVITY", "Failed to encode activity", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := a.publisher.Publish(ctx, payload); err != nil {
		a.log.Warn("ACTIVITY", "Failed to publish activity", map[string]interface{}{
			"entity": entityName,
			"action": action,
			"id":     id.String(),
			"error":  err.Error(),
		})
	}
}
