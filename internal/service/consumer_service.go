package service

import (
	"context"
	"encoding/json"
	"time"

	"minddock/internal/dto"
	"minddock/internal/pkg/logger"
	"minddock/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventForwarder is the external bus; *nats.Publisher satisfies it.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type ActivityObserver interface {
	ObserveActivity(eventType string)
}

// ActivityBroadcaster pushes activity to live listeners; *websocket.Hub
// satisfies it.
type ActivityBroadcaster interface {
	Broadcast(payload []byte)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	activityLog logger.ILogger
	forwarder   EventForwarder
	observer    ActivityObserver
	broadcaster ActivityBroadcaster
}

// NewConsumerService wires the activity topic to the activity log. forwarder,
// observer and broadcaster are optional.
func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	activityLog logger.ILogger,
	forwarder EventForwarder,
	observer ActivityObserver,
	broadcaster ActivityBroadcaster,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		activityLog: activityLog,
		forwarder:   forwarder,
		observer:    observer,
		broadcaster: broadcaster,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// nothing here is worth a redelivery, so every message is acked
	defer msg.Ack()

	var activity dto.ActivityMessage
	if err := json.Unmarshal(msg.Payload, &activity); err != nil {
		cs.activityLog.Warn("ACTIVITY", "Dropping malformed activity", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	cs.activityLog.Info("ACTIVITY", activity.Type, map[string]interface{}{
		"entity":      activity.Entity,
		"id":          activity.Id.String(),
		"occurred_at": activity.OccurredAt.Format(time.RFC3339),
	})

	if cs.observer != nil {
		cs.observer.ObserveActivity(activity.Type)
	}

	if cs.broadcaster != nil {
		cs.broadcaster.Broadcast(msg.Payload)
	}

	if cs.forwarder == nil {
		return
	}

	fwdCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	event := events.Activity(activity.Type, activity.Entity, activity.Id.String(), activity.OccurredAt)
	if err := cs.forwarder.Publish(fwdCtx, event); err != nil {
		cs.activityLog.Warn("ACTIVITY", "Failed to forward activity", map[string]interface{}{
			"type":  activity.Type,
			"error": err.Error(),
		})
	}
}
