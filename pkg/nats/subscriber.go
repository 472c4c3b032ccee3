package nats

import (
	"context"
	"fmt"

	"minddock/internal/pkg/logger"
	"minddock/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber tails the event stream with an ordered, ephemeral consumer.
type Subscriber struct {
	nc  *nats.Conn
	js  jetstream.JetStream
	log logger.ILogger
}

func NewSubscriber(url string, log logger.ILogger) (*Subscriber, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}
	return &Subscriber{nc: nc, js: js, log: log}, nil
}

// Subscribe delivers new events matching subject until ctx is done.
func (s *Subscriber) Subscribe(ctx context.Context, subject string, handler EventHandler) error {
	consumer, err := s.js.OrderedConsumer(ctx, StreamName, jetstream.OrderedConsumerConfig{
		FilterSubjects: []string{subject},
		DeliverPolicy:  jetstream.DeliverNewPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		event, err := decode(msg.Data())
		if err != nil {
			s.log.Warn("NATS", "Dropping malformed event", map[string]interface{}{
				"subject": msg.Subject(),
				"error":   err.Error(),
			})
			return
		}
		if err := handler(ctx, event); err != nil {
			s.log.Error("NATS", "Event handler failed", map[string]interface{}{
				"subject": msg.Subject(),
				"error":   err,
			})
		}
	})
	if err != nil {
		return fmt.Errorf("failed to consume: %w", err)
	}

	<-ctx.Done()
	cc.Stop()
	return nil
}

func (s *Subscriber) Close() {
	if s.nc != nil {
		s.nc.Close()
	}
}
