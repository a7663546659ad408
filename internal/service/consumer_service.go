// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/pkg/events"
	pktNats "ai-stylist-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process telemetry topic: every event lands
// in the isolated telemetry log, and is forwarded to NATS when a connection
// exists. Runs for the life of the process.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	natsPub   *pktNats.Publisher
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		natsPub:   natsPub,
		logger:    log,
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
	var payload dto.TelemetryMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Warn("TELEMETRY", "Dropping malformed telemetry message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("TELEMETRY", payload.Type, payload.Data)

	if cs.natsPub != nil {
		evt := events.BaseEvent{
			Type:       payload.Type,
			Data:       payload.Data,
			OccurredAt: payload.OccurredAt,
		}
		pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := cs.natsPub.Publish(pubCtx, evt); err != nil {
			cs.logger.Warn("TELEMETRY", "Failed to forward event to NATS", map[string]interface{}{"type": payload.Type, "error": err.Error()})
		}
		cancel()
	}

	msg.Ack()
}
