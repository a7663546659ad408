// FILE: internal/service/telemetry_service.go
package service

import (
	"encoding/json"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ITelemetryService emits diagnostic events from the styling core.
// Best-effort by contract: emission never blocks or fails the caller.
type ITelemetryService interface {
	Emit(event events.Event)
}

type telemetryService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewTelemetryService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) ITelemetryService {
	return &telemetryService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (s *telemetryService) Emit(event events.Event) {
	payload := dto.TelemetryMessage{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	}
	msgJson, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("TELEMETRY", "Failed to marshal event", map[string]interface{}{"type": event.EventType(), "error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), msgJson)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		// Telemetry loss is acceptable; resolution flow is not allowed to care.
		s.logger.Warn("TELEMETRY", "Failed to publish event", map[string]interface{}{"type": event.EventType(), "error": err.Error()})
	}
}
