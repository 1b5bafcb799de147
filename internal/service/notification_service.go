package service

import (
	"context"
	"fmt"

	"lecture-lens-be/internal/pkg/logger"
	"lecture-lens-be/pkg/events"
	pkgNats "lecture-lens-be/pkg/nats"

	"github.com/google/uuid"
)

// EventDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type EventDelivery interface {
	Send(sessionID uuid.UUID, payload interface{})
	Broadcast(payload interface{})
}

// NotificationService relays bus events to connected stream clients so a
// browser watching a session learns about indexing and note completion
// without polling.
type NotificationService struct {
	subscriber *pkgNats.Subscriber
	delivery   EventDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pkgNats.Subscriber, delivery EventDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", event.EventType()), map[string]interface{}{"type": event.EventType()})

	payload := map[string]interface{}{
		"type":        event.EventType(),
		"data":        event.Payload(),
		"occurred_at": event.Timestamp(),
	}

	sessionId, ok := sessionIdFromPayload(event.Payload())
	if !ok {
		// Events without a session scope go to everyone
		if s.delivery != nil {
			s.delivery.Broadcast(payload)
		}
		return nil
	}

	if s.delivery != nil {
		s.delivery.Send(sessionId, payload)
	}
	return nil
}

func sessionIdFromPayload(payload map[string]interface{}) (uuid.UUID, bool) {
	raw, ok := payload["session_id"]
	if !ok {
		return uuid.Nil, false
	}
	switch v := raw.(type) {
	case uuid.UUID:
		return v, true
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	default:
		return uuid.Nil, false
	}
}
