package services

import (
	"encoding/json"
	"log"
	"time"

	"botaniq/internal/models"
)

// EventPublisher delivers serialized domain events. *rabbitmq.Client implements it.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// publishEvent sends a best-effort notification after a committed change.
// Failures are logged and never reach the caller.
func publishEvent(pub EventPublisher, eventType, userID, entityID, family string) {
	if pub == nil {
		return
	}
	body, err := json.Marshal(models.Event{
		Type:       eventType,
		UserID:     userID,
		EntityID:   entityID,
		Family:     family,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := pub.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event for %s: %v", eventType, entityID, err)
	}
}
