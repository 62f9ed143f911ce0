package services

import (
	"encoding/json"
	"log"
	"time"
)

// Event routing keys.
const (
	EventProductCreated   = "product.created"
	EventProductUpdated   = "product.updated"
	EventProductDeleted   = "product.deleted"
	EventContactSubmitted = "contact.submitted"
)

// EventPublisher publishes a message under a routing key. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// publishEvent marshals payload and hands it to publisher. Failures are
// logged only; a lost event never fails the request that caused it.
func publishEvent(publisher EventPublisher, routingKey string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}

	payload["event"] = routingKey
	payload["occurredAt"] = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
