package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/LallyDik/airtable-estate-flow/internal/constants"
	"github.com/LallyDik/airtable-estate-flow/internal/contracts"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

// EventPublisher публикует события жизненного цикла публикаций и
// объектов. Перед отправкой каждое тело проверяется по JSON-схеме
// контракта, чтобы в обменник не ушло сообщение не по контракту.
type EventPublisher struct {
	publisher *Publisher
}

func NewEventPublisher(publisher *Publisher) *EventPublisher {
	return &EventPublisher{publisher: publisher}
}

type postCreatedEvent struct {
	EventID    string      `json:"event_id"`
	OccurredAt string      `json:"occurred_at"`
	Post       domain.Post `json:"post"`
}

type postDeletedEvent struct {
	EventID     string `json:"event_id"`
	OccurredAt  string `json:"occurred_at"`
	PostID      string `json:"post_id"`
	BrokerEmail string `json:"broker_email"`
}

type propertyCreatedEvent struct {
	EventID    string          `json:"event_id"`
	OccurredAt string          `json:"occurred_at"`
	Property   domain.Property `json:"property"`
}

func (e *EventPublisher) publish(ctx context.Context, eventType, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", eventType, err)
	}

	if err := contracts.ValidateEvent(eventType, constants.EventVersionV1, body); err != nil {
		return fmt.Errorf("refusing to publish %s: %w", eventType, err)
	}

	headers := amqp.Table{
		"event_type":    eventType,
		"event_version": constants.EventVersionV1,
	}
	return e.publisher.Publish(ctx, routingKey, body, headers)
}

func (e *EventPublisher) PublishPostCreated(ctx context.Context, post domain.Post) error {
	return e.publish(ctx, constants.EventPostCreated, constants.RoutingKeyPostEvents, postCreatedEvent{
		EventID:    uuid.New().String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Post:       post,
	})
}

func (e *EventPublisher) PublishPostDeleted(ctx context.Context, postID, brokerEmail string) error {
	return e.publish(ctx, constants.EventPostDeleted, constants.RoutingKeyPostEvents, postDeletedEvent{
		EventID:     uuid.New().String(),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
		PostID:      postID,
		BrokerEmail: brokerEmail,
	})
}

func (e *EventPublisher) PublishPropertyCreated(ctx context.Context, property domain.Property) error {
	return e.publish(ctx, constants.EventPropertyCreated, constants.RoutingKeyPropertyEvents, propertyCreatedEvent{
		EventID:    uuid.New().String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Property:   property,
	})
}
