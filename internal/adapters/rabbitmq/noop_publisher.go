package rabbitmq_adapter

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

// NoopEventPublisher используется, когда публикация событий выключена
type NoopEventPublisher struct{}

func NewNoopEventPublisher() *NoopEventPublisher { return &NoopEventPublisher{} }

func (n *NoopEventPublisher) PublishPostCreated(ctx context.Context, post domain.Post) error {
	return nil
}

func (n *NoopEventPublisher) PublishPostDeleted(ctx context.Context, postID, brokerEmail string) error {
	return nil
}

func (n *NoopEventPublisher) PublishPropertyCreated(ctx context.Context, property domain.Property) error {
	return nil
}
