package port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

// EventPublisherPort — публикация событий жизненного цикла.
// Вторичная операция: вызывающий код логирует ошибку и продолжает,
// событие никогда не блокирует основную мутацию.
type EventPublisherPort interface {
	PublishPostCreated(ctx context.Context, post domain.Post) error
	PublishPostDeleted(ctx context.Context, postID, brokerEmail string) error
	PublishPropertyCreated(ctx context.Context, property domain.Property) error
}
