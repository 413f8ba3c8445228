package port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

// PostStoragePort — доступ к таблице публикаций во внешнем хранилище
type PostStoragePort interface {
	ListPosts(ctx context.Context, brokerEmail string) ([]domain.Post, error)

	// CreatePost резолвит ссылку на запись брокера до создания записи
	CreatePost(ctx context.Context, post domain.Post) (domain.Post, error)

	UpdatePost(ctx context.Context, id string, patch domain.PostPatch) (domain.Post, error)

	DeletePost(ctx context.Context, id string) error
}
