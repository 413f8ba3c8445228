package usecases_port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

type CreatePostUseCasePort interface {
	// Execute возвращает *domain.ValidationError до любого обращения
	// к хранилищу, если нарушены правила публикации
	Execute(ctx context.Context, post domain.Post) (domain.Post, error)
}
