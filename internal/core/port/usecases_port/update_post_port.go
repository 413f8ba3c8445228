package usecases_port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

type UpdatePostUseCasePort interface {
	Execute(ctx context.Context, id, brokerEmail string, patch domain.PostPatch) (domain.Post, error)
}
