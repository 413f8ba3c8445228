package usecases_port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

type UpdatePropertyUseCasePort interface {
	Execute(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, error)
}
