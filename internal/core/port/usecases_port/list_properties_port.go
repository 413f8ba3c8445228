package usecases_port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

type ListPropertiesUseCasePort interface {
	Execute(ctx context.Context, brokerEmail string) ([]domain.Property, error)
}
