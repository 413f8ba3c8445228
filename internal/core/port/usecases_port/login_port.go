package usecases_port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

type LoginUseCasePort interface {
	Execute(ctx context.Context, email string) (domain.Broker, error)
}
