package usecases_port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

type GetSessionUseCasePort interface {
	// Execute возвращает ok=false, когда сессии нет (или она была повреждена)
	Execute(ctx context.Context) (broker domain.Broker, ok bool, err error)
}

type LogoutUseCasePort interface {
	Execute(ctx context.Context) error
}
