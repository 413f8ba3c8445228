package usecases_port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

type PostAvailabilityUseCasePort interface {
	// Execute возвращает доступность каждого дня окна публикации
	// для отрисовки календаря
	Execute(ctx context.Context, brokerEmail string) ([]domain.DayAvailability, error)
}
