package usecases_port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// CreatePropertyInput — объект плюс его необязательные вложения.
// Вложения загружаются best-effort после создания записи объекта.
type CreatePropertyInput struct {
	Property       domain.Property
	ExclusivityDoc *port.UploadFile
	Images         []port.UploadFile
}

type CreatePropertyUseCasePort interface {
	Execute(ctx context.Context, input CreatePropertyInput) (domain.Property, error)
}
