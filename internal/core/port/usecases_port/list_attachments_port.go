package usecases_port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

type ListAttachmentsUseCasePort interface {
	Execute(ctx context.Context, propertyID string) ([]domain.Attachment, error)
}
