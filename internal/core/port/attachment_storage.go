package port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

// AttachmentStoragePort — таблица изображений объектов во внешнем хранилище
type AttachmentStoragePort interface {
	// ListAttachments возвращает только загруженные вложения;
	// записи с не-абсолютными URL отфильтровываются
	ListAttachments(ctx context.Context, propertyID string) ([]domain.Attachment, error)

	CreateImage(ctx context.Context, propertyID, url, filename string) error
}
