package recordstore

import (
	"context"
	"strings"

	"github.com/LallyDik/airtable-estate-flow/internal/constants"
	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// isAbsoluteURL — только по-настоящему загруженные вложения имеют
// абсолютный URL; все остальное в таблице — мусор прежних загрузок
func isAbsoluteURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

// ListAttachments возвращает загруженные вложения объекта,
// отфильтровывая записи без абсолютного URL
func (c *Client) ListAttachments(ctx context.Context, propertyID string) ([]domain.Attachment, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RecordStoreClient",
		"method":    "ListAttachments",
	})

	formula := fieldEquals(imageFields.store("property"), propertyID)
	records, err := c.listRecords(ctx, constants.TableImages, formula)
	if err != nil {
		return nil, err
	}

	attachments := make([]domain.Attachment, 0, len(records))
	skipped := 0
	for _, rec := range records {
		url := str(rec.Fields, imageFields.store("url"))
		if !isAbsoluteURL(url) {
			skipped++
			continue
		}
		attachments = append(attachments, domain.Attachment{
			State:    domain.AttachmentUploaded,
			URL:      url,
			Filename: str(rec.Fields, imageFields.store("filename")),
		})
	}

	if skipped > 0 {
		logger.Warn("Skipped attachments without absolute URL", port.Fields{"skipped": skipped})
	}
	return attachments, nil
}

// CreateImage привязывает загруженное изображение к объекту
func (c *Client) CreateImage(ctx context.Context, propertyID, url, filename string) error {
	fields := map[string]any{
		imageFields.store("property"): []string{propertyID},
		imageFields.store("url"):      url,
		imageFields.store("filename"): filename,
	}
	_, err := c.createRecord(ctx, constants.TableImages, fields)
	return err
}
