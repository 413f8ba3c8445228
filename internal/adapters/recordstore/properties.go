package recordstore

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/constants"
	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// ListProperties возвращает объекты брокера. Пустой срез — не ошибка.
func (c *Client) ListProperties(ctx context.Context, brokerEmail string) ([]domain.Property, error) {
	formula := fieldEquals(propertyFields.store("broker_email"), brokerEmail)
	records, err := c.listRecords(ctx, constants.TableProperties, formula)
	if err != nil {
		return nil, err
	}

	properties := make([]domain.Property, len(records))
	for i, rec := range records {
		properties[i] = propertyFromRecord(rec)
	}
	return properties, nil
}

// CreateProperty создает запись объекта. Порядок обязателен: сначала
// резолвим ссылку на запись брокера по email, потом создаем связанную
// запись — никогда наоборот.
func (c *Client) CreateProperty(ctx context.Context, property domain.Property) (domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RecordStoreClient",
		"method":    "CreateProperty",
	})

	contact, err := c.FindBrokerByEmail(ctx, property.BrokerEmail)
	if err != nil {
		logger.Error("Could not resolve broker reference", err, nil)
		return domain.Property{}, err
	}

	fields := propertyToFields(property)
	fields[propertyFields.store("broker")] = []string{contact.ID}

	rec, err := c.createRecord(ctx, constants.TableProperties, fields)
	if err != nil {
		return domain.Property{}, err
	}

	logger.Info("Property record created", port.Fields{"property_id": rec.ID})
	return propertyFromRecord(rec), nil
}

func (c *Client) UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, error) {
	rec, err := c.updateRecord(ctx, constants.TableProperties, id, propertyPatchToFields(patch))
	if err != nil {
		return domain.Property{}, err
	}
	return propertyFromRecord(rec), nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.deleteRecord(ctx, constants.TableProperties, id)
}
