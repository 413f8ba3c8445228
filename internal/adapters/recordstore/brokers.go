package recordstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/LallyDik/airtable-estate-flow/internal/constants"
	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// FindBrokerByEmail ищет контакт брокера без учета регистра email.
// Это lookup идентичности, не аутентификация: пароля и токенов нет.
func (c *Client) FindBrokerByEmail(ctx context.Context, email string) (domain.Broker, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RecordStoreClient",
		"method":    "FindBrokerByEmail",
	})

	formula := fieldEqualsFold(contactFields.store("email"), email)
	records, err := c.listRecords(ctx, constants.TableContacts, formula)
	if err != nil {
		return domain.Broker{}, err
	}

	// Формула уже регистронезависимая; проверяем еще раз локально,
	// чтобы не зависеть от тонкостей реализации LOWER() в хранилище
	for _, rec := range records {
		broker := brokerFromRecord(rec)
		if strings.EqualFold(broker.Email, email) {
			logger.Debug("Broker contact resolved", port.Fields{"broker_id": broker.ID})
			return broker, nil
		}
	}

	logger.Warn("Broker contact not found", port.Fields{"email": email})
	return domain.Broker{}, fmt.Errorf("contact lookup for %q: %w", email, domain.ErrBrokerNotFound)
}
