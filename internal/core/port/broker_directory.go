package port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

// BrokerDirectoryPort — таблица контактов во внешнем хранилище.
// Это проверка существования (lookup идентичности), а не аутентификация.
type BrokerDirectoryPort interface {
	// FindBrokerByEmail ищет брокера без учета регистра email.
	// Возвращает ErrBrokerNotFound, если контакта нет.
	FindBrokerByEmail(ctx context.Context, email string) (domain.Broker, error)
}
