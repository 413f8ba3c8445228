package port

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

// PropertyStoragePort — доступ к таблице объектов во внешнем хранилище.
// List возвращает пустой срез (не ошибку), когда у брокера нет записей.
type PropertyStoragePort interface {
	ListProperties(ctx context.Context, brokerEmail string) ([]domain.Property, error)

	// CreateProperty сначала резолвит ссылку на запись брокера по email
	// (ErrBrokerNotFound при неудаче) и только потом создает запись
	CreateProperty(ctx context.Context, property domain.Property) (domain.Property, error)

	UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, error)

	// DeleteProperty возвращает ErrNotFound для отсутствующей записи
	DeleteProperty(ctx context.Context, id string) error
}
