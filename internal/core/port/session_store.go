package port

import "github.com/LallyDik/airtable-estate-flow/internal/core/domain"

// SessionStorePort — единственная точка доступа к сохраненной сессии.
// Жизненный цикл: restore-or-absent при старте, явный Clear при logout.
// Никакой другой компонент не читает и не пишет сессию напрямую.
type SessionStorePort interface {
	// Restore возвращает ok=false, когда сессии нет или она повреждена
	// (поврежденное содержимое отбрасывается, это не ошибка)
	Restore() (broker domain.Broker, ok bool, err error)

	Save(broker domain.Broker) error

	Clear() error
}
