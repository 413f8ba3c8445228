package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound — запись отсутствует во внешнем хранилище
	ErrNotFound = errors.New("record not found")

	// ErrBrokerNotFound — брокер не найден в таблице контактов
	ErrBrokerNotFound = errors.New("broker not found")

	// ErrCorruptSession — сохраненная сессия не читается; трактуется
	// как "не залогинен", а не как фатальная ошибка
	ErrCorruptSession = errors.New("persisted session is corrupt")
)

// RemoteError — не-2xx ответ внешнего сервиса (хранилище записей или
// сервер загрузки файлов). Сохраняем статус и тело для логов.
type RemoteError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s returned non-success status code %d: %s", e.Service, e.StatusCode, e.Body)
}

// ViolationCode — машинно-читаемый код нарушения правила публикации
type ViolationCode string

const (
	ViolationCooldown       ViolationCode = "cooldown"
	ViolationDailyCap       ViolationCode = "daily_cap"
	ViolationOutsideWindow  ViolationCode = "outside_window"
	ViolationBlockedWeekday ViolationCode = "blocked_weekday"
	ViolationMissingField   ViolationCode = "missing_field"
)

// Violation — одно нарушение правила с сообщением для пользователя
type Violation struct {
	Code    ViolationCode `json:"code"`
	Message string        `json:"message"`
}

// ValidationError — отказ движка правил. Никогда не уходит в сеть:
// проверка выполняется до любого обращения к хранилищу.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return "posting rules violated: " + strings.Join(msgs, "; ")
}
