package eligibility

import (
	"time"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

// Правила публикации. Единственное место в системе, где они определены:
// и календарь, и проверка перед отправкой используют этот движок.
const (
	// CooldownDays — минимум дней между двумя публикациями одного объекта
	CooldownDays = 3
	// DailyCap — максимум публикаций брокера в один календарный день
	DailyCap = 2
	// WindowDays — публиковать можно от сегодня до сегодня+8 включительно
	WindowDays = 8
)

// Engine — чистый движок правил публикации. Не делает I/O; на вход
// получает полный каталог публикаций брокера и кандидата (объект, дата).
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// blockedWeekday: пятница и суббота закрыты для публикаций
func blockedWeekday(d domain.CivilDate) bool {
	wd := d.Weekday()
	return wd == time.Friday || wd == time.Saturday
}

// dailyCount считает публикации на точный календарный день,
// исключая редактируемую публикацию (self-exclusion)
func dailyCount(posts []domain.Post, date domain.CivilDate, excludePostID string) int {
	count := 0
	for _, p := range posts {
		if excludePostID != "" && p.ID == excludePostID {
			continue
		}
		if p.Date.Equal(date) {
			count++
		}
	}
	return count
}

// lastPostedOn находит дату самой поздней публикации объекта.
// ok=false, если у объекта еще не было публикаций.
func lastPostedOn(posts []domain.Post, propertyID string, excludePostID string) (domain.CivilDate, bool) {
	var last domain.CivilDate
	found := false
	for _, p := range posts {
		if p.PropertyID != propertyID {
			continue
		}
		if excludePostID != "" && p.ID == excludePostID {
			continue
		}
		if !found || p.Date.After(last) {
			last = p.Date
			found = true
		}
	}
	return last, found
}

// DateDisabled — предикат для отрисовки календаря: день недоступен, если
// он вне окна, выпадает на закрытый день недели или дневной лимит брокера
// уже исчерпан. Cooldown конкретного объекта здесь не учитывается: день
// доступен, пока хотя бы какой-то объект может быть опубликован.
// posts — публикации текущего брокера.
func (e *Engine) DateDisabled(posts []domain.Post, today, date domain.CivilDate) bool {
	if date.Before(today) || date.After(today.AddDays(WindowDays)) {
		return true
	}
	if blockedWeekday(date) {
		return true
	}
	return dailyCount(posts, date, "") >= DailyCap
}

// Violations возвращает список нарушений для пары (объект, дата).
// editingPostID — публикация, которая сейчас редактируется; ее собственная
// запись исключается и из cooldown, и из дневного лимита, чтобы сравнение
// с самой собой не давало ложный отказ.
func (e *Engine) Violations(posts []domain.Post, propertyID string, today, date domain.CivilDate, editingPostID string) []domain.Violation {
	var violations []domain.Violation

	if date.Before(today) || date.After(today.AddDays(WindowDays)) {
		violations = append(violations, domain.Violation{
			Code:    domain.ViolationOutsideWindow,
			Message: "date is outside the allowed posting window (today through today+8)",
		})
	}

	if blockedWeekday(date) {
		violations = append(violations, domain.Violation{
			Code:    domain.ViolationBlockedWeekday,
			Message: "posting is not allowed on Fridays and Saturdays",
		})
	}

	if dailyCount(posts, date, editingPostID) >= DailyCap {
		violations = append(violations, domain.Violation{
			Code:    domain.ViolationDailyCap,
			Message: "daily posting limit reached (2/day)",
		})
	}

	if last, ok := lastPostedOn(posts, propertyID, editingPostID); ok {
		if date.DaysSince(last) < CooldownDays {
			violations = append(violations, domain.Violation{
				Code:    domain.ViolationCooldown,
				Message: "property posted within the last 3 days",
			})
		}
	}

	return violations
}

// CanSubmit — можно ли отправлять публикацию: все обязательные поля
// заполнены и ни одно правило не нарушено
func (e *Engine) CanSubmit(posts []domain.Post, propertyID string, today, date domain.CivilDate, slot domain.TimeSlot, editingPostID string) bool {
	if propertyID == "" || date.IsZero() || !slot.Valid() {
		return false
	}
	return len(e.Violations(posts, propertyID, today, date, editingPostID)) == 0
}
