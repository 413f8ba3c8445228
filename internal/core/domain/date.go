package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// civilDateLayout — канонический формат даты на проводе (ISO 8601, без времени).
const civilDateLayout = "2006-01-02"

// CivilDate — календарный день без времени суток и без часового пояса.
// Все сравнения дат в системе (cooldown, дневной лимит, окно публикации)
// идут через этот тип, а не через сравнение строк или time.Time.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCivilDate создает дату из компонентов
func NewCivilDate(year int, month time.Month, day int) CivilDate {
	return CivilDate{Year: year, Month: month, Day: day}
}

// CivilDateOf обрезает момент времени до календарного дня в его локации
func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

// ParseCivilDate разбирает строку вида "2006-01-02"
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("invalid civil date %q: %w", s, err)
	}
	return CivilDateOf(t), nil
}

// Time возвращает полночь этого дня в UTC.
// Используется только для арифметики, не для сериализации.
func (d CivilDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CivilDate) String() string {
	return d.Time().Format(civilDateLayout)
}

// IsZero сообщает, что дата не задана
func (d CivilDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// AddDays возвращает дату через n дней (n может быть отрицательным)
func (d CivilDate) AddDays(n int) CivilDate {
	return CivilDateOf(d.Time().AddDate(0, 0, n))
}

// DaysSince возвращает количество полных дней между двумя датами
func (d CivilDate) DaysSince(other CivilDate) int {
	return int(d.Time().Sub(other.Time()) / (24 * time.Hour))
}

func (d CivilDate) Before(other CivilDate) bool {
	return d.Time().Before(other.Time())
}

func (d CivilDate) After(other CivilDate) bool {
	return d.Time().After(other.Time())
}

func (d CivilDate) Equal(other CivilDate) bool {
	return d == other
}

// Weekday возвращает день недели этого календарного дня
func (d CivilDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// MarshalJSON сериализует дату как "YYYY-MM-DD"
func (d CivilDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON принимает "YYYY-MM-DD"; пустая строка — незаданная дата
func (d *CivilDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = CivilDate{}
		return nil
	}
	parsed, err := ParseCivilDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
