package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

func date(y int, m time.Month, d int) domain.CivilDate {
	return domain.NewCivilDate(y, m, d)
}

func hasViolation(violations []domain.Violation, code domain.ViolationCode) bool {
	for _, v := range violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

// 2024-06-02 — воскресенье; окно публикации до 2024-06-10 включительно.
var today = date(2024, time.June, 2)

func TestEngine_Cooldown(t *testing.T) {
	engine := New()
	posts := []domain.Post{
		{ID: "p1", PropertyID: "prop-a", Date: date(2024, time.June, 1)},
	}

	t.Run("within cooldown is rejected", func(t *testing.T) {
		violations := engine.Violations(posts, "prop-a", today, date(2024, time.June, 3), "")
		assert.True(t, hasViolation(violations, domain.ViolationCooldown))
	})

	t.Run("exactly cooldown days later is accepted", func(t *testing.T) {
		violations := engine.Violations(posts, "prop-a", today, date(2024, time.June, 4), "")
		assert.False(t, hasViolation(violations, domain.ViolationCooldown))
		assert.Empty(t, violations)
	})

	t.Run("other property is not affected", func(t *testing.T) {
		violations := engine.Violations(posts, "prop-b", today, date(2024, time.June, 3), "")
		assert.False(t, hasViolation(violations, domain.ViolationCooldown))
	})

	t.Run("property without posts is always eligible", func(t *testing.T) {
		violations := engine.Violations(nil, "prop-new", today, date(2024, time.June, 5), "")
		assert.Empty(t, violations)
	})
}

func TestEngine_DailyCap(t *testing.T) {
	engine := New()
	// 2024-06-10 — понедельник, два поста уже запланированы
	posts := []domain.Post{
		{ID: "p1", PropertyID: "prop-a", Date: date(2024, time.June, 10)},
		{ID: "p2", PropertyID: "prop-b", Date: date(2024, time.June, 10)},
	}

	t.Run("third post on the same day is rejected", func(t *testing.T) {
		violations := engine.Violations(posts, "prop-c", today, date(2024, time.June, 10), "")
		assert.True(t, hasViolation(violations, domain.ViolationDailyCap))
	})

	t.Run("another day is open", func(t *testing.T) {
		violations := engine.Violations(posts, "prop-c", today, date(2024, time.June, 6), "")
		assert.False(t, hasViolation(violations, domain.ViolationDailyCap))
	})

	t.Run("cap counts posts of any property", func(t *testing.T) {
		violations := engine.Violations(posts, "prop-a", today, date(2024, time.June, 10), "")
		assert.True(t, hasViolation(violations, domain.ViolationDailyCap))
	})
}

func TestEngine_Window(t *testing.T) {
	engine := New()

	t.Run("past date is rejected", func(t *testing.T) {
		violations := engine.Violations(nil, "prop-a", today, date(2024, time.June, 1), "")
		assert.True(t, hasViolation(violations, domain.ViolationOutsideWindow))
	})

	t.Run("today is allowed", func(t *testing.T) {
		violations := engine.Violations(nil, "prop-a", today, today, "")
		assert.False(t, hasViolation(violations, domain.ViolationOutsideWindow))
	})

	t.Run("last day of the window is allowed", func(t *testing.T) {
		violations := engine.Violations(nil, "prop-a", today, today.AddDays(WindowDays), "")
		assert.False(t, hasViolation(violations, domain.ViolationOutsideWindow))
	})

	t.Run("one day past the window is rejected", func(t *testing.T) {
		violations := engine.Violations(nil, "prop-a", today, today.AddDays(WindowDays+1), "")
		assert.True(t, hasViolation(violations, domain.ViolationOutsideWindow))
	})
}

func TestEngine_BlockedWeekdays(t *testing.T) {
	engine := New()

	t.Run("friday is rejected", func(t *testing.T) {
		// 2024-06-07 — пятница
		violations := engine.Violations(nil, "prop-a", today, date(2024, time.June, 7), "")
		assert.True(t, hasViolation(violations, domain.ViolationBlockedWeekday))
	})

	t.Run("saturday is rejected even when everything else is fine", func(t *testing.T) {
		// 2024-06-08 — суббота
		violations := engine.Violations(nil, "prop-a", today, date(2024, time.June, 8), "")
		assert.True(t, hasViolation(violations, domain.ViolationBlockedWeekday))
	})

	t.Run("sunday is allowed", func(t *testing.T) {
		violations := engine.Violations(nil, "prop-a", today, date(2024, time.June, 9), "")
		assert.False(t, hasViolation(violations, domain.ViolationBlockedWeekday))
	})
}

func TestEngine_SelfExclusion(t *testing.T) {
	engine := New()

	t.Run("editing post does not trip its own cooldown", func(t *testing.T) {
		posts := []domain.Post{
			{ID: "p1", PropertyID: "prop-a", Date: date(2024, time.June, 3)},
		}
		// Переносим p1 на день позже: без self-exclusion он бы сам
		// себе мешал через cooldown
		violations := engine.Violations(posts, "prop-a", today, date(2024, time.June, 4), "p1")
		assert.Empty(t, violations)
	})

	t.Run("editing post does not count toward the daily cap", func(t *testing.T) {
		posts := []domain.Post{
			{ID: "p1", PropertyID: "prop-a", Date: date(2024, time.June, 5)},
			{ID: "p2", PropertyID: "prop-b", Date: date(2024, time.June, 5)},
		}
		violations := engine.Violations(posts, "prop-c", today, date(2024, time.June, 5), "p1")
		assert.False(t, hasViolation(violations, domain.ViolationDailyCap))
	})

	t.Run("other posts still count", func(t *testing.T) {
		posts := []domain.Post{
			{ID: "p1", PropertyID: "prop-a", Date: date(2024, time.June, 5)},
			{ID: "p2", PropertyID: "prop-b", Date: date(2024, time.June, 5)},
			{ID: "p3", PropertyID: "prop-c", Date: date(2024, time.June, 5)},
		}
		violations := engine.Violations(posts, "prop-d", today, date(2024, time.June, 5), "p1")
		assert.True(t, hasViolation(violations, domain.ViolationDailyCap))
	})
}

func TestEngine_DateDisabled(t *testing.T) {
	engine := New()

	t.Run("friday is disabled", func(t *testing.T) {
		assert.True(t, engine.DateDisabled(nil, today, date(2024, time.June, 7)))
	})

	t.Run("day at the cap is disabled", func(t *testing.T) {
		posts := []domain.Post{
			{ID: "p1", PropertyID: "prop-a", Date: date(2024, time.June, 10)},
			{ID: "p2", PropertyID: "prop-b", Date: date(2024, time.June, 10)},
		}
		assert.True(t, engine.DateDisabled(posts, today, date(2024, time.June, 10)))
	})

	t.Run("day outside the window is disabled", func(t *testing.T) {
		assert.True(t, engine.DateDisabled(nil, today, today.AddDays(WindowDays+1)))
		assert.True(t, engine.DateDisabled(nil, today, today.AddDays(-1)))
	})

	t.Run("open weekday inside the window is enabled", func(t *testing.T) {
		assert.False(t, engine.DateDisabled(nil, today, date(2024, time.June, 6)))
	})

	t.Run("cooldown does not disable a day", func(t *testing.T) {
		posts := []domain.Post{
			{ID: "p1", PropertyID: "prop-a", Date: date(2024, time.June, 3)},
		}
		assert.False(t, engine.DateDisabled(posts, today, date(2024, time.June, 4)))
	})
}

func TestEngine_CanSubmit(t *testing.T) {
	engine := New()

	t.Run("requires property, date and slot", func(t *testing.T) {
		assert.False(t, engine.CanSubmit(nil, "", today, date(2024, time.June, 5), domain.SlotMorning, ""))
		assert.False(t, engine.CanSubmit(nil, "prop-a", today, domain.CivilDate{}, domain.SlotMorning, ""))
		assert.False(t, engine.CanSubmit(nil, "prop-a", today, date(2024, time.June, 5), domain.TimeSlot("midnight"), ""))
	})

	t.Run("valid candidate passes", func(t *testing.T) {
		assert.True(t, engine.CanSubmit(nil, "prop-a", today, date(2024, time.June, 5), domain.SlotEvening, ""))
	})

	t.Run("violation blocks submission", func(t *testing.T) {
		posts := []domain.Post{
			{ID: "p1", PropertyID: "prop-a", Date: date(2024, time.June, 4)},
		}
		assert.False(t, engine.CanSubmit(posts, "prop-a", today, date(2024, time.June, 5), domain.SlotMorning, ""))
	})
}
