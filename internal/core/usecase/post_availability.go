package usecase

import (
	"context"
	"time"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/eligibility"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// PostAvailabilityUseCase отдает календарю доступность каждого дня окна
// публикации. День доступен, если хотя бы какой-то объект может быть
// опубликован: cooldown конкретного объекта проверяется при отправке.
type PostAvailabilityUseCase struct {
	posts  port.PostStoragePort
	engine *eligibility.Engine
	now    func() time.Time
}

func NewPostAvailabilityUseCase(posts port.PostStoragePort, engine *eligibility.Engine, now func() time.Time) *PostAvailabilityUseCase {
	if now == nil {
		now = time.Now
	}
	return &PostAvailabilityUseCase{posts: posts, engine: engine, now: now}
}

func (uc *PostAvailabilityUseCase) Execute(ctx context.Context, brokerEmail string) ([]domain.DayAvailability, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "PostAvailability",
	})

	posts, err := uc.posts.ListPosts(ctx, brokerEmail)
	if err != nil {
		logger.Error("Could not load posts for availability", err, nil)
		return nil, err
	}

	today := domain.CivilDateOf(uc.now())
	days := make([]domain.DayAvailability, 0, eligibility.WindowDays+1)

	for i := 0; i <= eligibility.WindowDays; i++ {
		date := today.AddDays(i)
		day := domain.DayAvailability{
			Date:     date,
			Disabled: uc.engine.DateDisabled(posts, today, date),
		}
		if day.Disabled {
			// Причины собираем теми же правилами, по которым день закрыт;
			// propertyID пустой — cooldown здесь не участвует
			for _, v := range uc.engine.Violations(posts, "", today, date, "") {
				day.Reasons = append(day.Reasons, v.Message)
			}
		}
		days = append(days, day)
	}

	return days, nil
}
