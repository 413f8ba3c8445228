package usecase

import (
	"context"
	"time"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/eligibility"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// UpdatePostUseCase редактирует публикацию. Собственная запись
// редактируемой публикации исключается из cooldown и дневного лимита,
// чтобы сравнение с самой собой не давало ложный отказ.
type UpdatePostUseCase struct {
	posts  port.PostStoragePort
	engine *eligibility.Engine
	now    func() time.Time
}

func NewUpdatePostUseCase(posts port.PostStoragePort, engine *eligibility.Engine, now func() time.Time) *UpdatePostUseCase {
	if now == nil {
		now = time.Now
	}
	return &UpdatePostUseCase{posts: posts, engine: engine, now: now}
}

func (uc *UpdatePostUseCase) Execute(ctx context.Context, id, brokerEmail string, patch domain.PostPatch) (domain.Post, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "UpdatePost",
		"post_id":  id,
	})

	// 1. Каталог публикаций брокера; заодно находим редактируемую запись
	existing, err := uc.posts.ListPosts(ctx, brokerEmail)
	if err != nil {
		logger.Error("Could not load existing posts for rule check", err, nil)
		return domain.Post{}, err
	}

	var current *domain.Post
	for i := range existing {
		if existing[i].ID == id {
			current = &existing[i]
			break
		}
	}
	if current == nil {
		return domain.Post{}, domain.ErrNotFound
	}

	// 2. Итоговые объект и дата после применения патча
	propertyID := current.PropertyID
	if patch.PropertyID != nil {
		propertyID = *patch.PropertyID
	}
	date := current.Date
	if patch.Date != nil {
		date = *patch.Date
	}

	// 3. Проверка правил с self-exclusion — до любой записи
	today := domain.CivilDateOf(uc.now())
	if violations := uc.engine.Violations(existing, propertyID, today, date, id); len(violations) > 0 {
		logger.Warn("Post update rejected by posting rules", port.Fields{"violations": len(violations)})
		return domain.Post{}, &domain.ValidationError{Violations: violations}
	}

	updated, err := uc.posts.UpdatePost(ctx, id, patch)
	if err != nil {
		logger.Error("Could not update post record", err, nil)
		return domain.Post{}, err
	}

	logger.Info("Post updated", nil)
	return updated, nil
}
