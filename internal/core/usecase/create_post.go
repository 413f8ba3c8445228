package usecase

import (
	"context"
	"time"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/eligibility"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// CreatePostUseCase создает публикацию. Правила (cooldown, дневной
// лимит, окно, дни недели) проверяются ДО любого обращения к хранилищу;
// нарушение возвращается как *domain.ValidationError и в сеть не уходит.
//
// Проверка здесь — лучшее, что контролирует этот сервис: само внешнее
// хранилище остается доступным на запись любому владельцу API-ключа.
type CreatePostUseCase struct {
	posts      port.PostStoragePort
	properties port.PropertyStoragePort
	engine     *eligibility.Engine
	events     port.EventPublisherPort
	now        func() time.Time
}

func NewCreatePostUseCase(
	posts port.PostStoragePort,
	properties port.PropertyStoragePort,
	engine *eligibility.Engine,
	events port.EventPublisherPort,
	now func() time.Time,
) *CreatePostUseCase {
	if now == nil {
		now = time.Now
	}
	return &CreatePostUseCase{
		posts:      posts,
		properties: properties,
		engine:     engine,
		events:     events,
		now:        now,
	}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, post domain.Post) (domain.Post, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "CreatePost",
		"property_id": post.PropertyID,
		"date":        post.Date.String(),
	})

	// 1. Загружаем каталог публикаций брокера для движка правил
	existing, err := uc.posts.ListPosts(ctx, post.BrokerEmail)
	if err != nil {
		logger.Error("Could not load existing posts for rule check", err, nil)
		return domain.Post{}, err
	}

	// 2. Проверка правил — до любой записи
	today := domain.CivilDateOf(uc.now())
	if violations := uc.engine.Violations(existing, post.PropertyID, today, post.Date, ""); len(violations) > 0 {
		logger.Warn("Post rejected by posting rules", port.Fields{"violations": len(violations)})
		return domain.Post{}, &domain.ValidationError{Violations: violations}
	}

	// 3. Первичная операция: создание записи (адаптер резолвит ссылку
	// на брокера до создания)
	created, err := uc.posts.CreatePost(ctx, post)
	if err != nil {
		logger.Error("Could not create post record", err, nil)
		return domain.Post{}, err
	}
	logger.Info("Post created", port.Fields{"post_id": created.ID})

	// 4. Денормализованная дата последней публикации объекта —
	// вторичный шаг. Продвигаем только вперед; каталог existing уже
	// на руках, лишней выборки не нужно.
	uc.refreshLastPostedOn(ctx, logger, existing, created)

	// 5. Событие — тоже вторичный шаг
	if err := uc.events.PublishPostCreated(ctx, created); err != nil {
		logger.Warn("Could not publish post.created event", port.Fields{"error": err.Error()})
	}

	return created, nil
}

func (uc *CreatePostUseCase) refreshLastPostedOn(ctx context.Context, logger port.LoggerPort, existing []domain.Post, created domain.Post) {
	advance := true
	for _, p := range existing {
		if p.PropertyID == created.PropertyID && p.Date.After(created.Date) {
			advance = false
			break
		}
	}
	if !advance {
		return
	}

	date := created.Date
	if _, err := uc.properties.UpdateProperty(ctx, created.PropertyID, domain.PropertyPatch{LastPostedOn: &date}); err != nil {
		logger.Warn("Could not refresh property last-posted date", port.Fields{"error": err.Error()})
	}
}
