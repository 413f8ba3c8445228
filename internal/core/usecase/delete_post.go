package usecase

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

type DeletePostUseCase struct {
	posts  port.PostStoragePort
	events port.EventPublisherPort
}

func NewDeletePostUseCase(posts port.PostStoragePort, events port.EventPublisherPort) *DeletePostUseCase {
	return &DeletePostUseCase{posts: posts, events: events}
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, id, brokerEmail string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "DeletePost",
		"post_id":  id,
	})

	if err := uc.posts.DeletePost(ctx, id); err != nil {
		logger.Error("Could not delete post", err, nil)
		return err
	}

	if err := uc.events.PublishPostDeleted(ctx, id, brokerEmail); err != nil {
		logger.Warn("Could not publish post.deleted event", port.Fields{"error": err.Error()})
	}

	logger.Info("Post deleted", nil)
	return nil
}
