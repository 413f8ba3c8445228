package usecase

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

type ListPostsUseCase struct {
	posts port.PostStoragePort
}

func NewListPostsUseCase(posts port.PostStoragePort) *ListPostsUseCase {
	return &ListPostsUseCase{posts: posts}
}

func (uc *ListPostsUseCase) Execute(ctx context.Context, brokerEmail string) ([]domain.Post, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListPosts",
	})

	posts, err := uc.posts.ListPosts(ctx, brokerEmail)
	if err != nil {
		logger.Error("Could not list posts", err, nil)
		return nil, err
	}

	logger.Debug("Posts listed", port.Fields{"count": len(posts)})
	return posts, nil
}
