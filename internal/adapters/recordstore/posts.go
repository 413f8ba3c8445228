package recordstore

import (
	"context"

	"github.com/LallyDik/airtable-estate-flow/internal/constants"
	"github.com/LallyDik/airtable-estate-flow/internal/contextkeys"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// ListPosts возвращает публикации брокера. Пустой срез — не ошибка.
func (c *Client) ListPosts(ctx context.Context, brokerEmail string) ([]domain.Post, error) {
	formula := fieldEquals(postFields.store("broker_email"), brokerEmail)
	records, err := c.listRecords(ctx, constants.TablePosts, formula)
	if err != nil {
		return nil, err
	}

	posts := make([]domain.Post, len(records))
	for i, rec := range records {
		posts[i] = postFromRecord(rec)
	}
	return posts, nil
}

// CreatePost создает запись публикации; ссылка на брокера резолвится
// до создания записи (см. CreateProperty)
func (c *Client) CreatePost(ctx context.Context, post domain.Post) (domain.Post, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "RecordStoreClient",
		"method":    "CreatePost",
	})

	contact, err := c.FindBrokerByEmail(ctx, post.BrokerEmail)
	if err != nil {
		logger.Error("Could not resolve broker reference", err, nil)
		return domain.Post{}, err
	}

	fields := postToFields(post)
	fields[postFields.store("broker")] = []string{contact.ID}

	rec, err := c.createRecord(ctx, constants.TablePosts, fields)
	if err != nil {
		return domain.Post{}, err
	}

	logger.Info("Post record created", port.Fields{"post_id": rec.ID})
	return postFromRecord(rec), nil
}

func (c *Client) UpdatePost(ctx context.Context, id string, patch domain.PostPatch) (domain.Post, error) {
	rec, err := c.updateRecord(ctx, constants.TablePosts, id, postPatchToFields(patch))
	if err != nil {
		return domain.Post{}, err
	}
	return postFromRecord(rec), nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.deleteRecord(ctx, constants.TablePosts, id)
}
