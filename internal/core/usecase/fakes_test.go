package usecase

import (
	"context"
	"fmt"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
	"github.com/LallyDik/airtable-estate-flow/internal/core/port"
)

// Фейки портов для тестов use case-ов. Все они записывают вызовы,
// чтобы проверять порядок первичных и вторичных операций.

type fakePostStorage struct {
	posts     []domain.Post
	listErr   error
	created   []domain.Post
	createErr error
	updates   map[string]domain.PostPatch
	updateErr error
	deleted   []string
	deleteErr error
}

func (f *fakePostStorage) ListPosts(ctx context.Context, brokerEmail string) ([]domain.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.posts, nil
}

func (f *fakePostStorage) CreatePost(ctx context.Context, post domain.Post) (domain.Post, error) {
	if f.createErr != nil {
		return domain.Post{}, f.createErr
	}
	post.ID = fmt.Sprintf("recPost%d", len(f.created)+1)
	f.created = append(f.created, post)
	return post, nil
}

func (f *fakePostStorage) UpdatePost(ctx context.Context, id string, patch domain.PostPatch) (domain.Post, error) {
	if f.updateErr != nil {
		return domain.Post{}, f.updateErr
	}
	if f.updates == nil {
		f.updates = map[string]domain.PostPatch{}
	}
	f.updates[id] = patch

	for _, p := range f.posts {
		if p.ID == id {
			if patch.PropertyID != nil {
				p.PropertyID = *patch.PropertyID
			}
			if patch.Date != nil {
				p.Date = *patch.Date
			}
			if patch.Slot != nil {
				p.Slot = *patch.Slot
			}
			return p, nil
		}
	}
	return domain.Post{}, domain.ErrNotFound
}

func (f *fakePostStorage) DeletePost(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type propertyUpdate struct {
	ID    string
	Patch domain.PropertyPatch
}

type fakePropertyStorage struct {
	properties []domain.Property
	created    []domain.Property
	createErr  error
	updates    []propertyUpdate
	updateErr  error
	deleted    []string
	deleteErr  error
}

func (f *fakePropertyStorage) ListProperties(ctx context.Context, brokerEmail string) ([]domain.Property, error) {
	return f.properties, nil
}

func (f *fakePropertyStorage) CreateProperty(ctx context.Context, property domain.Property) (domain.Property, error) {
	if f.createErr != nil {
		return domain.Property{}, f.createErr
	}
	property.ID = fmt.Sprintf("recProp%d", len(f.created)+1)
	f.created = append(f.created, property)
	return property, nil
}

func (f *fakePropertyStorage) UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, error) {
	if f.updateErr != nil {
		return domain.Property{}, f.updateErr
	}
	f.updates = append(f.updates, propertyUpdate{ID: id, Patch: patch})

	updated := domain.Property{ID: id}
	if patch.ExclusivityDocURL != nil {
		updated.ExclusivityDocURL = *patch.ExclusivityDocURL
	}
	if patch.LastPostedOn != nil {
		updated.LastPostedOn = *patch.LastPostedOn
	}
	return updated, nil
}

func (f *fakePropertyStorage) DeleteProperty(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type createdImage struct {
	PropertyID string
	URL        string
	Filename   string
}

type fakeAttachmentStorage struct {
	attachments []domain.Attachment
	images      []createdImage
	createErr   error
}

func (f *fakeAttachmentStorage) ListAttachments(ctx context.Context, propertyID string) ([]domain.Attachment, error) {
	return f.attachments, nil
}

func (f *fakeAttachmentStorage) CreateImage(ctx context.Context, propertyID, url, filename string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.images = append(f.images, createdImage{PropertyID: propertyID, URL: url, Filename: filename})
	return nil
}

type fakeUploader struct {
	uploaded []string
	err      error
	// failFor — имена файлов, загрузка которых падает выборочно
	failFor map[string]bool
}

func (f *fakeUploader) Upload(ctx context.Context, file port.UploadFile) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.failFor[file.Filename] {
		return "", fmt.Errorf("upload of %s failed", file.Filename)
	}
	f.uploaded = append(f.uploaded, file.Filename)
	return "https://files.example.com/" + file.Filename, nil
}

type fakeEvents struct {
	postCreated     []domain.Post
	postDeleted     []string
	propertyCreated []domain.Property
	err             error
}

func (f *fakeEvents) PublishPostCreated(ctx context.Context, post domain.Post) error {
	if f.err != nil {
		return f.err
	}
	f.postCreated = append(f.postCreated, post)
	return nil
}

func (f *fakeEvents) PublishPostDeleted(ctx context.Context, postID, brokerEmail string) error {
	if f.err != nil {
		return f.err
	}
	f.postDeleted = append(f.postDeleted, postID)
	return nil
}

func (f *fakeEvents) PublishPropertyCreated(ctx context.Context, property domain.Property) error {
	if f.err != nil {
		return f.err
	}
	f.propertyCreated = append(f.propertyCreated, property)
	return nil
}

type fakeSessionStore struct {
	broker  domain.Broker
	present bool
	saveErr error
	cleared bool
}

func (f *fakeSessionStore) Restore() (domain.Broker, bool, error) {
	return f.broker, f.present, nil
}

func (f *fakeSessionStore) Save(broker domain.Broker) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.broker = broker
	f.present = true
	return nil
}

func (f *fakeSessionStore) Clear() error {
	f.cleared = true
	f.present = false
	return nil
}

type fakeBrokerDirectory struct {
	broker domain.Broker
	err    error
}

func (f *fakeBrokerDirectory) FindBrokerByEmail(ctx context.Context, email string) (domain.Broker, error) {
	if f.err != nil {
		return domain.Broker{}, f.err
	}
	return f.broker, nil
}
