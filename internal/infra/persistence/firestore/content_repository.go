package firestore

import (
	"context"

	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/repository"
	"aiclub/internal/errors"
	"aiclub/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// contentRepository implements the domain.ContentRepository interface,
// one Firestore collection per content kind.
type contentRepository struct {
	accessor
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(client *fs.Client) repository.ContentRepository {
	return &contentRepository{accessor: accessor{client: client}}
}

func (repo *contentRepository) collection(kind entity.Kind) *fs.CollectionRef {
	return repo.client.Collection(kind.Collection().String())
}

// Create stores a new item, assigning a generated id when none is set.
func (repo *contentRepository) Create(ctx context.Context, item entity.ContentItem) error {
	meta := item.Meta()
	ref := repo.collection(item.Kind()).NewDoc()
	if meta.ID != "" {
		ref = repo.collection(item.Kind()).Doc(meta.ID)
	}

	if err := repo.create(ctx, ref, model.FromContentItem(item)); err != nil {
		return errors.Wrapf(err, "failed to create %s", item.Kind())
	}
	meta.ID = ref.ID

	return nil
}

// FindByID retrieves one item by document id.
func (repo *contentRepository) FindByID(ctx context.Context, kind entity.Kind, id string) (entity.ContentItem, error) {
	snap, err := repo.get(ctx, repo.collection(kind).Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by id", kind)
	}

	return toContentDomain(kind, snap)
}

// FindBySlug retrieves the first item carrying slug.
func (repo *contentRepository) FindBySlug(ctx context.Context, kind entity.Kind, slug string) (entity.ContentItem, error) {
	it := repo.documents(ctx, repo.collection(kind).Where("slug", "==", slug).Limit(1))
	defer it.Stop()

	snap, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrContentNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s by slug", kind)
	}

	return toContentDomain(kind, snap)
}

// List retrieves every item of kind. Ordering happens in memory so that
// documents without a date are kept, matching the live reader.
func (repo *contentRepository) List(ctx context.Context, kind entity.Kind) ([]entity.ContentItem, error) {
	snaps, err := repo.documents(ctx, repo.collection(kind).Query).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", kind)
	}

	docs := make([]entity.Document, 0, len(snaps))
	for _, snap := range snaps {
		item, err := toContentDomain(kind, snap)
		if err != nil {
			return nil, err
		}
		docs = append(docs, item)
	}
	entity.SortDocuments(docs, entity.DefaultOrder(kind.Collection()))

	items := make([]entity.ContentItem, len(docs))
	for i, doc := range docs {
		items[i] = doc.(entity.ContentItem)
	}

	return items, nil
}

// Replace overwrites the whole document.
func (repo *contentRepository) Replace(ctx context.Context, item entity.ContentItem) error {
	ref := repo.collection(item.Kind()).Doc(item.Meta().ID)
	if err := repo.set(ctx, ref, model.FromContentItem(item)); err != nil {
		return errors.Wrapf(err, "failed to replace %s", item.Kind())
	}

	return nil
}

// Delete removes one item.
func (repo *contentRepository) Delete(ctx context.Context, kind entity.Kind, id string) error {
	if err := repo.delete(ctx, repo.collection(kind).Doc(id)); err != nil {
		return errors.Wrapf(err, "failed to delete %s", kind)
	}

	return nil
}

func toContentDomain(kind entity.Kind, snap *fs.DocumentSnapshot) (entity.ContentItem, error) {
	doc, err := model.DecodeDocument(kind.Collection(), snap.Ref.ID, snap.DataTo)
	if err != nil {
		return nil, err
	}

	return doc.(entity.ContentItem), nil
}
